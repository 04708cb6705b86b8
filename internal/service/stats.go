package service

import (
	"context"

	"github.com/nahid-dev/portfolio-api/internal/domain"
)

type StatsService interface {
	Dashboard(ctx context.Context) (domain.Stats, error)
}

type StatsStorage interface {
	Stats(ctx context.Context) (domain.Stats, error)
}

type Stats struct {
	storage StatsStorage
}

func NewStats(storage StatsStorage) *Stats {
	return &Stats{storage: storage}
}

func (s *Stats) Dashboard(ctx context.Context) (domain.Stats, error) {
	return s.storage.Stats(ctx)
}
