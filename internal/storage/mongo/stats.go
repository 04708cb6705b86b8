package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nahid-dev/portfolio-api/internal/domain"
)

// Stats computes the admin dashboard counters: estimated document counts
// plus total revenue aggregated over the payments collection.
func (s *Storage) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	var err error

	if stats.Users, err = s.db.Collection(CollUsers).EstimatedDocumentCount(ctx); err != nil {
		return domain.Stats{}, err
	}
	if stats.Products, err = s.db.Collection(CollProjects).EstimatedDocumentCount(ctx); err != nil {
		return domain.Stats{}, err
	}
	if stats.Orders, err = s.db.Collection(CollCart).EstimatedDocumentCount(ctx); err != nil {
		return domain.Stats{}, err
	}

	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "revenue": bson.M{"$sum": "$price"}}},
	}
	cursor, err := s.db.Collection(CollPayments).Aggregate(ctx, pipeline)
	if err != nil {
		return domain.Stats{}, err
	}
	var totals []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return domain.Stats{}, err
	}
	if len(totals) > 0 {
		stats.Revenue = totals[0].Revenue
	}

	return stats, nil
}
