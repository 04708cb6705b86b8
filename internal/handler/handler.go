package handler

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-dev/portfolio-api/internal/api"
	"github.com/nahid-dev/portfolio-api/internal/service"
)

// Pinger reports document store reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth      service.AuthService
	users     service.UsersService
	resources service.ResourcesService
	checkout  service.CheckoutService
	stats     service.StatsService
	health    Pinger
}

func New(auth service.AuthService, users service.UsersService, resources service.ResourcesService, checkout service.CheckoutService, stats service.StatsService, health Pinger) *Handler {
	return &Handler{auth, users, resources, checkout, stats, health}
}

// Root is the plain-text status route at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Server is running"))
}

// Ready returns 200 when the document store answers a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func insertResult(res *driver.InsertOneResult) api.InsertResult {
	out := api.InsertResult{}
	if res == nil {
		return out
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedId = oid.Hex()
	}
	return out
}

func updateResult(res *driver.UpdateResult) api.UpdateResult {
	out := api.UpdateResult{}
	if res == nil {
		return out
	}
	out.MatchedCount = res.MatchedCount
	out.ModifiedCount = res.ModifiedCount
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedId = oid.Hex()
	}
	return out
}

func deleteResult(res *driver.DeleteResult) api.DeleteResult {
	out := api.DeleteResult{}
	if res == nil {
		return out
	}
	out.DeletedCount = res.DeletedCount
	return out
}
