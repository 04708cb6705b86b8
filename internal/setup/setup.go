package setup

import (
	"context"

	"github.com/nahid-dev/portfolio-api/internal/config"
	"github.com/nahid-dev/portfolio-api/internal/gateway/stripe"
	"github.com/nahid-dev/portfolio-api/internal/handler"
	"github.com/nahid-dev/portfolio-api/internal/jwt"
	"github.com/nahid-dev/portfolio-api/internal/middleware"
	"github.com/nahid-dev/portfolio-api/internal/service"
	"github.com/nahid-dev/portfolio-api/internal/storage/mongo"
)

// Dependencies holds all initialized components of the application.
type Dependencies struct {
	Storage        *mongo.Storage
	Handler        *handler.Handler
	Auth           *middleware.Auth
	AllowedOrigins []string
}

// SetupDependencies constructs the store client, token service, payment
// gateway and services, and injects them explicitly. No package-level
// singletons: every handler reaches the store through these values.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := mongo.New(ctx, cfg.MongoURI(), cfg.Public.DbName, cfg.Public.AtomicCheckout)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.AccessSecret(), cfg.JwtTTL())
	gateway := stripe.New(cfg.PaymentKey())

	auth := service.NewAuth(tokens)
	users := service.NewUsers(storage)
	resources := service.NewResources(storage)
	checkout := service.NewCheckout(storage, gateway)
	stats := service.NewStats(storage)

	h := handler.New(auth, users, resources, checkout, stats, storage)
	authMw := middleware.NewAuth(tokens, storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		Auth:           authMw,
		AllowedOrigins: cfg.Public.AllowedOrigins,
	}, nil
}
