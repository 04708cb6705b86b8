package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/nahid-dev/portfolio-api/internal/middleware"
	"github.com/nahid-dev/portfolio-api/internal/middleware/metrics"
	"github.com/nahid-dev/portfolio-api/internal/setup"
)

// New wires the HTTP surface. Protected routes compose the auth chain
// explicitly: RequireAuth alone for "must be logged in", RequireAuth
// followed by RequireAdmin for admin-only routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	h := deps.Handler
	auth := deps.Auth

	r.Get("/", h.Root)
	r.Get("/healthz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/jwt", h.IssueToken)
	r.Post("/users", h.RegisterUser)
	// deliberately unguarded, as in the original surface
	r.Patch("/users/admin/{id}", h.PromoteAdmin)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(), auth.RequireAdmin())
		r.Get("/users", h.GetUsers)
	})

	// Logged-in routes
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth())
		r.Get("/users/admin/{email}", h.AdminStatus)
		r.Get("/cart", h.GetCart)
		r.Post("/cart", h.AddCartItem)
		r.Post("/create-payment-intent", h.CreatePaymentIntent)
		r.Post("/payments", h.FinalizeCheckout)
	})

	// Public pass-through CRUD, collection name constrained by the route
	r.Get("/{collection:(?:blogs|projects)}", h.ListCollection)
	r.Post("/{collection:(?:blogs|projects)}", h.InsertDocument)
	r.Put("/{collection:(?:users|blogs|projects)}/{id}", h.UpsertDocument)
	r.Delete("/{collection:(?:users|blogs|projects)}/{id}", h.DeleteDocument)

	r.Get("/admin-stats", h.AdminStats)

	return r
}
