// Package http provides the inbound HTTP adapter for the run report server:
// routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all report routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	runHandler *handlers.RunHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/runs", runHandler.ListRuns)
		r.Post("/runs", runHandler.CreateRun)
		r.Get("/runs/{id}", runHandler.GetRun)
	})

	return r
}
