// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buildsight/timeline-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	timelineHandler *handlers.TimelineHandler,
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

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Per-project views.
		r.Get("/projects/{projectId}/log", timelineHandler.LogView)
		r.Get("/projects/{projectId}/timeline", timelineHandler.MilestoneView)

		// Cross-project aggregation.
		r.Get("/portfolio/log", timelineHandler.PortfolioLogViews)
	})

	return r
}
