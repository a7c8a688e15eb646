package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/photo-printer/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	composeHandler := handlers.NewComposeHandler(s.config, s.jobManager)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Layout catalog
		r.Get("/layouts", handlers.ListLayouts)
		r.Get("/papers", handlers.ListPapers)

		// Page geometry preview
		r.Post("/preview", handlers.Preview)

		// Compose (long-running operations)
		r.Post("/compose", composeHandler.Start)
		r.Get("/compose/{jobId}", composeHandler.Status)
		r.Delete("/compose/{jobId}", composeHandler.Cancel)
	})
}
