package router

import (
	"recruitdash-cache-api/internal/handler"
	"recruitdash-cache-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler       *handler.Handler
	CacheHandler  *handler.CacheHandler
	EventsHandler *handler.EventsHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
		}

		if cfg.CacheHandler != nil {
			r.Route("/cache", func(r chi.Router) {
				r.Get("/stats", cfg.CacheHandler.GetStats)
				r.Post("/invalidate", cfg.CacheHandler.InvalidateAll)
			})
		}

		if cfg.EventsHandler != nil {
			r.Route("/events", func(r chi.Router) {
				r.Post("/jobs", cfg.EventsHandler.JobEvent)
				r.Post("/comparisons", cfg.EventsHandler.ComparisonEvent)
				r.Post("/resumes", cfg.EventsHandler.ResumeEvent)
			})
		}
	})

	return r
}
