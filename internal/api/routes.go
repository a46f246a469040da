package api

import (
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SetupRoutes(handler *Handler, timeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, middleware := range SetupMiddleware(timeout) {
		r.Use(middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/biomes", handler.ListBiomes)

		r.Route("/maps", func(r chi.Router) {
			r.Get("/", handler.ListMaps)
			r.With(RateLimitMiddleware(runtime.NumCPU())).Post("/", handler.CreateMap)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetMap)
				r.Delete("/", handler.DeleteMap)
				r.Get("/cells", handler.GetMapCells)
				r.Get("/image.png", handler.GetMapImage)
			})
		})
	})

	return r
}
