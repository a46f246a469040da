package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupMiddleware returns the middleware chain shared by every route. A map
// that finishes generating after the timeout is discarded instead of stored.
func SetupMiddleware(timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// Request ID for tracing
		middleware.RequestID,

		middleware.RealIP,

		// Logging middleware
		middleware.Logger,

		// Recovery middleware
		middleware.Recoverer,

		// CORS middleware for public API
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           300,
		}),

		// Content type middleware; the image handler overrides it
		middleware.SetHeader("Content-Type", "application/json"),

		// Timeout middleware
		middleware.Timeout(timeout),
	}
}

// RateLimitMiddleware caps how many requests run at once on a route.
func RateLimitMiddleware(concurrent int) func(http.Handler) http.Handler {
	return middleware.ThrottleBacklog(concurrent, concurrent*2, time.Minute)
}
