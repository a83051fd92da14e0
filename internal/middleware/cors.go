package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSMiddleware configures CORS settings
func CORSMiddleware(allowedOrigins []string, isDevelopment bool) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	switch {
	case isDevelopment:
		// In development, allow all origins
		opts.AllowedOrigins = []string{"*"}
	case len(allowedOrigins) == 0:
		// go-chi/cors treats an empty origin list as allow-all, so an
		// unconfigured production deployment must allow none instead.
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool { return false }
	default:
		opts.AllowedOrigins = allowedOrigins
	}

	return cors.Handler(opts)
}
