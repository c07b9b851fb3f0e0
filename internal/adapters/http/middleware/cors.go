package middleware

import (
	"net/http"

	gorilla "github.com/gorilla/handlers"
)

// CORS returns middleware that handles cross-origin requests from the
// dashboard frontend. An empty allowedOrigins list disables CORS handling
// entirely, returning a pass-through middleware.
//
// Only safe read methods are allowed since the service exposes no write
// endpoints.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return gorilla.CORS(
		gorilla.AllowedOrigins(allowedOrigins),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodOptions}),
		gorilla.AllowedHeaders([]string{"Content-Type", "X-Request-ID", "X-Correlation-ID"}),
	)
}
