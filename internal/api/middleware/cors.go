package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
)

// corsMaxAgeSeconds is how long browsers may cache a preflight result.
const corsMaxAgeSeconds = 300

// NewCORS returns middleware that answers CORS preflight requests with 204 and
// sets CORS headers on responses. A single "*" entry allows any origin;
// otherwise the request Origin must be listed.
func NewCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:       []string{"Content-Type", "Authorization", shared.TraceIDHeader},
		ExposedHeaders:       []string{shared.TraceIDHeader},
		MaxAge:               corsMaxAgeSeconds,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
