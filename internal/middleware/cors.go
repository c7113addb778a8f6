package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS answers cross-origin preflight for the public API so the static
// frontend can post the contact form from its own origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}
