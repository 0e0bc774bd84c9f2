package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin to read the health payload. Preflight requests are
// passed through to the handler so OPTIONS is answered like every other method.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:     []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:     []string{"X-Request-Id"},
		OptionsPassthrough: true,
		MaxAge:             300,
	})
}
