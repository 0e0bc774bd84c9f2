// Package routes assembles the HTTP handler tree.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neurosell/health-server/internal/http/health"
	"github.com/neurosell/health-server/internal/platform/logging"
	appmiddleware "github.com/neurosell/health-server/internal/platform/middleware"
	"github.com/neurosell/health-server/internal/platform/respond"
)

// New returns a router that sends every method on every path to the health handler.
func New() http.Handler {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.Security(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		logging.RequestLogger(),
		logging.AccessLogger(),
		respond.Recoverer(),
	)
	Register(router)
	return router
}

// Register mounts the health handler as a catch-all on r.
func Register(r chi.Router) {
	handler := http.HandlerFunc(health.Handler)
	r.Handle("/", handler)
	r.Handle("/*", handler)
	// Non-standard methods never match a route; answer them the same way.
	r.NotFound(handler)
	r.MethodNotAllowed(handler)
}
