// Package http provides the inbound HTTP adapter: routing, middleware
// wiring, and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/handlers"
)

// NewRouter registers every route on a chi mux. Middleware applies globally,
// outermost first, to the API and health endpoints alike.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	mountHealth(r, healthHandler)
	r.Route("/api/v1", func(api chi.Router) {
		mountTodos(api, todoHandler)
	})

	return r
}

// mountHealth registers the probes outside /api/v1, so orchestrators reach
// them on unversioned paths.
func mountHealth(r chi.Router, h *handlers.HealthHandler) {
	r.Get("/health/live", h.Liveness)
	r.Get("/health/ready", h.Readiness)
}

func mountTodos(r chi.Router, h *handlers.TodoHandler) {
	r.Get("/todos", h.ListTodos)
	r.Post("/todos", h.CreateTodo)
	r.Get("/todos/{id}", h.GetTodo)
	r.Patch("/todos/{id}", h.UpdateTodo)
	r.Delete("/todos/{id}", h.DeleteTodo)
}
