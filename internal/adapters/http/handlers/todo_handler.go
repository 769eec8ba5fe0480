// Package handlers implements the HTTP endpoints of the todo API.
package handlers

import (
	"net/http"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/dto"
	"github.com/shreyasbhat0/todo-service/internal/ports"
)

// TodoHandler serves the /api/v1/todos endpoints, translating between HTTP
// and the TodoService port.
type TodoHandler struct {
	todos ports.TodoService
}

// NewTodoHandler returns a TodoHandler backed by the given service.
func NewTodoHandler(todos ports.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// ListTodos handles GET /api/v1/todos. Offset and limit arrive as optional
// query parameters; the response is a 200 with the requested page.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parseListQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page := h.todos.ListTodos(r.Context(), offset, limit)
	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(page))
}

// CreateTodo handles POST /api/v1/todos, responding 201 with the stored
// record and its assigned id.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	t := decodeTodoCreate(w, r)
	if t == nil {
		return
	}

	created, err := h.todos.CreateTodo(r.Context(), t)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.todos.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// UpdateTodo handles PATCH /api/v1/todos/{id}. Only fields present in the
// body change; the response carries the full record after the patch.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	patch, ok := decodeTodoUpdate(w, r)
	if !ok {
		return
	}

	updated, err := h.todos.UpdateTodo(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}, responding 204 on success.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.todos.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
