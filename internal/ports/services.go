package ports

import (
	"context"

	"github.com/shreyasbhat0/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// CreateTodo validates and creates a new todo, returning the created
	// entity with its server-assigned id.
	// Returns domain.ErrValidation if the todo fails validation.
	CreateTodo(ctx context.Context, td *todo.Todo) (*todo.Todo, error)

	// GetTodo returns a single todo by id.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id uint64) (*todo.Todo, error)

	// ListTodos returns a page of todos in creation order starting at
	// offset, together with the total record count. A nil limit means
	// "through the end". Out-of-range windows yield an empty page; the
	// operation cannot fail.
	ListTodos(ctx context.Context, offset uint64, limit *uint64) todo.Page

	// UpdateTodo applies a partial update and returns the updated entity.
	// Returns domain.ErrNotFound if the todo does not exist.
	// Returns domain.ErrValidation if the patch fails validation.
	UpdateTodo(ctx context.Context, id uint64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo deletes a todo by id.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id uint64) error
}
