package dto

import (
	"strings"

	"github.com/shreyasbhat0/todo-service/internal/domain"
	"github.com/shreyasbhat0/todo-service/internal/domain/todo"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// CreateTodoRequest represents the JSON body for creating a new todo.
// The description is optional free text and may be empty.
type CreateTodoRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToTodo converts the request to a domain Todo entity.
func (r *CreateTodoRequest) ToTodo() *todo.Todo {
	return &todo.Todo{
		Name:        r.Name,
		Description: r.Description,
	}
}

// UpdateTodoRequest represents the JSON body for updating an existing todo.
// All fields are optional; nil means "do not change this field".
type UpdateTodoRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// Validate checks that any provided fields have valid values. The name may
// not be cleared; the description may be set to empty.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to a domain Patch.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	return todo.Patch{
		Name:        r.Name,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
	}
}
