// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/shreyasbhat0/todo-service/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
	}
}

// TodoListResponse represents one page of todos in HTTP responses. Count is
// the number of items in this page; Total is the number of todos stored.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
	Total int            `json:"total"`
}

// ToTodoListResponse converts a domain page to an HTTP list response DTO.
func ToTodoListResponse(page todo.Page) TodoListResponse {
	items := make([]TodoResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToTodoResponse(&page.Items[i])
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
		Total: page.Total,
	}
}
