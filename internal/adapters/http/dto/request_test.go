package dto_test

import (
	"errors"
	"testing"

	"github.com/shreyasbhat0/todo-service/internal/adapters/http/dto"
	"github.com/shreyasbhat0/todo-service/internal/domain"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

// requireValidationField asserts err carries a ValidationError naming the
// given field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want a *ValidationError", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false for %v", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("fields = %v, want key %q", verr.Fields, field)
	}
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req: dto.CreateTodoRequest{
				Name:        "Buy groceries",
				Description: "Milk, eggs, bread",
			},
			wantErr: false,
		},
		{
			name: "empty description passes (optional)",
			req: dto.CreateTodoRequest{
				Name:        "Buy groceries",
				Description: "",
			},
			wantErr: false,
		},
		{
			name: "empty name fails",
			req: dto.CreateTodoRequest{
				Name:        "",
				Description: "Some description",
			},
			wantErr:   true,
			wantField: "name",
		},
		{
			name: "whitespace-only name fails",
			req: dto.CreateTodoRequest{
				Name:        "   ",
				Description: "Some description",
			},
			wantErr:   true,
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCreateTodoRequest_ToTodo(t *testing.T) {
	t.Parallel()

	req := dto.CreateTodoRequest{Name: "Buy groceries", Description: "Milk, eggs, bread"}
	got := req.ToTodo()

	if got.Name != "Buy groceries" {
		t.Errorf("ToTodo().Name = %q, want %q", got.Name, "Buy groceries")
	}
	if got.Description != "Milk, eggs, bread" {
		t.Errorf("ToTodo().Description = %q, want %q", got.Description, "Milk, eggs, bread")
	}
	if got.ID != 0 {
		t.Errorf("ToTodo().ID = %d, want 0", got.ID)
	}
	if got.IsCompleted {
		t.Error("ToTodo().IsCompleted = true, want false")
	}
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "all nil passes (no-op update)",
			req:     dto.UpdateTodoRequest{},
			wantErr: false,
		},
		{
			name:    "valid name passes",
			req:     dto.UpdateTodoRequest{Name: stringPtr("New name")},
			wantErr: false,
		},
		{
			name:      "empty name fails",
			req:       dto.UpdateTodoRequest{Name: stringPtr("")},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "whitespace-only name fails",
			req:       dto.UpdateTodoRequest{Name: stringPtr("  ")},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:    "valid description passes",
			req:     dto.UpdateTodoRequest{Description: stringPtr("New desc")},
			wantErr: false,
		},
		{
			name:    "empty description passes (clears the field)",
			req:     dto.UpdateTodoRequest{Description: stringPtr("")},
			wantErr: false,
		},
		{
			name:    "completion flag passes",
			req:     dto.UpdateTodoRequest{IsCompleted: boolPtr(true)},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestUpdateTodoRequest_ToPatch(t *testing.T) {
	t.Parallel()

	req := dto.UpdateTodoRequest{
		Name:        stringPtr("New name"),
		IsCompleted: boolPtr(true),
	}
	got := req.ToPatch()

	if got.Name == nil || *got.Name != "New name" {
		t.Errorf("ToPatch().Name = %v, want %q", got.Name, "New name")
	}
	if got.Description != nil {
		t.Errorf("ToPatch().Description = %v, want nil", got.Description)
	}
	if got.IsCompleted == nil || !*got.IsCompleted {
		t.Errorf("ToPatch().IsCompleted = %v, want true", got.IsCompleted)
	}
}
