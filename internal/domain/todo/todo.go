package todo

import (
	"strings"

	"github.com/shreyasbhat0/todo-service/internal/domain"
)

// Todo represents a single task record.
type Todo struct {
	ID          uint64
	Name        string
	Description string
	IsCompleted bool
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass. The description is free
// text and may be empty.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch holds optional field updates for a Todo.
// Nil fields are left unchanged when the patch is applied.
type Patch struct {
	Name        *string
	Description *string
	IsCompleted *bool
}

// Validate checks that any provided fields have valid values, using the
// same rules as Todo.Validate. Unset fields are not checked.
func (p Patch) Validate() error {
	fields := make(map[string]string)

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		fields["name"] = domain.MsgMustNotBeEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsZero reports whether the patch sets no fields.
func (p Patch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.IsCompleted == nil
}

// Apply copies every set field onto t.
func (p Patch) Apply(t *Todo) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}
}

// Page is an insertion-ordered window over the stored todos together with
// the total number of records at the time of the read.
type Page struct {
	Items []Todo
	Total int
}
