package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// Field-level validation messages shared by entities and request DTOs.
const (
	MsgRequired       = "is required"
	MsgMustNotBeEmpty = "must not be empty"
)

// NotFoundError reports a lookup for a todo id that has no record.
// Use errors.Is(err, ErrNotFound) for simple checks, or errors.As(err, &nfe)
// to access the missing id.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo %d: %s", e.ID, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
