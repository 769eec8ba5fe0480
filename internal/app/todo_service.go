// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/shreyasbhat0/todo-service/internal/domain"
	"github.com/shreyasbhat0/todo-service/internal/domain/todo"
	"github.com/shreyasbhat0/todo-service/internal/platform/telemetry"
	"github.com/shreyasbhat0/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// Operation names recorded on store metrics.
const (
	opCreate = "create"
	opGet    = "get"
	opList   = "list"
	opUpdate = "update"
	opDelete = "delete"
)

// TodoService implements ports.TodoService by orchestrating calls to the
// todo table through the TodoStore port. It handles validation, structured
// logging, and per-operation metrics but contains no storage logic.
type TodoService struct {
	store   ports.TodoStore
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewTodoService creates a TodoService. The store port provides record
// storage; the logger is used for structured request/error logging. A nil
// logger is replaced with a no-op logger, and a nil metrics skips
// operation metrics.
func NewTodoService(store ports.TodoStore, logger *slog.Logger, metrics *telemetry.Metrics) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// CreateTodo validates and creates a new todo, returning the created entity
// with its server-assigned id. New todos always start incomplete.
func (s *TodoService) CreateTodo(ctx context.Context, td *todo.Todo) (_ *todo.Todo, err error) {
	defer s.recordOp(ctx, opCreate, time.Now(), &err)

	if td == nil {
		err = &domain.ValidationError{Fields: map[string]string{"todo": domain.MsgRequired}}
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating todo", slog.String("name", td.Name))

	if err = td.Validate(); err != nil {
		return nil, err
	}

	id, err := s.store.Create(td.Name, td.Description)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &todo.Todo{
		ID:          id,
		Name:        td.Name,
		Description: td.Description,
		IsCompleted: false,
	}, nil
}

// GetTodo returns a single todo by id.
func (s *TodoService) GetTodo(ctx context.Context, id uint64) (_ *todo.Todo, err error) {
	defer s.recordOp(ctx, opGet, time.Now(), &err)

	s.logger.InfoContext(ctx, "fetching todo", slog.Uint64("id", id))

	td, err := s.store.Get(id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "GetTodo"),
			slog.Uint64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &td, nil
}

// ListTodos returns a page of todos in creation order starting at offset,
// together with the total record count. A nil limit means "through the
// end"; out-of-range windows yield an empty page.
func (s *TodoService) ListTodos(ctx context.Context, offset uint64, limit *uint64) todo.Page {
	var err error
	defer s.recordOp(ctx, opList, time.Now(), &err)

	s.logger.InfoContext(ctx, "listing todos", slog.Uint64("offset", offset))

	return todo.Page{
		Items: s.store.List(offset, limit),
		Total: s.store.Len(),
	}
}

// UpdateTodo validates and applies a partial update, then returns the
// updated entity. Unset patch fields retain their prior values.
func (s *TodoService) UpdateTodo(ctx context.Context, id uint64, patch todo.Patch) (_ *todo.Todo, err error) {
	defer s.recordOp(ctx, opUpdate, time.Now(), &err)

	s.logger.InfoContext(ctx, "updating todo", slog.Uint64("id", id))

	if err = patch.Validate(); err != nil {
		return nil, err
	}

	// An empty patch changes nothing, so a read serves it without the write
	// lock. Absent ids still surface as not found.
	if patch.IsZero() {
		var td todo.Todo
		if td, err = s.store.Get(id); err != nil {
			return nil, err
		}
		return &td, nil
	}

	if _, err = s.store.Update(id, patch); err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "UpdateTodo"),
			slog.Uint64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	// Re-read so the caller sees the record as stored. A concurrent delete
	// between the write and this read surfaces as not found, which is also
	// what the caller would see moments later.
	td, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("reloading todo: %w", err)
	}

	return &td, nil
}

// DeleteTodo deletes a todo by id. The freed id is never reissued.
func (s *TodoService) DeleteTodo(ctx context.Context, id uint64) (err error) {
	defer s.recordOp(ctx, opDelete, time.Now(), &err)

	s.logger.InfoContext(ctx, "deleting todo", slog.Uint64("id", id))

	if _, err = s.store.Delete(id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "DeleteTodo"),
			slog.Uint64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// recordOp records duration and count metrics for a store operation.
// Safe to call with nil metrics. The error pointer is read at defer time so
// the recorded result reflects the operation's outcome.
func (s *TodoService) recordOp(ctx context.Context, op string, start time.Time, errp *error) {
	if s.metrics == nil {
		return
	}

	result := "ok"
	switch err := *errp; {
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case errors.Is(err, domain.ErrValidation):
		result = "invalid"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}
