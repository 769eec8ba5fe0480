// Package store provides the in-memory todo table backing the service.
// It owns id assignment, insertion-order pagination, and partial updates.
package store

import (
	"slices"
	"sync"

	"github.com/shreyasbhat0/todo-service/internal/domain"
	"github.com/shreyasbhat0/todo-service/internal/domain/todo"
	"github.com/shreyasbhat0/todo-service/internal/ports"
)

// Compile-time check that Store implements ports.TodoStore.
var _ ports.TodoStore = (*Store)(nil)

// Store is an id-keyed todo table with an insertion-order index.
//
// records and order move in lockstep: every id in order has exactly one
// entry in records and vice versa. nextID only grows, so an id is never
// reissued after its record is deleted. Methods are safe for concurrent
// use: reads share the lock, writes hold it exclusively, and every
// operation sees a consistent snapshot of both structures.
type Store struct {
	mu      sync.RWMutex
	records map[uint64]todo.Todo
	order   []uint64
	nextID  uint64
}

// New returns an empty Store. Ids are assigned from 0 upward.
// Each call returns an independent instance with no shared state.
func New() *Store {
	return &Store{
		records: make(map[uint64]todo.Todo),
	}
}

// Create allocates the next id and inserts a todo with the given name and
// description. New todos start with IsCompleted false. Any text is
// accepted, including empty strings; the error channel is reserved for
// future validation and is always nil today.
func (s *Store) Create(name, description string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	s.records[id] = todo.Todo{
		ID:          id,
		Name:        name,
		Description: description,
	}
	s.order = append(s.order, id)

	return id, nil
}

// Get returns a copy of the todo with the given id.
// Returns domain.ErrNotFound if no record has that id.
func (s *Store) Get(id uint64) (todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	td, ok := s.records[id]
	if !ok {
		return todo.Todo{}, &domain.NotFoundError{ID: id}
	}
	return td, nil
}

// List returns todos in creation order starting at position offset, which
// indexes the order sequence rather than any id. A nil limit means
// "through the end". An offset past the end or a zero limit yields an
// empty slice; out-of-range windows truncate rather than fail.
func (s *Store) List(offset uint64, limit *uint64) []todo.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := uint64(len(s.order))
	if offset >= n {
		return []todo.Todo{}
	}

	end := n
	if limit != nil && *limit < n-offset {
		end = offset + *limit
	}

	page := make([]todo.Todo, 0, end-offset)
	for _, id := range s.order[offset:end] {
		page = append(page, s.records[id])
	}
	return page
}

// Update applies the set fields of patch to the stored todo. The patch is
// applied to a copy and written back in one step, so a concurrent reader
// never observes a partially updated record. Returns true on success.
// Returns domain.ErrNotFound if no record has that id; the table is left
// untouched in that case.
func (s *Store) Update(id uint64, patch todo.Patch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	td, ok := s.records[id]
	if !ok {
		return false, &domain.NotFoundError{ID: id}
	}

	patch.Apply(&td)
	s.records[id] = td

	return true, nil
}

// Delete removes the todo with the given id from both the table and the
// order index. The freed id is never reissued because nextID does not
// move backward. Returns true on success.
// Returns domain.ErrNotFound if no record has that id.
func (s *Store) Delete(id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false, &domain.NotFoundError{ID: id}
	}

	delete(s.records, id)
	s.order = slices.DeleteFunc(s.order, func(oid uint64) bool { return oid == id })

	return true, nil
}

// Len reports the number of stored todos.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
