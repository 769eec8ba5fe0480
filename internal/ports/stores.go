package ports

import (
	"github.com/shreyasbhat0/todo-service/internal/domain/todo"
)

// TodoStore defines the storage port for todo records.
// Implemented by the in-memory store; called by the application layer.
// Every operation completes synchronously against process-local state, so
// the methods take no context and honor no cancellation.
type TodoStore interface {
	// Create allocates the next id, inserts a todo with the given name and
	// description and is_completed false, and returns the assigned id.
	// The error channel is reserved for future validation; no current code
	// path populates it.
	Create(name, description string) (uint64, error)

	// Get returns a copy of the todo with the given id.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(id uint64) (todo.Todo, error)

	// List returns todos in creation order starting at position offset.
	// A nil limit means "through the end"; a present limit caps the page
	// size. Out-of-range offsets and zero limits yield an empty slice,
	// never an error.
	List(offset uint64, limit *uint64) []todo.Todo

	// Update applies the set fields of patch to the stored todo atomically.
	// Returns true on success.
	// Returns domain.ErrNotFound if the todo does not exist; the store is
	// left unchanged in that case.
	Update(id uint64, patch todo.Patch) (bool, error)

	// Delete removes the todo with the given id from the table and the
	// order index. The freed id is never reissued. Returns true on success.
	// Returns domain.ErrNotFound if the todo does not exist.
	Delete(id uint64) (bool, error)

	// Len reports the number of stored todos.
	Len() int
}
