package store

import (
	"context"
	"fmt"
)

// Name returns the identifier used when the store is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "todo-store"
}

// HealthCheck verifies the store's internal consistency: the order index and
// the record table must describe the same set of ids, with no id listed
// twice. A mismatch means the two structures have diverged and paginated
// reads can no longer be trusted.
func (s *Store) HealthCheck(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) != len(s.records) {
		return fmt.Errorf("todo-store: order index holds %d ids, record table holds %d", len(s.order), len(s.records))
	}

	seen := make(map[uint64]struct{}, len(s.order))
	for _, id := range s.order {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("todo-store: order index lists id %d twice", id)
		}
		seen[id] = struct{}{}

		if _, ok := s.records[id]; !ok {
			return fmt.Errorf("todo-store: order index references missing record %d", id)
		}
	}

	return nil
}
