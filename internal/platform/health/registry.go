// Package health provides a thread-safe health check registry for tracking
// the health of downstream dependencies. The registry is used by the readiness
// endpoint to determine whether the service can accept traffic.
package health

import (
	"context"
	"sync"

	"github.com/shreyasbhat0/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// maxConcurrentChecks bounds how many health checks run at once. Readiness
// probes have tight deadlines, so checks run in parallel rather than
// accumulating each checker's latency.
const maxConcurrentChecks = 4

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components.
//
// Checks run concurrently, bounded by maxConcurrentChecks. Outcomes are
// collected per checker and folded into the map in registration order, so
// when two checkers share a name the later registration wins regardless of
// which goroutine finished first. A check that gets a slot always runs,
// even under a canceled context; only checks still waiting for a slot are
// abandoned with ctx.Err().
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	outcomes := make([]error, len(checkers))
	sem := make(chan struct{}, maxConcurrentChecks)
	var wg sync.WaitGroup

	for i, c := range checkers {
		wg.Add(1)
		go func(idx int, checker ports.HealthChecker) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			default:
				select {
				case sem <- struct{}{}:
				case <-ctx.Done():
					outcomes[idx] = ctx.Err()
					return
				}
			}
			defer func() { <-sem }()

			outcomes[idx] = checker.HealthCheck(ctx)
		}(i, c)
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i]
	}
	return results
}
