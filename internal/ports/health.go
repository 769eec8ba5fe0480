package ports

import "context"

// HealthChecker is anything that can vouch for its own health, such as the
// todo store's integrity check. Implementations honor ctx cancellation and
// return nil when healthy.
type HealthChecker interface {
	// Name identifies the component in readiness output, e.g. "todo-store".
	Name() string

	// HealthCheck reports the component's current health.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects HealthCheckers and runs them for the readiness
// endpoint.
type HealthRegistry interface {
	// Register adds a checker. A checker re-registered under the same name
	// replaces the earlier one in the results.
	Register(checker HealthChecker)

	// CheckAll runs every registered check and keys the outcomes by checker
	// name; a nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
