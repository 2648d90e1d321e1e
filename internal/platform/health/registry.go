// Package health holds the registry the readiness endpoint consults.
package health

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-scopeguard/internal/platform/fanout"
	"github.com/jsamuelsen11/go-scopeguard/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds each check when no timeout is configured.
const DefaultCheckTimeout = 2 * time.Second

// maxParallelChecks caps how many checks run at once.
const maxParallelChecks = 8

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Non-positive values keep
// the default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Registry is a concurrency-safe [ports.HealthRegistry]. Checks run in
// parallel, each under its own timeout.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check and returns the results keyed by name. A nil
// value means healthy. When names collide the checker registered last
// wins. A panicking check reports the panic as its error.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxParallelChecks, checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		return struct{}{}, c.HealthCheck(ctx)
	})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}
