package ports

import (
	"context"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

// RunStore holds finished runs. Implemented by the store adapter.
type RunStore interface {
	// Save records a run. Saving a run with an existing ID replaces it.
	Save(ctx context.Context, r *run.Run) error

	// Get returns a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*run.Run, error)

	// List returns the held runs, newest first.
	List(ctx context.Context) ([]run.Run, error)
}

// Publisher delivers finished runs to an external results collector.
// Implemented by the publish adapter.
type Publisher interface {
	// Publish sends the run. Returns domain.ErrUnavailable when the
	// collector cannot be reached.
	Publish(ctx context.Context, r *run.Run) error
}
