package ports

import (
	"context"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

// RunService defines the service port for benchmark runs.
// Implemented by the application layer; called by inbound adapters (handlers,
// CLI commands).
type RunService interface {
	// Execute performs one benchmark run in the given mode, records it, and
	// publishes it when publishing is enabled.
	// Returns domain.ErrValidation if the mode is not valid.
	Execute(ctx context.Context, mode run.Mode) (*run.Run, error)

	// Get returns a recorded run by ID.
	// Returns domain.ErrNotFound if no such run is held.
	Get(ctx context.Context, id string) (*run.Run, error)

	// List returns the recorded runs, newest first.
	List(ctx context.Context) ([]run.Run, error)
}

// Benchmarker executes the checking strategies against the dataset.
// Implemented by the bench runner; called by the application layer.
type Benchmarker interface {
	Run(ctx context.Context, mode run.Mode) (*run.Run, error)
}
