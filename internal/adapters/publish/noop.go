package publish

import (
	"context"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
	"github.com/jsamuelsen11/go-scopeguard/internal/ports"
)

var _ ports.Publisher = Noop{}

// Noop discards runs. It is used when publishing is disabled.
type Noop struct{}

// Publish does nothing.
func (Noop) Publish(context.Context, *run.Run) error { return nil }
