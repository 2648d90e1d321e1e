// Package app provides application services that orchestrate use cases by
// coordinating domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/logging"
	"github.com/jsamuelsen11/go-scopeguard/internal/ports"
)

var _ ports.RunService = (*RunService)(nil)

// RunService implements ports.RunService. It runs the benchmark, records
// successful runs and hands them to the publisher.
type RunService struct {
	bench     ports.Benchmarker
	store     ports.RunStore
	publisher ports.Publisher
	logger    *slog.Logger
}

// NewRunService creates a RunService. A nil publisher disables publishing
// and a nil logger discards output.
func NewRunService(bench ports.Benchmarker, store ports.RunStore, publisher ports.Publisher, logger *slog.Logger) *RunService {
	return &RunService{
		bench:     bench,
		store:     store,
		publisher: publisher,
		logger:    logging.OrDiscard(logger),
	}
}

// Execute runs the benchmark once in the given mode.
//
// Once the run succeeds it is saved; a save failure fails the call. The
// saved run is then published, and publish errors are only logged. Any
// failure, including a panic out of the benchmark, is logged once.
func (s *RunService) Execute(ctx context.Context, mode run.Mode) (rec *run.Run, err error) {
	if !mode.IsValid() {
		return nil, domain.Invalid("mode", fmt.Sprintf("must be %q or %q, got %q", run.ModeClean, run.ModeFault, mode))
	}

	s.logger.InfoContext(ctx, "executing run", slog.String("mode", mode.String()))

	failed := guard.OnFailure(guard.ErrorResult(&err), func() {
		s.logger.ErrorContext(ctx, "run failed",
			slog.String("operation", "Execute"),
			slog.String("mode", mode.String()),
			slog.Any("error", err),
		)
	}, guard.WithName("run.failed"), guard.WithLogger(s.logger))
	defer failed.Close()

	commit := guard.OnSuccess(guard.ErrorResult(&err), func() {
		if saveErr := s.store.Save(ctx, rec); saveErr != nil {
			rec, err = nil, fmt.Errorf("saving run %s: %w", rec.ID, saveErr)
			return
		}
		s.publish(ctx, rec)
	}, guard.WithName("run.commit"), guard.WithLogger(s.logger))
	defer commit.Close()

	return s.bench.Run(ctx, mode)
}

// Get returns a recorded run.
func (s *RunService) Get(ctx context.Context, id string) (*run.Run, error) {
	s.logger.DebugContext(ctx, "fetching run", slog.String("run_id", id))

	r, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch run",
			slog.String("operation", "Get"),
			slog.String("run_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return r, nil
}

// List returns the recorded runs, newest first.
func (s *RunService) List(ctx context.Context) ([]run.Run, error) {
	runs, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list runs",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return runs, nil
}

func (s *RunService) publish(ctx context.Context, r *run.Run) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, r); err != nil {
		s.logger.WarnContext(ctx, "failed to publish run",
			slog.String("operation", "Execute"),
			slog.String("run_id", r.ID),
			slog.Any("error", err),
		)
		return
	}
	s.logger.InfoContext(ctx, "run published", slog.String("run_id", r.ID))
}
