// Package store holds finished benchmark runs in process memory.
package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

// Memory is a bounded, concurrency-safe run history. Once it holds limit
// runs, saving a new one evicts the oldest.
type Memory struct {
	limit int
	runs  *safeRef[[]run.Run] // oldest first
}

// NewMemory returns a store that keeps at most limit runs. A limit below 1
// is treated as 1.
func NewMemory(limit int) *Memory {
	limit = max(limit, 1)
	return &Memory{
		limit: limit,
		runs:  newRef(make([]run.Run, 0, limit)),
	}
}

// Save records a copy of r. A run whose ID is already held replaces the
// old record and becomes the newest.
func (m *Memory) Save(ctx context.Context, r *run.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r == nil {
		return domain.Invalid("run", "required")
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	rec := clone(*r)
	m.runs.Update(func(runs *[]run.Run) {
		*runs = slices.DeleteFunc(*runs, func(held run.Run) bool { return held.ID == rec.ID })
		if len(*runs) >= m.limit {
			*runs = slices.Delete(*runs, 0, len(*runs)-m.limit+1)
		}
		*runs = append(*runs, rec)
	})
	return nil
}

// Get returns a copy of the run with the given ID.
func (m *Memory) Get(ctx context.Context, id string) (*run.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		found run.Run
		ok    bool
	)
	m.runs.View(func(runs []run.Run) {
		i := slices.IndexFunc(runs, func(held run.Run) bool { return held.ID == id })
		if i >= 0 {
			found, ok = clone(runs[i]), true
		}
	})
	if !ok {
		return nil, fmt.Errorf("run %q: %w", id, domain.ErrNotFound)
	}
	return &found, nil
}

// List returns copies of the held runs, newest first.
func (m *Memory) List(ctx context.Context) ([]run.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []run.Run
	m.runs.View(func(runs []run.Run) {
		out = make([]run.Run, 0, len(runs))
		for i := len(runs) - 1; i >= 0; i-- {
			out = append(out, clone(runs[i]))
		}
	})
	return out, nil
}

// Len reports how many runs are held.
func (m *Memory) Len() int {
	var n int
	m.runs.View(func(runs []run.Run) { n = len(runs) })
	return n
}

func clone(r run.Run) run.Run {
	r.Results = slices.Clone(r.Results)
	return r
}
