// Package run holds the record of one benchmark run: which mode it used,
// how each checking strategy fared, and the host it ran on.
package run

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
)

// StrategyResult is the outcome of one checking strategy within a run.
type StrategyResult struct {
	Strategy string
	Sum      int64
	Elapsed  time.Duration
	// Faulted is set when the strategy hit an out-of-range access.
	Faulted bool
	// FaultAfter is the time from the strategy's start to the fault.
	FaultAfter time.Duration
	// Caught is set when the fault escaped the strategy and the runner
	// had to recover it.
	Caught bool
}

// HostInfo describes the machine a run executed on.
type HostInfo struct {
	Hostname     string
	OS           string
	Arch         string
	CPUModel     string
	LogicalCores int
	TotalMemory  uint64
}

// Run is a completed benchmark run.
type Run struct {
	ID        string
	Mode      Mode
	StartedAt time.Time
	Total     time.Duration
	Size      int
	Overrun   int
	Results   []StrategyResult
	Host      HostInfo
}

// Result returns the outcome of the named strategy.
func (r *Run) Result(strategy string) (StrategyResult, bool) {
	for _, res := range r.Results {
		if res.Strategy == strategy {
			return res, true
		}
	}
	return StrategyResult{}, false
}

// Caught reports whether any fault escaped its strategy.
func (r *Run) Caught() bool {
	for _, res := range r.Results {
		if res.Caught {
			return true
		}
	}
	return false
}

// Validate checks the invariants of a finished run.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (r *Run) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ID) == "" {
		fields["id"] = "required"
	}
	if !r.Mode.IsValid() {
		fields["mode"] = fmt.Sprintf("invalid: %q", r.Mode)
	}
	if r.Size < 1 {
		fields["size"] = fmt.Sprintf("must be positive, got %d", r.Size)
	}
	if r.Mode == ModeClean && r.Overrun != 0 {
		fields["overrun"] = fmt.Sprintf("must be 0 for a clean run, got %d", r.Overrun)
	}
	if r.StartedAt.IsZero() {
		fields["started_at"] = "required"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
