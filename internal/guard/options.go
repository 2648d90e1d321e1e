package guard

import (
	"fmt"
	"log/slog"
	"os"
)

// exitCode is the status used when a contained action panics.
const exitCode = 2

var (
	osExit = os.Exit

	// exit is swapped out by tests that exercise the default terminate path.
	exit = osExit
)

// Variant identifies which entry point produced a guard.
type Variant uint8

const (
	VariantExit    Variant = iota // OnExit and New
	VariantFailure                // OnFailure, RunOnNewError
	VariantSuccess                // OnSuccess, RunOnSuccess
)

// String returns "exit", "failure", or "success".
func (v Variant) String() string {
	switch v {
	case VariantExit:
		return "exit"
	case VariantFailure:
		return "failure"
	case VariantSuccess:
		return "success"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// Crash describes a contained action that panicked.
type Crash struct {
	Name    string
	Variant Variant
	Value   any
	Stack   []byte
}

// Hooks observes guards as they close. Fired is called just before an action
// runs; Dismissed is called when a dismissed guard is closed. Moved-from
// guards report nothing.
type Hooks interface {
	Fired(name string, v Variant)
	Dismissed(name string, v Variant)
}

// Option configures a guard.
type Option func(*settings)

type settings struct {
	name      string
	logger    *slog.Logger
	terminate func(Crash)
	hooks     Hooks
}

// WithName labels the guard in logs, crash reports and hooks.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithLogger sets the logger used to report a crash before the process
// exits. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithTerminate replaces process termination for contained actions that
// panic. If fn returns, the guard counts the action as run and Close
// returns normally.
func WithTerminate(fn func(Crash)) Option {
	return func(s *settings) {
		s.terminate = fn
	}
}

// WithHooks reports guard activity to h.
func WithHooks(h Hooks) Option {
	return func(s *settings) {
		s.hooks = h
	}
}

// applyOptions keeps the option-free path free of allocations.
func applyOptions(opts []Option) settings {
	if len(opts) == 0 {
		return settings{}
	}
	s := new(settings)
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return *s
}

func (s *settings) fired(v Variant) {
	if s.hooks != nil {
		s.hooks.Fired(s.name, v)
	}
}

func (s *settings) dismissed(v Variant) {
	if s.hooks != nil {
		s.hooks.Dismissed(s.name, v)
	}
}

func (s *settings) crash(c Crash) {
	if s.terminate != nil {
		s.terminate(c)
		return
	}

	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("scope guard action panicked, terminating",
		slog.String("guard", c.Name),
		slog.String("variant", c.Variant.String()),
		slog.String("panic", fmt.Sprint(c.Value)),
		slog.String("stack", string(c.Stack)),
	)
	exit(exitCode)
}
