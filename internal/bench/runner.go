// Package bench times four ways of reporting an out-of-range access while
// summing a dataset: a boolean result, an error result, a recovered panic,
// and a panic noted by an on-failure scope guard and left to propagate.
//
// A clean run reads exactly the dataset. A fault run reads a few indices
// past the end, so every strategy hits the fault; the scope-fail strategy's
// panic escapes and is caught by the runner.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/logging"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-scopeguard/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/go-scopeguard/internal/bench"

// Compile-time interface check.
var _ ports.Benchmarker = (*Runner)(nil)

// Runner executes every strategy against one dataset.
type Runner struct {
	ds         *Dataset
	overrun    int
	strategies []Strategy
	probe      func(context.Context) run.HostInfo
	metrics    *telemetry.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
	guardOpts  []guard.Option
	newID      func() string
	now        func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithStrategies replaces the default strategy list.
func WithStrategies(s ...Strategy) RunnerOption {
	return func(r *Runner) { r.strategies = s }
}

// WithHostProbe replaces the gopsutil host probe.
func WithHostProbe(fn func(context.Context) run.HostInfo) RunnerOption {
	return func(r *Runner) { r.probe = fn }
}

// WithIDs replaces the run ID generator.
func WithIDs(fn func() string) RunnerOption {
	return func(r *Runner) { r.newID = fn }
}

// NewRunner returns a runner over ds. A fault run reads overrun indices past
// the end. A nil metrics records nothing; a nil logger discards.
func NewRunner(ds *Dataset, overrun int, metrics *telemetry.Metrics, logger *slog.Logger, opts ...RunnerOption) *Runner {
	if metrics == nil {
		metrics = telemetry.NoopMetrics()
	}
	logger = logging.OrDiscard(logger)

	r := &Runner{
		ds:        ds,
		overrun:   overrun,
		probe:     ProbeHost,
		metrics:   metrics,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
		guardOpts: []guard.Option{guard.WithHooks(telemetry.GuardHooks(metrics)), guard.WithLogger(logger)},
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.strategies == nil {
		r.strategies = Strategies(r.guardOpts...)
	}
	return r
}

// Run executes all strategies in order and returns the run record. The run's
// Total covers host probing and every strategy.
func (r *Runner) Run(ctx context.Context, mode run.Mode) (*run.Run, error) {
	if !mode.IsValid() {
		return nil, domain.Invalid("mode", fmt.Sprintf("invalid: %q", mode))
	}

	ctx, span := r.tracer.Start(ctx, "bench.Run", trace.WithAttributes(
		telemetry.AttrMode.String(mode.String()),
	))
	defer span.End()

	rec := &run.Run{
		ID:        r.newID(),
		Mode:      mode,
		StartedAt: r.now(),
		Size:      r.ds.Len(),
		Overrun:   mode.Overrun(r.overrun),
	}

	total := guard.OnExit(func() {
		rec.Total = time.Since(rec.StartedAt)
	}, r.options("run.total")...)
	defer total.Close()

	rec.Host = r.probe(ctx)

	n := rec.Size + rec.Overrun
	for _, s := range r.strategies {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "canceled")
			return nil, fmt.Errorf("running %s: %w", s.Name(), err)
		}
		rec.Results = append(rec.Results, r.measure(ctx, s, mode, n))
	}

	r.metrics.RunTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrMode.String(mode.String()),
		telemetry.AttrResult.Bool(!rec.Caught()),
	))
	span.SetAttributes(attribute.String("bench.run_id", rec.ID))

	return rec, nil
}

// measure times one strategy and turns its outcome into a result.
func (r *Runner) measure(ctx context.Context, s Strategy, mode run.Mode, n int) run.StrategyResult {
	ctx, span := r.tracer.Start(ctx, "bench.strategy", trace.WithAttributes(
		telemetry.AttrStrategy.String(s.Name()),
	))
	defer span.End()

	var out Outcome
	caught := r.timed(ctx, s, n, &out)

	attrs := []attribute.KeyValue{
		telemetry.AttrStrategy.String(s.Name()),
		telemetry.AttrMode.String(mode.String()),
		telemetry.AttrFaulted.Bool(out.Faulted),
	}
	r.metrics.StrategyDuration.Record(ctx, out.Elapsed.Seconds(), metric.WithAttributes(attrs...))
	span.SetAttributes(attrs...)
	span.SetAttributes(attribute.Int64("bench.sum", out.Sum), attribute.Bool("bench.caught", caught))

	r.logger.DebugContext(ctx, "strategy finished",
		slog.String("strategy", s.Name()),
		slog.Int64("sum", out.Sum),
		slog.Duration("elapsed", out.Elapsed),
		slog.Bool("faulted", out.Faulted),
		slog.Duration("fault_after", out.FaultAfter),
		slog.Bool("caught", caught),
	)

	return run.StrategyResult{
		Strategy:   s.Name(),
		Sum:        out.Sum,
		Elapsed:    out.Elapsed,
		Faulted:    out.Faulted,
		FaultAfter: out.FaultAfter,
		Caught:     caught,
	}
}

// timed runs the strategy under an exit guard that records its duration,
// including the time spent unwinding a fault.
func (r *Runner) timed(ctx context.Context, s Strategy, n int, out *Outcome) bool {
	start := time.Now()
	timer := guard.OnExit(func() {
		out.Elapsed = time.Since(start)
	}, r.options(s.Name()+".timer")...)
	defer timer.Close()

	return r.invoke(ctx, s, n, out)
}

// invoke runs the strategy and catches an out-of-range fault that escapes
// it. A caught fault is raised on a Counter so the on-failure guard logs it
// even though the panic itself has been recovered. Other panics propagate.
func (r *Runner) invoke(ctx context.Context, s Strategy, n int, out *Outcome) (caught bool) {
	var faults guard.Counter

	report := guard.OnFailure(&faults, func() {
		trace.SpanFromContext(ctx).AddEvent("fault escaped strategy")
		r.logger.WarnContext(ctx, "fault escaped strategy",
			slog.String("strategy", s.Name()),
			slog.Duration("fault_after", out.FaultAfter),
		)
	}, r.options(s.Name()+".caught")...)
	defer report.Close()

	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if !isOutOfRange(v) {
			panic(v)
		}
		faults.Raise()
		out.Faulted = true
		caught = true
	}()

	s.Sum(r.ds, n, out)
	return false
}

func (r *Runner) options(name string) []guard.Option {
	return append([]guard.Option{guard.WithName(name)}, r.guardOpts...)
}
