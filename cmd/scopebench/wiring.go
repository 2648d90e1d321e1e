package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	adapthttp "github.com/jsamuelsen11/go-scopeguard/internal/adapters/http"
	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/publish"
	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/store"
	"github.com/jsamuelsen11/go-scopeguard/internal/app"
	"github.com/jsamuelsen11/go-scopeguard/internal/bench"
	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/config"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/health"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/logging"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-scopeguard/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

// process is the bootstrapped program: logger, telemetry and the
// dependency container.
type process struct {
	logger   *slog.Logger
	otel     *otelProviders
	injector *do.RootScope
}

// withApp bootstraps the process, runs fn, and flushes telemetry on the way
// out, including when fn panics.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(*process) error) error {
	ctx := cmd.Context()

	p, err := bootstrap(ctx, opts, cmd)
	if err != nil {
		return err
	}

	flush := guard.OnExit(func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()

		if err := p.otel.Shutdown(flushCtx); err != nil {
			p.logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}, guard.WithName("telemetry.shutdown"), guard.WithLogger(p.logger))
	defer flush.Close()

	return fn(p)
}

func bootstrap(ctx context.Context, opts *rootOptions, cmd *cobra.Command) (*process, error) {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr(),
		logging.WithSecrets(cfg.Publish.Token),
	)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(injector, cfg, logger)

	logger.Debug("bootstrapped",
		slog.String("profile", opts.profile),
		slog.Int("bench_size", cfg.Bench.Size),
		slog.Bool("publish", cfg.Publish.Enabled),
	)

	return &process{logger: logger, otel: otel, injector: injector}, nil
}

func (p *process) runService() (ports.RunService, error) {
	svc, err := do.Invoke[ports.RunService](p.injector)
	if err != nil {
		return nil, fmt.Errorf("resolving run service: %w", err)
	}
	return svc, nil
}

// registerHealthCheckers adds the publisher to the readiness registry when
// publishing is enabled.
func (p *process) registerHealthCheckers() {
	registry := do.MustInvoke[ports.HealthRegistry](p.injector)
	if checker, ok := do.MustInvoke[ports.Publisher](p.injector).(ports.HealthChecker); ok {
		registry.Register(checker)
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. The providers are
// nil when telemetry is disabled; metrics is then a no-op set.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{metrics: telemetry.NoopMetrics()}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*bench.Dataset, error) {
		return bench.NewDataset(cfg.Bench.Size, cfg.Bench.Seed), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Benchmarker, error) {
		ds := do.MustInvoke[*bench.Dataset](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return bench.NewRunner(ds, cfg.Bench.Overrun, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.RunStore, error) {
		return store.NewMemory(cfg.Bench.History), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Publisher, error) {
		if !cfg.Publish.Enabled {
			return publish.Noop{}, nil
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Publish.ClientConfig, "results-collector", logger,
			httpclient.WithMetrics(metrics),
			httpclient.WithBearerToken(cfg.Publish.Token),
		)
		return publish.NewHTTPPublisher(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RunService, error) {
		runner := do.MustInvoke[ports.Benchmarker](i)
		runs := do.MustInvoke[ports.RunStore](i)
		publisher := do.MustInvoke[ports.Publisher](i)
		return app.NewRunService(runner, runs, publisher, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RunHandler, error) {
		svc := do.MustInvoke[ports.RunService](i)
		return handlers.NewRunHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		runH := do.MustInvoke[*handlers.RunHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(runH, healthH,
			middleware.Standard(logger, metrics, cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
