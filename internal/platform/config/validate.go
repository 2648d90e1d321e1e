package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Bench.validate(),
		c.Publish.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (b *BenchConfig) validate() error {
	var errs []error

	if b.Size < 1 {
		errs = append(errs, fmt.Errorf("bench.size must be >= 1, got %d", b.Size))
	}
	if b.Overrun < 1 {
		errs = append(errs, fmt.Errorf("bench.overrun must be >= 1, got %d", b.Overrun))
	}
	if b.History < 1 {
		errs = append(errs, fmt.Errorf("bench.history must be >= 1, got %d", b.History))
	}

	return errors.Join(errs...)
}

func (p *PublishConfig) validate() error {
	if !p.Enabled {
		return nil
	}

	var errs []error

	if p.BaseURL == "" {
		errs = append(errs, errors.New("publish.base_url must not be empty"))
	} else if u, err := url.Parse(p.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("publish.base_url must be an absolute URL, got %q", p.BaseURL))
	}
	if p.Timeout <= 0 {
		errs = append(errs, errors.New("publish.timeout must be positive"))
	}
	if p.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("publish.retry.max_attempts must be >= 1, got %d", p.Retry.MaxAttempts))
	}
	if p.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("publish.retry.multiplier must be positive, got %f", p.Retry.Multiplier))
	}
	if p.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("publish.circuit_breaker.max_failures must be >= 1, got %d",
			p.CircuitBreaker.MaxFailures))
	}
	if p.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("publish.rate_limit.requests_per_second must not be negative, got %f",
			p.RateLimit.RequestsPerSecond))
	}
	if p.RateLimit.RequestsPerSecond > 0 && p.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("publish.rate_limit.burst_size must be >= 1, got %d", p.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
