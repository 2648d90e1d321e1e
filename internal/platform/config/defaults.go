package config

const (
	defaultServerPort = 8080

	defaultBenchSize    = 1_000_000
	defaultBenchOverrun = 2
	defaultBenchHistory = 50

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "60s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"bench.size":    defaultBenchSize,
		"bench.overrun": defaultBenchOverrun,
		"bench.seed":    0,
		"bench.history": defaultBenchHistory,

		"publish.enabled":                         false,
		"publish.token":                           "",
		"publish.base_url":                        "http://localhost:8081",
		"publish.timeout":                         "10s",
		"publish.retry.max_attempts":              defaultRetryMaxAttempts,
		"publish.retry.initial_interval":          "100ms",
		"publish.retry.max_interval":              "5s",
		"publish.retry.multiplier":                defaultRetryMultiplier,
		"publish.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"publish.circuit_breaker.timeout":         "30s",
		"publish.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"publish.rate_limit.requests_per_second":  0,
		"publish.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "scopebench",
	}
}
