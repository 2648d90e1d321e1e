package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
)

type guardHooks struct {
	m *Metrics
}

// GuardHooks counts fired and dismissed scope guards on m's instruments.
// Pass it to guard.WithHooks.
func GuardHooks(m *Metrics) guard.Hooks {
	return guardHooks{m: m}
}

func (h guardHooks) Fired(name string, v guard.Variant) {
	h.m.GuardFired.Add(context.Background(), 1, h.attrs(name, v))
}

func (h guardHooks) Dismissed(name string, v guard.Variant) {
	h.m.GuardDismissed.Add(context.Background(), 1, h.attrs(name, v))
}

func (h guardHooks) attrs(name string, v guard.Variant) metric.MeasurementOption {
	return metric.WithAttributes(
		h.m.service,
		AttrGuard.String(name),
		AttrVariant.String(v.String()),
	)
}
