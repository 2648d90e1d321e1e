package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/telemetry"
)

// collectSum returns the summed value of an Int64 counter across data points
// whose attributes include want.
func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string, want attribute.KeyValue) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s data = %T, want Sum[int64]", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(want.Key); ok && v == want.Value {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func TestGuardHooks_CountsFiredAndDismissed(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}
	hooks := guard.WithHooks(telemetry.GuardHooks(metrics))

	for range 3 {
		g := guard.OnExit(func() {}, guard.WithName("timer"), hooks)
		g.Close()
	}
	func() {
		var err error
		g := guard.OnFailure(guard.ErrorResult(&err), func() {}, guard.WithName("rollback"), hooks)
		defer g.Close()
	}()

	if got := collectSum(t, reader, "scopeguard.fired.total", telemetry.AttrVariant.String("exit")); got != 3 {
		t.Errorf("fired{variant=exit} = %d, want 3", got)
	}
	if got := collectSum(t, reader, "scopeguard.dismissed.total", telemetry.AttrGuard.String("rollback")); got != 1 {
		t.Errorf("dismissed{name=rollback} = %d, want 1", got)
	}
}
