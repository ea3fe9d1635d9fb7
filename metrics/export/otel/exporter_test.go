package otel

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	goRoles "github.com/MrEthical07/goRoles"
)

type fakeSource struct {
	snapshot goRoles.MetricsSnapshot
}

func (f fakeSource) MetricsSnapshot() goRoles.MetricsSnapshot { return f.snapshot }

func TestExporterRegistersAndCollects(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("goroles-test")

	src := fakeSource{
		snapshot: goRoles.MetricsSnapshot{
			Counters: map[goRoles.MetricID]uint64{
				goRoles.MetricRoleChecks:      5,
				goRoles.MetricRoleCheckDenied: 2,
			},
		},
	}

	exp, err := NewExporter(meter, src)
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	defer func() {
		if err := exp.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	found := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) == 0 {
				continue
			}
			found[m.Name] = sum.DataPoints[0].Value
		}
	}

	if found["goroles_role_checks_total"] != 5 {
		t.Fatalf("goroles_role_checks_total = %d, want 5 (found: %v)", found["goroles_role_checks_total"], found)
	}
	if found["goroles_role_checks_denied_total"] != 2 {
		t.Fatalf("goroles_role_checks_denied_total = %d, want 2", found["goroles_role_checks_denied_total"])
	}
}

func TestExporterArgumentValidation(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("goroles-test")

	if _, err := NewExporter(nil, fakeSource{}); err != ErrNilMeter {
		t.Fatalf("NewExporter(nil meter) = %v, want ErrNilMeter", err)
	}
	if _, err := NewExporter(meter, nil); err != ErrNilSource {
		t.Fatalf("NewExporter(nil source) = %v, want ErrNilSource", err)
	}
}

func TestCloseNil(t *testing.T) {
	var exp *Exporter
	if err := exp.Close(); err != nil {
		t.Fatalf("Close on nil exporter = %v", err)
	}
}
