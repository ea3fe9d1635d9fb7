package goRoles

import "testing"

func TestMetricsFreezeCounters(t *testing.T) {
	reg := NewRegistry[testPerm]()
	if err := reg.Declare("A", 1); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}

	m, err := reg.Freeze()
	if err != nil {
		t.Fatalf("Freeze failed: %v", err)
	}

	snap := m.MetricsSnapshot()
	if snap.Counters[MetricFreezeOK] != 1 {
		t.Fatalf("MetricFreezeOK = %d, want 1", snap.Counters[MetricFreezeOK])
	}
	if snap.Counters[MetricFreezeRejected] != 0 {
		t.Fatalf("MetricFreezeRejected = %d, want 0", snap.Counters[MetricFreezeRejected])
	}
}

func TestMetricsFromValueCounter(t *testing.T) {
	m := newTestManager(t)

	m.FromValue(3)
	m.FromValue(0)

	snap := m.MetricsSnapshot()
	if snap.Counters[MetricSetsFromValue] != 2 {
		t.Fatalf("MetricSetsFromValue = %d, want 2", snap.Counters[MetricSetsFromValue])
	}
}

func TestMetricsSnapshotIsCopy(t *testing.T) {
	m := newTestManager(t)

	snap := m.MetricsSnapshot()
	snap.Counters[MetricRoleChecks] = 999

	if got := m.MetricsSnapshot().Counters[MetricRoleChecks]; got != 0 {
		t.Fatalf("snapshot mutation leaked into manager: %d", got)
	}
}

func TestCountersNilSafe(t *testing.T) {
	var c *counters
	c.add(MetricRoleChecks, 1) // must not panic

	snap := c.snapshot()
	if len(snap.Counters) != 0 {
		t.Fatalf("nil counters snapshot not empty: %v", snap.Counters)
	}
}
