package goRoles

import "sync/atomic"

// MetricID identifies one of the package's internal counters.
type MetricID uint16

const (
	// MetricFreezeOK counts registry freezes that passed validation.
	MetricFreezeOK MetricID = iota
	// MetricFreezeRejected counts registry freezes rejected by the validator.
	MetricFreezeRejected
	// MetricSetsFromValue counts role sets reconstituted from raw values.
	MetricSetsFromValue
	// MetricRoleChecks counts Authorize calls.
	MetricRoleChecks
	// MetricRoleCheckDenied counts Authorize calls that denied access.
	MetricRoleCheckDenied

	metricCount
)

// MetricsSnapshot is a point-in-time copy of counter values, safe to hand to
// exporters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// counters is the internal lock-free counter block shared by a Registry and
// the Manager it produces.
type counters struct {
	vals [metricCount]atomic.Uint64
}

func newCounters() *counters {
	return &counters{}
}

func (c *counters) add(id MetricID, n uint64) {
	if c == nil || id >= metricCount {
		return
	}
	c.vals[id].Add(n)
}

func (c *counters) snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricCount)}
	if c == nil {
		return snap
	}
	for id := MetricID(0); id < metricCount; id++ {
		snap.Counters[id] = c.vals[id].Load()
	}
	return snap
}
