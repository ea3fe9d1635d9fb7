package goRoles

// Manager is the certified handle for a validated role enumeration. It is the
// only source of checked [Set] values and carries the name/value lookup
// tables and the per-enumeration metrics counters.
//
// Managers are immutable after construction and safe for concurrent use.
type Manager[T Role] struct {
	decls       []Declaration
	nameToValue map[string]uint64
	valueToName map[uint64]string

	metrics *counters
}

// Empty returns the role set containing no roles. Its raw value is zero.
func (m *Manager[T]) Empty() Set[T] {
	return Set[T](0)
}

// FromValue wraps a raw integer previously obtained from [Set.Value]. The
// value is trusted as-is; no re-validation happens here, since any bit
// pattern is a well-formed set over a certified enumeration.
func (m *Manager[T]) FromValue(raw uint64) Set[T] {
	m.metrics.add(MetricSetsFromValue, 1)
	return Set[T](raw)
}

// Authorize reports whether s contains every required role, recording the
// outcome in the manager's metrics. Middleware and other enforcement points
// should prefer this over [Set.HasAll] so denials are observable.
func (m *Manager[T]) Authorize(s Set[T], required ...T) bool {
	m.metrics.add(MetricRoleChecks, 1)
	if !s.HasAll(required...) {
		m.metrics.add(MetricRoleCheckDenied, 1)
		return false
	}
	return true
}

// AuthorizeAny is the [Manager.Authorize] counterpart for any-of checks:
// it reports whether s contains at least one of the given roles,
// recording the outcome in the manager's metrics.
func (m *Manager[T]) AuthorizeAny(s Set[T], roles ...T) bool {
	m.metrics.add(MetricRoleChecks, 1)
	if !s.HasAny(roles...) {
		m.metrics.add(MetricRoleCheckDenied, 1)
		return false
	}
	return true
}

// Value returns the declared value for the named role.
func (m *Manager[T]) Value(name string) (T, bool) {
	v, ok := m.nameToValue[name]
	return T(v), ok
}

// Name returns the declared name for the given role value. When several
// names share value zero, the first declared wins.
func (m *Manager[T]) Name(value T) (string, bool) {
	n, ok := m.valueToName[uint64(value)]
	return n, ok
}

// Names returns the declared names of every non-zero role present in s, in
// declaration order. The zero role is never listed; an empty set yields nil.
func (m *Manager[T]) Names(s Set[T]) []string {
	var names []string
	for _, d := range m.decls {
		if d.Value == 0 {
			continue
		}
		if uint64(s)&d.Value != 0 {
			names = append(names, d.Name)
		}
	}
	return names
}

// Declarations returns a copy of the certified declaration list in
// declaration order.
func (m *Manager[T]) Declarations() []Declaration {
	out := make([]Declaration, len(m.decls))
	copy(out, m.decls)
	return out
}

// Count returns the number of declared roles.
func (m *Manager[T]) Count() int {
	return len(m.decls)
}

// MetricsSnapshot returns a point-in-time copy of the manager's counters.
func (m *Manager[T]) MetricsSnapshot() MetricsSnapshot {
	return m.metrics.snapshot()
}
