package goRoles

import "sync"

// Registry collects role declarations for an enumeration type T and seals
// them behind the packing proof. The lifecycle is declare-then-freeze:
// [Registry.Declare] accumulates, [Registry.Freeze] validates the whole set
// and produces the [Manager] that certified role sets are built from.
//
// A Registry is safe for concurrent use, though the intended pattern is
// sequential declaration during initialization.
type Registry[T Role] struct {
	mu     sync.RWMutex
	decls  []Declaration
	frozen bool

	metrics *counters
}

// NewRegistry creates an empty registry for the role enumeration T.
func NewRegistry[T Role]() *Registry[T] {
	return &Registry[T]{metrics: newCounters()}
}

// Declare records a named role. It fails once the registry is frozen, on an
// empty name, or on a name declared twice; value-level validation is deferred
// to [Registry.Freeze] so that the whole set is checked at once and the
// offending declaration can be reported against its peers.
func (r *Registry[T]) Declare(name string, value T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}
	if name == "" {
		return ErrEmptyName
	}
	for _, d := range r.decls {
		if d.Name == name {
			return &DuplicateNameError{Name: name}
		}
	}

	r.decls = append(r.decls, Declaration{Name: name, Value: uint64(value)})
	return nil
}

// DeclareAll records the given declarations in order, stopping at the first
// failure.
func (r *Registry[T]) DeclareAll(decls []Declaration) error {
	for _, d := range decls {
		if err := r.Declare(d.Name, T(d.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Freeze runs the validator over every declaration and seals the registry.
// On success it returns the [Manager] for the certified enumeration; on
// failure the registry stays usable so the caller can inspect and correct,
// but no Manager ever exists for an invalid set.
func (r *Registry[T]) Freeze() (*Manager[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return nil, ErrFrozen
	}

	if err := Validate(r.decls); err != nil {
		r.metrics.add(MetricFreezeRejected, 1)
		return nil, err
	}

	r.frozen = true
	r.metrics.add(MetricFreezeOK, 1)

	m := &Manager[T]{metrics: r.metrics}
	m.nameToValue = make(map[string]uint64, len(r.decls))
	m.valueToName = make(map[uint64]string, len(r.decls))
	m.decls = make([]Declaration, len(r.decls))
	copy(m.decls, r.decls)
	for _, d := range r.decls {
		m.nameToValue[d.Name] = d.Value
		// Several names may legally share value zero; the first one wins
		// for reverse lookups.
		if _, taken := m.valueToName[d.Value]; !taken {
			m.valueToName[d.Value] = d.Name
		}
	}
	return m, nil
}

// MustFreeze is like [Registry.Freeze] but panics on failure. Call it from a
// package var block or init function so that an invalid enumeration aborts
// the process before any role set can be constructed.
func (r *Registry[T]) MustFreeze() *Manager[T] {
	m, err := r.Freeze()
	if err != nil {
		panic("goRoles: " + err.Error())
	}
	return m
}

// Frozen reports whether the registry has been sealed.
func (r *Registry[T]) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Count returns the number of declared roles.
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.decls)
}
