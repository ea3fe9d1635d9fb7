package goRoles

// Set is a role set backed by a single uint64: bit k set means the role with
// value 1<<k is present. Sets are plain values; every operation returns a new
// Set and never mutates, allocates, or fails. The zero Set is the empty set.
//
// Checked Sets are obtained from a [Manager]; the zero-value convention and
// all operations below assume the enumeration passed validation.
type Set[T Role] uint64

// Has reports whether role r is present.
//
// The zero role is the empty-set marker: Has(0) reports true iff the whole
// set is empty, not whether some "zero bit" is set. This is a deliberate
// convention; the zero role owns no bit.
func (s Set[T]) Has(r T) bool {
	if r == 0 {
		return s == 0
	}
	return uint64(s)&uint64(r) != 0
}

// HasAll reports whether every given role is present, under the same
// zero-role convention as [Set.Has]. HasAll with no arguments is true.
func (s Set[T]) HasAll(roles ...T) bool {
	for _, r := range roles {
		if !s.Has(r) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the given roles is present, under
// the same zero-role convention as [Set.Has]. HasAny with no arguments is
// false.
func (s Set[T]) HasAny(roles ...T) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Add returns s with role r added. Adding the zero role is a no-op, as is
// adding a role already present.
func (s Set[T]) Add(r T) Set[T] {
	return s | Set[T](r)
}

// AddAll returns s with every given role added. Bitwise OR is commutative
// and associative, so the argument order is irrelevant.
func (s Set[T]) AddAll(roles ...T) Set[T] {
	for _, r := range roles {
		s |= Set[T](r)
	}
	return s
}

// Remove returns s with role r removed. Removing the zero role or a role
// not present is a no-op.
func (s Set[T]) Remove(r T) Set[T] {
	return s &^ Set[T](r)
}

// RemoveAll returns s with every given role removed.
func (s Set[T]) RemoveAll(roles ...T) Set[T] {
	for _, r := range roles {
		s &^= Set[T](r)
	}
	return s
}

// IsEmpty reports whether no roles are present.
func (s Set[T]) IsEmpty() bool {
	return s == 0
}

// Value returns the raw backing integer for storage or transmission. Feed it
// back through [Manager.FromValue] to reconstitute the set.
func (s Set[T]) Value() uint64 {
	return uint64(s)
}
