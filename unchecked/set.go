package unchecked

// RoleValue constrains unchecked role types: anything convertible to the
// uint64 backing integer. Unlike [goRoles.Role] there is no requirement that
// values occupy a single bit.
type RoleValue interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Set is the unchecked counterpart of goRoles.Set: a uint64-backed role set
// whose roles were never validated. Roles with several bits set act as
// masks: Add grants all their bits at once, Remove revokes them, and Has
// reports overlap (at least one shared bit), not containment.
//
// The zero Set is the empty set.
type Set[T RoleValue] uint64

// Empty returns the set containing no roles.
func Empty[T RoleValue]() Set[T] {
	return 0
}

// FromValue wraps a raw backing integer, trusting the caller.
func FromValue[T RoleValue](raw uint64) Set[T] {
	return Set[T](raw)
}

// Has reports whether any bit of role r is present. A zero r follows the
// same empty-marker convention as the checked surface: present iff the whole
// set is empty.
func (s Set[T]) Has(r T) bool {
	if uint64(r) == 0 {
		return s == 0
	}
	return uint64(s)&uint64(r) != 0
}

// HasAll reports whether every given role overlaps the set.
func (s Set[T]) HasAll(roles ...T) bool {
	for _, r := range roles {
		if !s.Has(r) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the given roles overlaps the set.
func (s Set[T]) HasAny(roles ...T) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Add returns s with every bit of r set.
func (s Set[T]) Add(r T) Set[T] {
	return s | Set[T](r)
}

// AddAll returns s with every bit of every given role set.
func (s Set[T]) AddAll(roles ...T) Set[T] {
	for _, r := range roles {
		s |= Set[T](r)
	}
	return s
}

// Remove returns s with every bit of r cleared.
func (s Set[T]) Remove(r T) Set[T] {
	return s &^ Set[T](r)
}

// RemoveAll returns s with every bit of every given role cleared.
func (s Set[T]) RemoveAll(roles ...T) Set[T] {
	for _, r := range roles {
		s &^= Set[T](r)
	}
	return s
}

// IsEmpty reports whether no bits are set.
func (s Set[T]) IsEmpty() bool {
	return s == 0
}

// Value returns the raw backing integer.
func (s Set[T]) Value() uint64 {
	return uint64(s)
}
