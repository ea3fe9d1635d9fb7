package unchecked

import goRoles "github.com/MrEthical07/goRoles"

// Value wraps either a declared role or a literal integer, so call sites can
// mix the two without converting by hand. Construction via [TryRole] or
// [TryRaw] re-applies the single-bit check that this package otherwise
// skips; [Role] and [Raw] skip it.
type Value[T RoleValue] struct {
	raw uint64
}

// Role wraps a declared role without validation.
func Role[T RoleValue](r T) Value[T] {
	return Value[T]{raw: uint64(r)}
}

// Raw wraps a literal integer without validation.
func Raw[T RoleValue](v uint64) Value[T] {
	return Value[T]{raw: v}
}

// TryRole validates r as a single-bit (or zero) role before wrapping it.
func TryRole[T RoleValue](r T) (Value[T], error) {
	if !goRoles.ValidRoleValue(uint64(r)) {
		return Value[T]{}, &goRoles.InvalidRoleError{Value: uint64(r)}
	}
	return Value[T]{raw: uint64(r)}, nil
}

// TryRaw validates v as a single-bit (or zero) value before wrapping it.
func TryRaw[T RoleValue](v uint64) (Value[T], error) {
	if !goRoles.ValidRoleValue(v) {
		return Value[T]{}, &goRoles.InvalidRoleError{Value: v}
	}
	return Value[T]{raw: v}, nil
}

// Uint64 returns the wrapped value.
func (v Value[T]) Uint64() uint64 {
	return v.raw
}

// AddValue returns s with every bit of v set.
func (s Set[T]) AddValue(v Value[T]) Set[T] {
	return s | Set[T](v.raw)
}

// RemoveValue returns s with every bit of v cleared.
func (s Set[T]) RemoveValue(v Value[T]) Set[T] {
	return s &^ Set[T](v.raw)
}

// HasValue reports whether any bit of v is present, under the zero-marker
// convention of [Set.Has].
func (s Set[T]) HasValue(v Value[T]) bool {
	if v.raw == 0 {
		return s == 0
	}
	return uint64(s)&v.raw != 0
}
