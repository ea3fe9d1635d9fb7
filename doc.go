// Package goRoles provides granular role and permission management packed into
// the bits of a single uint64, with declaration-time validation of every role
// value.
//
// A role enumeration is an ordered set of named constants whose values are
// either zero or a power of two. Declarations are collected in a [Registry]
// and sealed by [Registry.Freeze], which proves that every value occupies at
// most one bit and that no two roles collide on the same bit. Freezing an
// invalid enumeration fails; [Registry.MustFreeze] turns that failure into a
// panic so that invalid declarations abort the process during initialization,
// before any role set can exist.
//
// The certified output of a freeze is a [Manager], the only source of checked
// [Set] values. A Set is a plain uint64 value with set-algebra operations
// (Add, Remove, Has, and friends); every operation is total, allocation-free,
// and O(1).
//
//	type Permission uint64
//
//	const (
//		PermNone   Permission = 0
//		PermSend   Permission = 1
//		PermEdit   Permission = 2
//		PermDelete Permission = 4
//	)
//
//	var Permissions = func() *goRoles.Manager[Permission] {
//		reg := goRoles.NewRegistry[Permission]()
//		reg.Declare("None", PermNone)
//		reg.Declare("Send", PermSend)
//		reg.Declare("Edit", PermEdit)
//		reg.Declare("Delete", PermDelete)
//		return reg.MustFreeze()
//	}()
//
//	set := Permissions.Empty().Add(PermSend).Add(PermEdit)
//	canDelete := set.Has(PermDelete) // false
//	raw := set.Value()               // 3, stored/transmitted by the caller
//
// The enumeration can additionally be gated at build time: annotate the const
// block with a //goroles:checked directive and run the bitcheck analyzer under
// go vet (see the bitcheck package and cmd/bitcheck). The analyzer rejects
// non-power-of-two values and duplicate bits before the program is ever run.
//
// Callers who need raw integer roles or compound masks must opt into the
// unchecked subpackage, which skips the validation proof entirely. The two
// surfaces are separate import paths so the safety guarantee cannot be
// dropped by accident.
//
// # Backing width
//
// The backing integer is always uint64. Role values must satisfy v == 0 or
// v == 1<<k for k in [0, 64). Wider enumerations are out of scope.
//
// # Architecture boundaries
//
// goRoles is the public surface. It exposes [Registry], [Manager], [Set], the
// declaration and error types, and metrics snapshots. The middleware and
// metrics/export subpackages layer on top of it and are never imported back.
//
// # What this package must NOT do
//
//   - Perform I/O of any kind. Storage and transmission of the raw value are
//     the caller's concern.
//   - Allocate or fail inside Set operations.
//   - Re-validate raw values supplied to [Manager.FromValue]; persisted
//     integers are trusted as-is.
package goRoles
