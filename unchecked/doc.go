// Package unchecked provides the validation-free variant of goRoles.
//
// Sets here are constructed directly from any unsigned-integer role type with
// no power-of-two or collision proof, so roles may be arbitrary values,
// including compound masks spanning several bits. This is the deliberate
// escape hatch: it lives in its own import path so that code relying on the
// checked guarantee cannot drift into the unchecked surface silently.
//
// For callers that mix declared roles with literal integers, [Value] wraps
// either and optionally re-applies the single-bit check at construction
// ([TryRole], [TryRaw]).
//
// # What this package must NOT do
//
//   - Import anything beyond the goRoles root (no I/O, no transitive deps).
//   - Pretend to any safety guarantee; misuse here is the caller's own.
package unchecked
