package goRoles

import "math/bits"

// ValidRoleValue reports whether v can back a single declared role: zero (the
// empty-set marker) or exactly one bit set.
func ValidRoleValue(v uint64) bool {
	return bits.OnesCount64(v) <= 1
}

// Validate checks an ordered declaration set against the packing invariants:
// every value is zero or a power of two, names are non-empty and unique, and
// no two declarations share the same non-zero value. The first violation in
// declaration order is returned; nil means the set is certified for checked
// use.
func Validate(decls []Declaration) error {
	if len(decls) == 0 {
		return ErrNoDeclarations
	}

	seenNames := make(map[string]struct{}, len(decls))
	seenValues := make(map[uint64]string, len(decls))

	for _, d := range decls {
		if d.Name == "" {
			return ErrEmptyName
		}
		if _, dup := seenNames[d.Name]; dup {
			return &DuplicateNameError{Name: d.Name}
		}
		seenNames[d.Name] = struct{}{}

		if !ValidRoleValue(d.Value) {
			return &InvalidRoleError{Name: d.Name, Value: d.Value}
		}

		if d.Value == 0 {
			continue
		}
		if other, taken := seenValues[d.Value]; taken {
			return &CollisionError{Name: d.Name, OtherName: other, Value: d.Value}
		}
		seenValues[d.Value] = d.Name
	}

	return nil
}
