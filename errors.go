package goRoles

import (
	"errors"
	"fmt"
)

var (
	// ErrFrozen is returned when declaring into a registry that was already frozen.
	ErrFrozen = errors.New("registry frozen")
	// ErrNotFrozen is returned when a manager is requested from an unfrozen registry.
	ErrNotFrozen = errors.New("registry not frozen")
	// ErrEmptyName is returned when a role is declared with an empty name.
	ErrEmptyName = errors.New("role name cannot be empty")
	// ErrNoDeclarations is returned when freezing a registry with no declared roles.
	ErrNoDeclarations = errors.New("no roles declared")
)

// InvalidRoleError reports a declared role whose value is neither zero nor a
// power of two and therefore cannot occupy a single bit.
type InvalidRoleError struct {
	Name  string
	Value uint64
}

func (e *InvalidRoleError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid role value: %d is neither zero nor a power of two", e.Value)
	}
	return fmt.Sprintf("invalid role %s: value %d is neither zero nor a power of two", e.Name, e.Value)
}

// CollisionError reports two distinct roles declared with the same non-zero
// value, which would silently merge them into one bit.
type CollisionError struct {
	Name      string
	OtherName string
	Value     uint64
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("role %s collides with %s: both declared with value %d", e.Name, e.OtherName, e.Value)
}

// DuplicateNameError reports a role name declared more than once.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("role %s already declared", e.Name)
}
