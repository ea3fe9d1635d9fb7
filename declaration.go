package goRoles

// Role constrains the enumeration types this package manages: any defined
// type whose underlying type is uint64. Role values are the discriminants of
// the enumeration; the zero value conventionally names the empty set.
type Role interface {
	~uint64
}

// Declaration binds a role name to its value. Declarations are collected in
// order by [Registry.Declare]; the order is preserved for reporting but has
// no semantic weight.
type Declaration struct {
	Name  string
	Value uint64
}
