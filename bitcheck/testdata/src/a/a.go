package a

type Permission uint64

//goroles:checked
const (
	None   Permission = 0
	Send   Permission = 1
	Edit   Permission = 2
	Delete Permission = 4
	Top    Permission = 1 << 63
)

//goroles:checked
const (
	GoodA Permission = 1
	BadA  Permission = 3 // want `role BadA has value 3: neither zero nor a power of two`
	DupA  Permission = 1 // want `role DupA collides with GoodA: both declared with value 1`
)

// A second zero never collides: it owns no bit.

//goroles:checked
const (
	EmptyOne Permission = 0
	EmptyTwo Permission = 0
	Shifted  Permission = 1 << 10
)

//goroles:checked
const (
	Signed int64 = -1 // want `role Signed value -1 is not representable as uint64`
)

// Unannotated blocks are outside the checked surface and never reported.
const (
	FreeMaskA Permission = 3
	FreeMaskB Permission = 3
)
