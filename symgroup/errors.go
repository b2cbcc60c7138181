package symgroup

import "errors"

// Sentinel errors for group assembly. Context (the offending symbol or
// token) is attached by wrapping; callers match with errors.Is.
var (
	// ErrHall indicates a malformed Hall symbol: an unknown letter, a bad
	// n-fold order, a missing axis, or an unterminated parenthesis.
	ErrHall = errors.New("symgroup: malformed Hall symbol")
	// ErrLattice indicates an unknown centering-lattice letter.
	ErrLattice = errors.New("symgroup: not a lattice symbol")
	// ErrMissingIdentity indicates a generator list whose first entry is
	// not the identity operation.
	ErrMissingIdentity = errors.New("symgroup: sym-op list must start with identity")
	// ErrGroupTooLarge aborts a runaway closure: no crystallographic point
	// group has more than 1023 elements, so exceeding the limit means the
	// generator input was not crystallographic.
	ErrGroupTooLarge = errors.New("symgroup: group expansion exceeded safety limit")
)
