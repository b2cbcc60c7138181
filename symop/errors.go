package symop

import "errors"

// Sentinel errors for symop operations. Context (the offending substring
// or triplet) is attached by wrapping with fmt.Errorf("%w: ...", Err...);
// callers match with errors.Is.
var (
	// ErrTriplet indicates a malformed coordinate triplet: wrong comma
	// count, an unexpected character, or a dangling sign.
	ErrTriplet = errors.New("symop: malformed coordinate triplet")
	// ErrDenominator indicates a fraction denominator that does not
	// evenly divide DEN.
	ErrDenominator = errors.New("symop: denominator does not divide 24")
	// ErrSingular indicates an attempt to invert an operation whose
	// rotation matrix has zero determinant.
	ErrSingular = errors.New("symop: cannot invert singular rotation")
)
