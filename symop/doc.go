// Package symop implements the exact algebra of crystallographic symmetry
// operations and their coordinate-triplet notation.
//
// 🚀 What is an Op?
//
//	One symmetry operation (or a change-of-basis transform): a 3×3
//	"rotation" matrix plus a translation vector, both fractional, both
//	stored as integers scaled by the common denominator DEN=24.  24 is
//	the least denominator that handles every fraction appearing in the
//	230 space groups and their change-of-basis operators (down to 1/8).
//
// ✨ Key guarantees:
//   - Exact – composition, inversion and wrapping are pure integer work;
//     equality is ==, never a tolerance
//   - Canonical – a strict total order (Less) lets callers sort operation
//     sets into one canonical form
//   - Round-trip – printing a canonical Op with Triplet and re-parsing it
//     with ParseTriplet returns the identical Op
//
// ⚙️ Usage:
//
//	op, err := symop.ParseTriplet("-y,x-y,z+1/3")
//	if err != nil { ... }
//	twice := op.Mul(op)          // compose and wrap into [0,DEN)
//	inv, err := op.Inverse()     // exact adjugate/determinant inverse
//	fmt.Println(twice.Triplet()) // "-x+y,-x,z+2/3"
//
// Reflection indices transform contragradiently to coordinates: use
// ApplyToHKL (transpose convention) and PhaseShift for structure-factor
// phases.  IntSeitz/FloatSeitz expose 4×4 Seitz matrices for collaborators
// that work in matrix form; FloatSeitz is the only floating-point surface
// in the package.
package symop
