// Package symop: core types for exact symmetry operations.
package symop

// DEN is the common denominator of all fractional coordinates.
// 24 handles 1/8 (change-of-basis shifts) as well as 1/3 and 1/6.
const DEN = 24

// Rot is a 3×3 rotation (or rotoinversion) matrix with entries scaled
// by DEN. The identity rotation has DEN on the diagonal.
type Rot [3][3]int

// Tran is a translation vector with components scaled by DEN.
// A canonical (wrapped) translation has every component in [0, DEN).
type Tran [3]int

// Op is one symmetry operation, or a change-of-basis transform, or a
// different operation of similar kind: a rotation part and a translation
// part, both fractional with denominator DEN.
//
// Op is a comparable value type: a == b is exact equality.
type Op struct {
	Rot  Rot
	Tran Tran
}

// Identity returns the identity operation: DEN-scaled unit matrix,
// zero translation.
func Identity() Op {
	return Op{Rot: Rot{{DEN, 0, 0}, {0, DEN, 0}, {0, 0, DEN}}}
}
