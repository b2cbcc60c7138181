package symop

import (
	"fmt"
	"math"
)

// Wrap returns the operation with every translation component reduced
// into the canonical range [0, DEN).
func (o Op) Wrap() Op {
	for i := 0; i < 3; i++ {
		t := o.Tran[i] % DEN
		if t < 0 {
			t += DEN
		}
		o.Tran[i] = t
	}
	return o
}

// Translated returns the operation with a added to the translation part.
// No wrapping is applied.
func (o Op) Translated(a Tran) Op {
	for i := 0; i < 3; i++ {
		o.Tran[i] += a[i]
	}
	return o
}

// AddCentering returns the operation shifted by a centering vector and
// wrapped back into the unit cell.
func (o Op) AddCentering(a Tran) Op {
	return o.Translated(a).Wrap()
}

// NegatedRot returns the rotation part with all entries negated.
func (o Op) NegatedRot() Rot {
	var r Rot
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = -o.Rot[i][j]
		}
	}
	return r
}

// Negated returns the operation with both parts negated.
func (o Op) Negated() Op {
	n := Op{Rot: o.NegatedRot()}
	for i := 0; i < 3; i++ {
		n.Tran[i] = -o.Tran[i]
	}
	return n
}

// DetRot computes the determinant of the rotation part.
// A proper rotation gives DEN³, a rotoinversion -DEN³.
func (o Op) DetRot() int {
	r := &o.Rot
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

// Combine composes o with b (o applied after b): matrix product of the
// rotations and o.Rot·b.Tran + o.Tran for the translation, both rescaled
// by DEN. The result is not wrapped; use Mul for composition in the group.
func (o Op) Combine(b Op) Op {
	var r Op
	for i := 0; i < 3; i++ {
		r.Tran[i] = o.Tran[i] * DEN
		for j := 0; j < 3; j++ {
			r.Rot[i][j] = (o.Rot[i][0]*b.Rot[0][j] +
				o.Rot[i][1]*b.Rot[1][j] +
				o.Rot[i][2]*b.Rot[2][j]) / DEN
			r.Tran[i] += o.Rot[i][j] * b.Tran[j]
		}
		r.Tran[i] /= DEN
	}
	return r
}

// Mul is group composition: Combine followed by Wrap.
func (o Op) Mul(b Op) Op {
	return o.Combine(b).Wrap()
}

// Inverse returns the exact inverse operation: the adjugate of the
// rotation divided by its determinant, with the translation transformed
// accordingly. Returns ErrSingular (wrapping the rotation's triplet text)
// when the rotation part is not invertible.
func (o Op) Inverse() (Op, error) {
	detr := o.DetRot()
	if detr == 0 {
		return Op{}, fmt.Errorf("%w: %s", ErrSingular, Op{Rot: o.Rot}.Triplet())
	}
	d2 := DEN * DEN
	r := &o.Rot
	var inv Op
	inv.Rot[0][0] = d2 * (r[1][1]*r[2][2] - r[2][1]*r[1][2]) / detr
	inv.Rot[0][1] = d2 * (r[0][2]*r[2][1] - r[0][1]*r[2][2]) / detr
	inv.Rot[0][2] = d2 * (r[0][1]*r[1][2] - r[0][2]*r[1][1]) / detr
	inv.Rot[1][0] = d2 * (r[1][2]*r[2][0] - r[1][0]*r[2][2]) / detr
	inv.Rot[1][1] = d2 * (r[0][0]*r[2][2] - r[0][2]*r[2][0]) / detr
	inv.Rot[1][2] = d2 * (r[1][0]*r[0][2] - r[0][0]*r[1][2]) / detr
	inv.Rot[2][0] = d2 * (r[1][0]*r[2][1] - r[2][0]*r[1][1]) / detr
	inv.Rot[2][1] = d2 * (r[2][0]*r[0][1] - r[0][0]*r[2][1]) / detr
	inv.Rot[2][2] = d2 * (r[0][0]*r[1][1] - r[1][0]*r[0][1]) / detr
	for i := 0; i < 3; i++ {
		inv.Tran[i] = (-o.Tran[0]*inv.Rot[i][0] -
			o.Tran[1]*inv.Rot[i][1] -
			o.Tran[2]*inv.Rot[i][2]) / DEN
	}
	return inv, nil
}

// ApplyToHKL transforms a reciprocal-space index triple. Reflection
// indices transform contragradiently to coordinates, hence the transposed
// rotation and no translation.
func (o Op) ApplyToHKL(hkl [3]int) [3]int {
	var r [3]int
	for i := 0; i < 3; i++ {
		r[i] = (o.Rot[0][i]*hkl[0] + o.Rot[1][i]*hkl[1] + o.Rot[2][i]*hkl[2]) / DEN
	}
	return r
}

// PhaseShift returns the phase shift in radians that the translation part
// induces on the structure-factor phase of reflection (h,k,l):
// -2π·(h·tx + k·ty + l·tz)/DEN.
func (o Op) PhaseShift(h, k, l int) float64 {
	return -2 * math.Pi / DEN * float64(h*o.Tran[0]+k*o.Tran[1]+l*o.Tran[2])
}

// Less is a strict total order on operations: rotation parts compared
// lexicographically, then translations. Used only to canonicalize sets,
// not as a magnitude comparison.
func (o Op) Less(rhs Op) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if o.Rot[i][j] != rhs.Rot[i][j] {
				return o.Rot[i][j] < rhs.Rot[i][j]
			}
		}
	}
	for i := 0; i < 3; i++ {
		if o.Tran[i] != rhs.Tran[i] {
			return o.Tran[i] < rhs.Tran[i]
		}
	}
	return false
}

// TranLess is the corresponding lexicographic order on bare translations.
func TranLess(a, b Tran) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
