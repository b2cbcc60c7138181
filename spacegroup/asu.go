// Package spacegroup - asu.go
// Reciprocal-space asymmetric-unit membership, in the CCP4 convention.

package spacegroup

import (
	"fmt"

	"github.com/katalvlaran/xtalsym/symop"
)

// hklAsuConditions pairs each of the ten CCP4 asymmetric-unit
// conditions with its human-readable form. Predicate and string are
// kept in lockstep; ccp4HklAsu indexes into this array.
var hklAsuConditions = [10]struct {
	str string
	in  func(h, k, l int) bool
}{
	{"l>0 or (l=0 and (h>0 or (h=0 and k>=0)))",
		func(h, k, l int) bool { return l > 0 || (l == 0 && (h > 0 || (h == 0 && k >= 0))) }},
	{"k>=0 and (l>0 or (l=0 and h>=0))",
		func(h, k, l int) bool { return k >= 0 && (l > 0 || (l == 0 && h >= 0)) }},
	{"h>=0 and k>=0 and l>=0",
		func(h, k, l int) bool { return h >= 0 && k >= 0 && l >= 0 }},
	{"l>=0 and ((h>=0 and k>0) or (h=0 and k=0))",
		func(h, k, l int) bool { return l >= 0 && ((h >= 0 && k > 0) || (h == 0 && k == 0)) }},
	{"h>=k and k>=0 and l>=0",
		func(h, k, l int) bool { return h >= k && k >= 0 && l >= 0 }},
	{"(h>=0 and k>0) or (h=0 and k=0 and l>=0)",
		func(h, k, l int) bool { return (h >= 0 && k > 0) || (h == 0 && k == 0 && l >= 0) }},
	{"h>=k and k>=0 and (k>0 or l>=0)",
		func(h, k, l int) bool { return h >= k && k >= 0 && (k > 0 || l >= 0) }},
	{"h>=k and k>=0 and (h>k or l>=0)",
		func(h, k, l int) bool { return h >= k && k >= 0 && (h > k || l >= 0) }},
	{"h>=0 and ((l>=h and k>h) or (l=h and k=h))",
		func(h, k, l int) bool { return h >= 0 && ((l >= h && k > h) || (l == h && k == h)) }},
	{"k>=l and l>=h and h>=0",
		func(h, k, l int) bool { return k >= l && l >= h && h >= 0 }},
}

// HklAsuChecker tests Miller indices for membership in the CCP4
// reciprocal-space asymmetric unit of a space group. Non-reference
// settings are handled by rotating indices back to the reference
// setting with the inverse change-of-basis rotation.
type HklAsuChecker struct {
	idx int
	rot symop.Rot
}

// NewHklAsuChecker prepares a checker for the given catalog entry.
func NewHklAsuChecker(sg *SpaceGroup) (*HklAsuChecker, error) {
	if sg == nil {
		return nil, fmt.Errorf("%w: nil space group", ErrNotFound)
	}
	basis, err := sg.BasisOp()
	if err != nil {
		return nil, err
	}
	inv, err := basis.Inverse()
	if err != nil {
		return nil, err
	}
	return &HklAsuChecker{idx: int(ccp4HklAsu[sg.Number-1]), rot: inv.Rot}, nil
}

// IsIn reports whether (h,k,l) lies in the asymmetric unit of the
// checker's setting. The rotated indices stay scaled by the operation
// denominator; the conditions are homogeneous, so the scale cancels.
func (c *HklAsuChecker) IsIn(h, k, l int) bool {
	return c.IsInReferenceSetting(
		c.rot[0][0]*h+c.rot[0][1]*k+c.rot[0][2]*l,
		c.rot[1][0]*h+c.rot[1][1]*k+c.rot[1][2]*l,
		c.rot[2][0]*h+c.rot[2][1]*k+c.rot[2][2]*l)
}

// IsInReferenceSetting applies the condition directly, assuming the
// indices are already expressed in the reference setting.
func (c *HklAsuChecker) IsInReferenceSetting(h, k, l int) bool {
	return hklAsuConditions[c.idx].in(h, k, l)
}

// Condition returns the human-readable form of the active condition.
func (c *HklAsuChecker) Condition() string { return hklAsuConditions[c.idx].str }
