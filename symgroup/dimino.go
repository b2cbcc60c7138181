package symgroup

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/xtalsym/symop"
)

// safetyLimit bounds the working set during closure. No crystallographic
// point group comes anywhere near it.
const safetyLimit = 1023

// AddMissingElements expands the generators in SymOps into the full
// closed set of point operations using Dimino's algorithm:
//
//  1. Build the cyclic subgroup of the first generator by repeated
//     composition until the rotation part returns to identity.
//  2. For every further generator, enumerate cosets: keep a list of coset
//     representatives, multiply every representative by every generator
//     seen so far, and whenever a new rotation appears insert it together
//     with its products against the previously known subgroup; repeat
//     until a pass adds nothing.
//
// Membership tests compare rotation parts only: the centering vectors in
// CenOps are assumed complete, and a crystallographic group never holds
// two operations with equal rotations but different translations.
//
// Returns ErrMissingIdentity when SymOps[0] is not identity, and
// ErrGroupTooLarge when the working set exceeds the safety limit.
func (g *GroupOps) AddMissingElements() error {
	if len(g.SymOps) == 0 || g.SymOps[0] != symop.Identity() {
		return ErrMissingIdentity
	}
	if len(g.SymOps) == 1 {
		return nil
	}
	gen := slices.Clone(g.SymOps[1:])
	g.SymOps = g.SymOps[:2]

	idRot := symop.Identity().Rot
	for e := g.SymOps[1].Mul(g.SymOps[1]); e.Rot != idRot; e = e.Mul(g.SymOps[1]) {
		g.SymOps = append(g.SymOps, e)
		if len(g.SymOps) > safetyLimit {
			return fmt.Errorf("%w: first generator does not cycle", ErrGroupTooLarge)
		}
	}

	for i := 1; i < len(gen); i++ {
		cosetRepr := []symop.Op{symop.Identity()}
		initSize := len(g.SymOps)
		for {
			length := len(cosetRepr)
			for j := 0; j < length; j++ {
				for n := 0; n <= i; n++ {
					sg := gen[n].Mul(cosetRepr[j])
					if g.FindByRotation(sg.Rot) < 0 {
						g.SymOps = append(g.SymOps, sg)
						for k := 1; k < initSize; k++ {
							g.SymOps = append(g.SymOps, sg.Mul(g.SymOps[k]))
						}
						cosetRepr = append(cosetRepr, sg)
					}
				}
			}
			if length == len(cosetRepr) {
				break
			}
			if len(g.SymOps) > safetyLimit {
				return fmt.Errorf("%w: %d elements and growing", ErrGroupTooLarge, len(g.SymOps))
			}
		}
	}
	return nil
}
