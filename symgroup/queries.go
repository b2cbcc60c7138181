package symgroup

import (
	"slices"
	"sort"

	"github.com/katalvlaran/xtalsym/symop"
)

// FindCentering sorts the centering vectors and matches them against the
// canonical centering sets. Returns the lattice letter, or 0 when no set
// matches.
func (g *GroupOps) FindCentering() byte {
	if len(g.CenOps) == 1 && g.CenOps[0] == (symop.Tran{}) {
		return 'P'
	}
	trans := slices.Clone(g.CenOps)
	sort.Slice(trans, func(i, j int) bool { return symop.TranLess(trans[i], trans[j]) })
	for _, c := range []byte{'A', 'B', 'C', 'I', 'F', 'R', 'S', 'T', 'H'} {
		want, _ := CenteringVectors(c)
		if slices.Equal(trans, want) {
			return c
		}
	}
	return 0
}

// FindByRotation scans SymOps for an operation with the given rotation
// part and returns its index, or -1 when absent. An index is returned
// instead of a pointer so the result stays valid if SymOps is regrown.
func (g *GroupOps) FindByRotation(r symop.Rot) int {
	for i, op := range g.SymOps {
		if op.Rot == r {
			return i
		}
	}
	return -1
}

// IsCentric reports whether the group contains the pure inversion.
func (g *GroupOps) IsCentric() bool {
	const d = symop.DEN
	return g.FindByRotation(symop.Rot{{-d, 0, 0}, {0, -d, 0}, {0, 0, -d}}) >= 0
}

// AllOpsSorted returns the full Cartesian sum ordered by the total order
// on operations: the canonical representation of the group, independent
// of how its generators were chosen.
func (g *GroupOps) AllOpsSorted() []symop.Op {
	ops := g.AllOps()
	sort.Slice(ops, func(i, j int) bool { return ops[i].Less(ops[j]) })
	return ops
}

// IsSameAs reports whether two groups hold exactly the same operations,
// comparing the canonical sorted enumerations.
func (g *GroupOps) IsSameAs(other *GroupOps) bool {
	if len(g.SymOps) != len(other.SymOps) || len(g.CenOps) != len(other.CenOps) {
		return false
	}
	return slices.Equal(g.AllOpsSorted(), other.AllOpsSorted())
}

// GridFactors returns the minimal grid multiplicity per axis compatible
// with the symmetry: the finest nonzero translation component along each
// axis determines how a real-space grid must be divided.
// Examples: {1,2,1} for P21, {1,1,6} for P61.
func (g *GroupOps) GridFactors() [3]int {
	const t = symop.DEN
	r := [3]int{t, t, t}
	for _, op := range g.AllOps() {
		for i := 0; i < 3; i++ {
			if op.Tran[i] != 0 && op.Tran[i] < r[i] {
				r[i] = op.Tran[i]
			}
		}
	}
	return [3]int{t / r[0], t / r[1], t / r[2]}
}

// AreDirectionsSymmetryRelated reports whether some rotation mixes axis v
// into axis u, i.e. whether the two map directions are permuted by the
// symmetry.
func (g *GroupOps) AreDirectionsSymmetryRelated(u, v int) bool {
	for _, op := range g.SymOps {
		if op.Rot[u][v] != 0 {
			return true
		}
	}
	return false
}

// SplitCenteringVectors builds a GroupOps from a flat operation list by
// separating pure translations into centering vectors. Operations sharing
// a rotation with an earlier entry contribute either a centering vector
// (identity rotation) or a preferred zero translation.
func SplitCenteringVectors(ops []symop.Op) GroupOps {
	id := symop.Identity()
	g := GroupOps{SymOps: []symop.Op{id}}
	for _, op := range ops {
		if idx := g.FindByRotation(op.Rot); idx >= 0 {
			if op.Rot == id.Rot { // pure shift
				g.CenOps = append(g.CenOps, op.Tran)
			}
			if op.Tran == (symop.Tran{}) {
				g.SymOps[idx].Tran = op.Tran
			}
		} else {
			g.SymOps = append(g.SymOps, op)
		}
	}
	return g
}
