// Package symgroup: the GroupOps type and its basic accessors.
package symgroup

import "github.com/katalvlaran/xtalsym/symop"

// GroupOps is the operation set of a space group, factored into point
// operations and centering vectors.
//
// Invariants maintained by all constructors in this module:
//   - SymOps[0] is the identity operation
//   - rotation parts within SymOps are pairwise distinct
//   - CenOps[0] is the zero vector and CenOps has no duplicates
type GroupOps struct {
	// SymOps holds the point operations (rotation + translation pairs).
	SymOps []symop.Op
	// CenOps holds the centering translations, zero vector first.
	CenOps []symop.Tran
}

// Order is the total number of operations: len(SymOps)·len(CenOps).
func (g *GroupOps) Order() int {
	return len(g.SymOps) * len(g.CenOps)
}

// Get returns the n-th operation of the Cartesian enumeration
// (point operations cycle fastest), wrapped into the unit cell.
// n must be in [0, Order()).
func (g *GroupOps) Get(n int) symop.Op {
	nCen := n / len(g.SymOps)
	nSym := n % len(g.SymOps)
	return g.SymOps[nSym].AddCentering(g.CenOps[nCen])
}

// AllOps enumerates the full Cartesian sum in Get order, each operation
// wrapped. The result is a fresh slice owned by the caller.
func (g *GroupOps) AllOps() []symop.Op {
	ops := make([]symop.Op, 0, g.Order())
	for _, co := range g.CenOps {
		for _, so := range g.SymOps {
			ops = append(ops, so.AddCentering(co))
		}
	}
	return ops
}
