package symgroup

import "github.com/katalvlaran/xtalsym/symop"

// ChangeBasis conjugates every non-identity point operation by the
// change-of-basis operator: op → cob·op·cob⁻¹, wrapped.
//
// When the transform enlarges the cell (det(cob⁻¹)/DEN³ > 1), the number
// of centering vectors changes. As an ad-hoc method (not proved to be
// robust) lattice points from an idet³ super-cell are tiled in before
// re-conjugation, and exact duplicates are removed afterwards.
func (g *GroupOps) ChangeBasis(cob symop.Op) error {
	if len(g.SymOps) == 0 || len(g.CenOps) == 0 {
		return nil
	}
	inv, err := cob.Inverse()
	if err != nil {
		return err
	}

	// SymOps[0] is identity and stays identity under conjugation.
	for i := 1; i < len(g.SymOps); i++ {
		g.SymOps[i] = cob.Combine(g.SymOps[i]).Combine(inv).Wrap()
	}

	idet := inv.DetRot() / (symop.DEN * symop.DEN * symop.DEN)
	if idet > 1 {
		tiled := make([]symop.Tran, 0, len(g.CenOps)*idet*idet*idet)
		for i := 0; i < idet; i++ {
			for j := 0; j < idet; j++ {
				for k := 0; k < idet; k++ {
					for _, cen := range g.CenOps {
						tiled = append(tiled, symop.Tran{
							i*symop.DEN + cen[0],
							j*symop.DEN + cen[1],
							k*symop.DEN + cen[2],
						})
					}
				}
			}
		}
		g.CenOps = tiled
	}

	cvec := symop.Identity()
	for i := 1; i < len(g.CenOps); i++ {
		cvec.Tran = g.CenOps[i]
		g.CenOps[i] = cob.Combine(cvec).Combine(inv).Wrap().Tran
	}

	// Drop exact duplicates; n stays small, the pairwise scan is fine.
	for i := len(g.CenOps) - 1; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if g.CenOps[i] == g.CenOps[j] {
				g.CenOps = append(g.CenOps[:i], g.CenOps[i+1:]...)
				break
			}
		}
	}
	return nil
}
