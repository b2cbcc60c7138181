package symgroup

import (
	"fmt"

	"github.com/katalvlaran/xtalsym/symop"
)

// CenteringVectors returns the centering-translation set of a lattice
// letter, zero vector first, per Table A1.4.2.2 in ITfC vol.B (2010).
// Lower-case letters are accepted. Unknown letters yield ErrLattice.
func CenteringVectors(lattice byte) ([]symop.Tran, error) {
	const h = symop.DEN / 2
	const t = symop.DEN / 3
	const d = 2 * t
	switch lattice &^ 0x20 { // to upper case
	case 'P':
		return []symop.Tran{{0, 0, 0}}, nil
	case 'A':
		return []symop.Tran{{0, 0, 0}, {0, h, h}}, nil
	case 'B':
		return []symop.Tran{{0, 0, 0}, {h, 0, h}}, nil
	case 'C':
		return []symop.Tran{{0, 0, 0}, {h, h, 0}}, nil
	case 'I':
		return []symop.Tran{{0, 0, 0}, {h, h, h}}, nil
	case 'R':
		return []symop.Tran{{0, 0, 0}, {t, d, d}, {d, t, t}}, nil
	// hall_symbols.html has no H; ITfC 2010 has no S and T
	case 'S':
		return []symop.Tran{{0, 0, 0}, {t, t, d}, {d, t, d}}, nil
	case 'T':
		return []symop.Tran{{0, 0, 0}, {t, d, t}, {d, t, d}}, nil
	case 'H':
		return []symop.Tran{{0, 0, 0}, {t, d, 0}, {d, t, 0}}, nil
	case 'F':
		return []symop.Tran{{0, 0, 0}, {0, h, h}, {h, 0, h}, {h, h, 0}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrLattice, string(lattice))
	}
}
