package symgroup_test

import (
	"testing"

	"github.com/katalvlaran/xtalsym/symgroup"
	"github.com/katalvlaran/xtalsym/symop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triplets prints a sym-op list for compact comparisons.
func triplets(ops []symop.Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Triplet()
	}
	return out
}

// TestGeneratorsFromHall checks generator decoding on the example
// matrices from hall_symbols.html and on symbols from the 530 settings.
func TestGeneratorsFromHall(t *testing.T) {
	cases := []struct {
		hall string
		want []string
	}{
		{"p -2xc", []string{"x,y,z", "-x,y,z+1/2"}},
		{"p 3*", []string{"x,y,z", "z,x,y"}},
		{"p 4vw", []string{"x,y,z", "-y,x+1/4,z+1/4"}},
		{"p 61 2 (0 0 -1)", []string{"x,y,z", "x-y,x,z+1/6", "-y,-x,-z+5/6"}},
		{"P -2 -2", []string{"x,y,z", "x,y,-z", "-x,y,z"}},
	}
	for _, tc := range cases {
		t.Run(tc.hall, func(t *testing.T) {
			gen, err := symgroup.GeneratorsFromHall(tc.hall)
			require.NoError(t, err)
			assert.Equal(t, tc.want, triplets(gen.SymOps))
		})
	}
}

// TestGeneratorsFromHall_EquivalentNotations interprets the same group in
// diagonal-axis notation and in rhombohedral notation with an explicit
// change of basis; generators and centering vectors must agree.
func TestGeneratorsFromHall_EquivalentNotations(t *testing.T) {
	a, err := symgroup.GeneratorsFromHall("P 3*")
	require.NoError(t, err)
	b, err := symgroup.GeneratorsFromHall("R 3 (-y+z,x+z,-x+y+z)")
	require.NoError(t, err)
	assert.Equal(t, a.SymOps, b.SymOps)
	assert.Equal(t, a.CenOps, b.CenOps)
}

// TestGeneratorsFromHall_Inversion: a leading '-' contributes the global
// inversion as a second generator.
func TestGeneratorsFromHall_Inversion(t *testing.T) {
	gen, err := symgroup.GeneratorsFromHall("-P 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x,y,z", "-x,-y,-z"}, triplets(gen.SymOps))
}

// TestCenteringVectors spot-checks the lattice table and case folding.
func TestCenteringVectors(t *testing.T) {
	const h = symop.DEN / 2
	p, err := symgroup.CenteringVectors('P')
	require.NoError(t, err)
	assert.Equal(t, []symop.Tran{{0, 0, 0}}, p)

	f, err := symgroup.CenteringVectors('f')
	require.NoError(t, err)
	assert.Equal(t, []symop.Tran{{0, 0, 0}, {0, h, h}, {h, 0, h}, {h, h, 0}}, f)

	_, err = symgroup.CenteringVectors('Q')
	assert.ErrorIs(t, err, symgroup.ErrLattice)
}

// TestHallErrors exercises the malformed-symbol table.
func TestHallErrors(t *testing.T) {
	cases := []struct {
		name string
		hall string
		want error
	}{
		{"empty", "   ", symgroup.ErrHall},
		{"bad lattice", "Q 2", symgroup.ErrLattice},
		{"five-fold", "P 5", symgroup.ErrHall},
		{"seven-fold", "P 7", symgroup.ErrHall},
		{"missing axis", "P 2 3", symgroup.ErrHall},
		{"two subscripts", "P 322", symgroup.ErrHall},
		{"unknown letter", "P 2q", symgroup.ErrHall},
		{"unterminated parenthesis", "P 2 (0 0 1", symgroup.ErrHall},
		{"junk after parenthesis", "P 2 (0 0 1) x", symgroup.ErrHall},
		{"bad change of basis", "P 2 (0 0)", symgroup.ErrHall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := symgroup.GeneratorsFromHall(tc.hall)
			assert.ErrorIs(t, err, tc.want, "hall %q", tc.hall)
		})
	}
}

// TestSymopsFromHall_Orders closes a sample of Hall symbols and checks
// the resulting group orders.
func TestSymopsFromHall_Orders(t *testing.T) {
	cases := []struct {
		hall  string
		order int
	}{
		{"P 1", 1},
		{"-P 1", 2},
		{"P 2ybc", 2},
		{"-P 2ybc", 4}, // P 21/c
		{"P 2ac 2ab", 4},
		{"C 2y", 4},
		{"F 2 2", 16},
		{"P 61 2 (0 0 -1)", 12},
		{"-F 4 2 3", 192},
	}
	for _, tc := range cases {
		t.Run(tc.hall, func(t *testing.T) {
			gops, err := symgroup.SymopsFromHall(tc.hall)
			require.NoError(t, err)
			assert.Equal(t, tc.order, gops.Order())
			assert.Len(t, gops.AllOpsSorted(), tc.order)
		})
	}
}
