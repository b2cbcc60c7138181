package symop_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/xtalsym/symop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOp parses a triplet or fails the test.
func mustOp(t *testing.T, s string) symop.Op {
	t.Helper()
	op, err := symop.ParseTriplet(s)
	require.NoError(t, err, "parse %q", s)
	return op
}

// TestIdentity checks the identity is a two-sided unit of composition.
func TestIdentity(t *testing.T) {
	id := symop.Identity()
	assert.Equal(t, "x,y,z", id.Triplet())
	for _, s := range []string{"x,y,z", "-y,x-y,z+1/3", "y+1/2,x,-z+1/3"} {
		op := mustOp(t, s)
		assert.Equal(t, op, id.Mul(op), "id∘%s", s)
		assert.Equal(t, op, op.Mul(id), "%s∘id", s)
	}
}

// TestWrap reduces translations into [0,DEN) without touching rotations.
func TestWrap(t *testing.T) {
	op := symop.Identity()
	op.Tran = symop.Tran{-1, symop.DEN, 3 * symop.DEN}
	w := op.Wrap()
	assert.Equal(t, symop.Tran{symop.DEN - 1, 0, 0}, w.Tran)
	assert.Equal(t, symop.Identity().Rot, w.Rot)
}

// TestCombine checks composition against reference products, including
// non-commuting pairs.
func TestCombine(t *testing.T) {
	a := mustOp(t, "x+1/3,z,-y")
	assert.Equal(t, "x+2/3,-y,-z", a.Combine(a).Triplet())

	assert.Equal(t, mustOp(t, "-x,y,z"),
		mustOp(t, "x,-y,z").Mul(mustOp(t, "-x,-y,z")))

	a = mustOp(t, "-y+1/4,x+3/4,z+1/4")
	b := mustOp(t, "-x+1/2,y,-z")
	c := mustOp(t, "-y,-z,-x")
	assert.Equal(t, "-y+1/4,-x+1/4,-z+1/4", a.Mul(b).Triplet())
	assert.NotEqual(t, b.Mul(c), c.Mul(b), "composition must not commute here")
	assert.Equal(t, "z+1/4,-y+3/4,-x+1/4", a.Mul(c).Triplet())
	assert.Equal(t, mustOp(t, "y+1/2,-z,x"), b.Mul(c))
	assert.Equal(t, mustOp(t, "-y,z,x+1/2"), c.Mul(b))
}

// TestOrderThreeGenerator composes an order-3 generator with itself three
// times and expects the identity rotation back.
func TestOrderThreeGenerator(t *testing.T) {
	g := mustOp(t, "-y,x-y,z+1/3")
	cubed := g.Mul(g).Mul(g)
	assert.Equal(t, symop.Identity().Rot, cubed.Rot)
	assert.Equal(t, symop.Identity(), cubed, "screw translations add up to a full cell")
}

// TestInverse checks a∘a⁻¹ == identity and involution of inversion.
func TestInverse(t *testing.T) {
	for _, s := range []string{"-y,-x,-z+1/4", "y,-x,z+3/4", "y,x,-z", "y+1/2,x,-z+1/3"} {
		op := mustOp(t, s)
		inv, err := op.Inverse()
		require.NoError(t, err, "invert %q", s)
		assert.Equal(t, symop.Identity(), op.Mul(inv), "%s ∘ inverse", s)
		back, err := inv.Inverse()
		require.NoError(t, err)
		assert.Equal(t, op, back, "double inversion of %q", s)
	}
}

// TestInverse_CellEnlarging inverts the hexagonal↔rhombohedral
// change-of-basis operator (determinant 3·DEN³).
func TestInverse_CellEnlarging(t *testing.T) {
	op := mustOp(t, "-y+z,x+z,-x+y+z")
	assert.Equal(t, 3*symop.DEN*symop.DEN*symop.DEN, op.DetRot())

	inv, err := op.Inverse()
	require.NoError(t, err)
	assert.Equal(t, symop.Identity(), inv.Mul(op))
	assert.Equal(t, symop.Identity(), op.Mul(inv))

	const want = "-1/3*x+2/3*y-1/3*z,-2/3*x+1/3*y+1/3*z,1/3*x+1/3*y+1/3*z"
	assert.Equal(t, want, inv.Triplet())
	assert.Equal(t, inv, mustOp(t, want), "fractional coefficients re-parse")

	op = mustOp(t, "1/2*x+1/2*y,-1/2*x+1/2*y,z")
	inv, err = op.Inverse()
	require.NoError(t, err)
	assert.Equal(t, "x-y,x+y,z", inv.Triplet())
}

// TestInverse_Singular rejects a zero-determinant rotation with the
// offending triplet in the message.
func TestInverse_Singular(t *testing.T) {
	var op symop.Op // zero matrix
	_, err := op.Inverse()
	assert.ErrorIs(t, err, symop.ErrSingular)
	assert.Zero(t, op.DetRot())
}

// TestNegated flips both parts; NegatedRot only the rotation.
func TestNegated(t *testing.T) {
	op := mustOp(t, "x,y,z+1/2")
	neg := op.Negated()
	assert.Equal(t, "-x,-y,-z-1/2", neg.Triplet())
	assert.Equal(t, neg.Rot, op.NegatedRot())
	assert.Equal(t, mustOp(t, "x,y,z+1/2"), op, "receiver must stay untouched")
}

// TestApplyToHKL uses the transpose convention on reflection indices.
func TestApplyToHKL(t *testing.T) {
	op := mustOp(t, "-y,x-y,z")
	// rows act on columns transposed: (3,0,1) → (0,-3,1)
	assert.Equal(t, [3]int{0, -3, 1}, op.ApplyToHKL([3]int{3, 0, 1}))
	assert.Equal(t, [3]int{2, 5, 7}, symop.Identity().ApplyToHKL([3]int{2, 5, 7}))
}

// TestPhaseShift checks the -2π·(h·t)/DEN convention in degrees.
func TestPhaseShift(t *testing.T) {
	op := mustOp(t, "x,y,z+1/3")
	shift := op.PhaseShift(3, 0, 1) * 180 / math.Pi
	// l·tz = 1·8 → -2π·8/24 = -120°
	assert.InDelta(t, -120.0, shift, 1e-12)
	assert.Zero(t, symop.Identity().PhaseShift(5, 3, 2))
}

// TestLess is a strict total order: irreflexive, antisymmetric on the
// sample, rotation-major.
func TestLess(t *testing.T) {
	a := mustOp(t, "x,y,z")
	b := mustOp(t, "x,y,z+1/2")
	assert.False(t, a.Less(a))
	assert.True(t, a.Less(b), "same rotation, smaller translation first")
	assert.False(t, b.Less(a))

	neg := mustOp(t, "-x,-y,-z")
	assert.True(t, neg.Less(a), "negative rotation entries sort first")
}

// TestSeitz checks both Seitz forms against the raw parts.
func TestSeitz(t *testing.T) {
	op := mustOp(t, "-y,x,z+1/2")
	is := op.IntSeitz()
	assert.Equal(t, [4]int{0, -symop.DEN, 0, 0}, is[0])
	assert.Equal(t, [4]int{0, 0, 0, 1}, is[3])

	fs := op.FloatSeitz()
	r, c := fs.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)
	assert.InDelta(t, -1.0, fs.At(0, 1), 1e-15)
	assert.InDelta(t, 0.5, fs.At(2, 3), 1e-15)
	assert.InDelta(t, 1.0, fs.At(3, 3), 1e-15)
}
