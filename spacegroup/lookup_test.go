package spacegroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xtalsym/spacegroup"
	"github.com/katalvlaran/xtalsym/symgroup"
	"github.com/katalvlaran/xtalsym/symop"
)

// mustSG resolves a name or fails the test.
func mustSG(t *testing.T, name string) *spacegroup.SpaceGroup {
	t.Helper()
	sg := spacegroup.FindByName(name)
	require.NotNil(t, sg, "name %q", name)
	return sg
}

// mustOps decodes the Hall symbol of an entry or fails the test.
func mustOps(t *testing.T, sg *spacegroup.SpaceGroup) *symgroup.GroupOps {
	t.Helper()
	gops, err := sg.Operations()
	require.NoError(t, err, "hall %q", sg.Hall)
	return gops
}

func TestFindByNumber(t *testing.T) {
	assert.Equal(t, "P 1", spacegroup.FindByNumber(1).HM)
	assert.Equal(t, "C 1 2 1", spacegroup.FindByNumber(5).HM)
	assert.Equal(t, "I 1 2 1", spacegroup.FindByNumber(4005).HM)
	assert.Nil(t, spacegroup.FindByNumber(231))

	sg, err := spacegroup.GetByNumber(19)
	require.NoError(t, err)
	assert.Equal(t, "P 21 21 21", sg.HM)
	_, err = spacegroup.GetByNumber(999)
	assert.ErrorIs(t, err, spacegroup.ErrNotFound)
}

func TestFindByName(t *testing.T) {
	assert.Equal(t, "P 21 21 2", mustSG(t, "P21212").HM)
	assert.Equal(t, "P 1 21 1", mustSG(t, "P21").HM)
	assert.Equal(t, "P 1 2 1", mustSG(t, "P 2").HM)

	for name, xhm := range map[string]string{
		"R 3 2":   "R 3 2:H",
		"R32:H":   "R 3 2:H",
		"H32":     "R 3 2:H",
		"R 3 2:R": "R 3 2:R",
		"P6":      "P 6",
		"P 6":     "P 6",
		"P65":     "P 65",
		"I1211":   "I 1 21 1",
		"Aem2":    "A b m 2",
		"C c c e": "C c c a:1",
		"i2":      "I 1 2 1",
		"4005":    "I 1 2 1",
	} {
		assert.Equal(t, xhm, mustSG(t, name).XHM(), "name %q", name)
	}

	p21c := mustSG(t, "P21/c")
	assert.Equal(t, 14, p21c.Number)
	assert.Equal(t, "-P 2ybc", p21c.Hall)

	assert.Nil(t, spacegroup.FindByName("i3"))
	assert.Nil(t, spacegroup.FindByName("abc"))
	assert.Nil(t, spacegroup.FindByName(""))
	_, err := spacegroup.GetByName("i3")
	assert.ErrorIs(t, err, spacegroup.ErrNotFound)
}

func TestShortName(t *testing.T) {
	for longer, shorter := range map[string]string{
		"P 21 2 21": "P21221",
		"P 1 2 1":   "P2",
		"P 1":       "P1",
		"R 3 2:R":   "R32",
		"R 3 2:H":   "H32",
	} {
		assert.Equal(t, shorter, mustSG(t, longer).ShortName(), "name %q", longer)
	}
}

func TestReferenceSetting(t *testing.T) {
	sg, err := spacegroup.ReferenceSetting(5)
	require.NoError(t, err)
	assert.Equal(t, "C 1 2 1", sg.HM)
	assert.True(t, sg.IsReferenceSetting())
	assert.Equal(t, "x,y,z", sg.BasisOpStr())

	i2 := mustSG(t, "I2")
	assert.False(t, i2.IsReferenceSetting())
	assert.Equal(t, "x,y,-x+z", i2.BasisOpStr())
}

// checkChangeBasis moves the group of setting a onto setting b and back.
func checkChangeBasis(t *testing.T, nameA, nameB, triplet string) {
	t.Helper()
	cob, err := symop.ParseTriplet(triplet)
	require.NoError(t, err)
	a, b := mustSG(t, nameA), mustSG(t, nameB)

	ops := mustOps(t, a)
	require.NoError(t, ops.ChangeBasis(cob))
	assert.True(t, ops.IsSameAs(mustOps(t, b)), "%s -> %s", nameA, nameB)

	inv, err := cob.Inverse()
	require.NoError(t, err)
	require.NoError(t, ops.ChangeBasis(inv))
	assert.True(t, ops.IsSameAs(mustOps(t, a)), "%s -> %s", nameB, nameA)
}

func TestChangeBasisBetweenSettings(t *testing.T) {
	checkChangeBasis(t, "I2", "C2", "x,y,x+z")
	// the entry's own basisop is a different conjugator onto the same group
	checkChangeBasis(t, "I2", "C2", mustSG(t, "I2").BasisOpStr())
	checkChangeBasis(t, "C 1 c 1", "C 1 n 1", "x+1/4,y+1/4,z")
	checkChangeBasis(t, "R 3:H", "R 3:R", "-y+z,x+z,-x+y+z")
	checkChangeBasis(t, "A -1", "P -1", "-x,-y+z,y+z")
}

func TestFindByOps(t *testing.T) {
	// a non-catalog Hall descriptor closing onto a catalog group
	gops, err := symgroup.SymopsFromHall("-P 2a 2ac (z,x,y)")
	require.NoError(t, err)
	pbaa := mustSG(t, "Pbaa")
	assert.Equal(t, mustOps(t, pbaa).AllOpsSorted(), gops.AllOpsSorted())
	require.NotNil(t, spacegroup.FindByOps(gops))
	assert.Equal(t, "P b a a", spacegroup.FindByOps(gops).HM)

	// a group assembled from raw triplets
	var ops []symop.Op
	for _, s := range []string{"x, y, z", "x, -y, z+1/2", "x+1/2, y+1/2, z", "x+1/2, -y+1/2, z+1/2"} {
		op, perr := symop.ParseTriplet(s)
		require.NoError(t, perr)
		ops = append(ops, op)
	}
	g := symgroup.SplitCenteringVectors(ops)
	assert.Equal(t, byte('C'), g.FindCentering())
	assert.Equal(t, 4, g.Order())
	require.NotNil(t, spacegroup.FindByOps(&g))
	assert.Equal(t, "C 1 c 1", spacegroup.FindByOps(&g).HM)
}

func TestP1(t *testing.T) {
	sg := spacegroup.P1()
	assert.Equal(t, 1, sg.Number)
	assert.Equal(t, "P 1", sg.HM)
	assert.Equal(t, 1, mustOps(t, sg).Order())
}
