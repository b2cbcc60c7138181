// Package spacegroup - types.go
// The immutable catalog entry type and its derived-name and
// classification accessors.

package spacegroup

import (
	"strings"

	"github.com/katalvlaran/xtalsym/symgroup"
	"github.com/katalvlaran/xtalsym/symop"
)

// SpaceGroup is one catalog entry, a single documented setting of one
// of the 230 space groups. Entries are pointers into the package-level
// table and must not be modified.
type SpaceGroup struct {
	// Number is the space-group number, 1..230.
	Number int
	// CCP4 is the legacy CCP4 numeric identifier (Number for reference
	// settings, Number+n*1000 for alternates, 0 when none is assigned).
	CCP4 int
	// HM is the full Hermann-Mauguin name, e.g. "P 1 21 1".
	HM string
	// Ext is the origin-choice or setting tag ('1', '2', 'H', 'R'),
	// 0 when the name needs no disambiguation.
	Ext byte
	// Qualifier is the axis/cell code of the setting, e.g. "b1", "-cba".
	Qualifier string
	// Hall is the Hall symbol encoding the full symmetry.
	Hall string
	// BasisOpIdx indexes the change-of-basis triplet that maps this
	// setting to the reference setting. 0 is the identity.
	BasisOpIdx int
}

type altName struct {
	HM  string
	Ext byte
	Pos int // index into tableMain
}

// ColonExt returns ":"+Ext, or "" when Ext is unset.
func (sg *SpaceGroup) ColonExt() string {
	if sg.Ext == 0 {
		return ""
	}
	return ":" + string(sg.Ext)
}

// XHM returns the extended Hermann-Mauguin name, e.g. "R 3:H".
func (sg *SpaceGroup) XHM() string { return sg.HM + sg.ColonExt() }

// ShortName returns a compact name in the style "P21212" or "H32":
// blanks removed, the monoclinic "1 ... 1" frame dropped, and the
// leading letter rewritten to H for hexagonal-axes rhombohedral
// settings.
func (sg *SpaceGroup) ShortName() string {
	s := sg.HM
	if len(s) > 6 && s[2] == '1' && s[len(s)-2] == ' ' && s[len(s)-1] == '1' {
		s = s[:1] + s[4:len(s)-2]
	}
	if sg.Ext == 'H' {
		s = "H" + s[1:]
	}
	return strings.ReplaceAll(s, " ", "")
}

// IsReferenceSetting reports whether this entry is the reference
// (standard) setting of its space-group number.
func (sg *SpaceGroup) IsReferenceSetting() bool { return sg.BasisOpIdx == 0 }

// BasisOpStr returns the change-of-basis triplet of the setting.
func (sg *SpaceGroup) BasisOpStr() string { return basisOps[sg.BasisOpIdx] }

// BasisOp parses the change-of-basis triplet of the setting.
func (sg *SpaceGroup) BasisOp() (symop.Op, error) {
	return symop.ParseTriplet(sg.BasisOpStr())
}

// PointGroup returns the point group of the entry.
func (sg *SpaceGroup) PointGroup() PointGroup { return PointGroupOf(sg.Number) }

// PointGroupHM returns the Hermann-Mauguin symbol of the point group.
func (sg *SpaceGroup) PointGroupHM() string { return sg.PointGroup().HM() }

// LaueClass returns the Laue class of the entry.
func (sg *SpaceGroup) LaueClass() Laue { return sg.PointGroup().Laue() }

// LaueHM returns the Hermann-Mauguin symbol of the Laue class.
func (sg *SpaceGroup) LaueHM() string { return sg.LaueClass().HM() }

// CrystalSystem returns the crystal system of the entry.
func (sg *SpaceGroup) CrystalSystem() CrystalSystem { return sg.LaueClass().CrystalSystem() }

// IsCentrosymmetric reports whether the group contains inversion, which
// is exactly when the point group coincides with its Laue class.
func (sg *SpaceGroup) IsCentrosymmetric() bool { return sg.PointGroup() == sg.LaueClass().PointGroup() }

// IsEnantiomorphic reports whether the entry belongs to one of the 11
// enantiomorphic space-group pairs.
func (sg *SpaceGroup) IsEnantiomorphic() bool {
	switch sg.Number {
	case 76, 78, 91, 95, 92, 96, 144, 145, 151, 153, 152, 154, 169, 170, 171, 172, 178, 179, 180, 181, 212, 213:
		return true
	}
	return false
}

// IsSohncke reports whether the group contains only proper rotations
// and translations, i.e. can host a chiral structure.
func (sg *SpaceGroup) IsSohncke() bool {
	switch sg.PointGroup() {
	case PgC1, PgC2, PgD2, PgC4, PgD4, PgC3, PgD3, PgC6, PgD6, PgT, PgO:
		return true
	}
	return false
}

// IsSymmorphic reports whether set union of a point group and a lattice
// reproduces the group, which holds exactly for 73 space-group numbers.
func (sg *SpaceGroup) IsSymmorphic() bool {
	switch sg.Number {
	case 1, 2, 3, 5, 6, 8, 10, 12, 16, 21, 22, 23, 25, 35, 38, 42, 44,
		47, 65, 69, 71, 75, 79, 81, 82, 83, 87, 89, 97, 99, 107, 111,
		115, 119, 121, 123, 139, 143, 146, 147, 148, 149, 150, 155, 156,
		157, 160, 162, 164, 166, 168, 174, 175, 177, 183, 187, 189, 191,
		195, 196, 197, 200, 202, 204, 207, 209, 211, 215, 216, 217, 221,
		225, 229:
		return true
	}
	return false
}

// Centring returns the lattice-centring letter of the setting, which is
// the first letter of the Hall symbol (skipping a leading minus).
func (sg *SpaceGroup) Centring() byte {
	if sg.Hall[0] == '-' {
		return sg.Hall[1]
	}
	return sg.Hall[0]
}

// Operations decodes the Hall symbol into the full closed group.
func (sg *SpaceGroup) Operations() (*symgroup.GroupOps, error) {
	return symgroup.SymopsFromHall(sg.Hall)
}
