// Package spacegroup - lookup.go
// Catalog access: by number, by (tolerant) name, by operation set.

package spacegroup

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/xtalsym/symgroup"
)

// Table returns pointers to all catalog entries in table order.
// The entries are shared and must not be modified.
func Table() []*SpaceGroup {
	out := make([]*SpaceGroup, len(tableMain))
	for i := range tableMain {
		out[i] = &tableMain[i]
	}
	return out
}

// P1 returns the first catalog entry, space group P 1.
func P1() *SpaceGroup { return &tableMain[0] }

// FindByNumber returns the entry whose legacy CCP4 number equals ccp4,
// or nil. Reference settings carry their space-group number, alternate
// settings number+n*1000, so plain 1..230 resolve to reference settings.
func FindByNumber(ccp4 int) *SpaceGroup {
	for i := range tableMain {
		if tableMain[i].CCP4 == ccp4 {
			return &tableMain[i]
		}
	}
	return nil
}

// GetByNumber is FindByNumber returning ErrNotFound on a miss.
func GetByNumber(ccp4 int) (*SpaceGroup, error) {
	if sg := FindByNumber(ccp4); sg != nil {
		return sg, nil
	}
	return nil, fmt.Errorf("%w: number %d", ErrNotFound, ccp4)
}

// ReferenceSetting returns the reference setting of space-group number
// n (1..230).
func ReferenceSetting(n int) (*SpaceGroup, error) {
	for i := range tableMain {
		if tableMain[i].Number == n && tableMain[i].IsReferenceSetting() {
			return &tableMain[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no reference setting for number %d", ErrNotFound, n)
}

// skipBlank advances i past blanks (space, tab, underscore) in s.
func skipBlank(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '_') {
		i++
	}
	return i
}

// matchesHM compares name (from position i) against hm (from position
// j), ignoring blanks on both sides, and then checks an optional
// ":ext" suffix against ext. It implements the common tail of full-name
// and alternate-name matching.
func matchesHM(name string, i int, hm string, j int, ext byte) bool {
	for i < len(name) && j < len(hm) && name[i] == hm[j] {
		i = skipBlank(name, i+1)
		j = skipBlank(hm, j+1)
	}
	if j < len(hm) {
		return false
	}
	if i >= len(name) {
		return true
	}
	if name[i] != ':' {
		return false
	}
	i = skipBlank(name, i+1)
	if ext == 0 {
		return i >= len(name)
	}
	return i < len(name) && name[i] == ext
}

// FindByName resolves a space-group name to a catalog entry, or nil.
//
// Accepted spellings, in priority order:
//   - a plain number, resolved as FindByNumber;
//   - a full Hermann-Mauguin name, with blanks/underscores ignored, the
//     first letter case-folded, a leading H rewritten to R, and an
//     optional ":1"/":2"/":H"/":R" suffix ("P21/c:1", "R 3:R");
//   - the monoclinic short form with the unique-axis frame dropped
//     ("P21" for P 1 21 1, "I2" for I 1 2 1);
//   - an alternate spelling from the 1990's nomenclature ("Aem2").
func FindByName(name string) *SpaceGroup {
	i := skipBlank(name, 0)
	if i >= len(name) {
		return nil
	}
	first := name[i]
	if first >= '0' && first <= '9' {
		n, err := strconv.Atoi(name[i:])
		if err != nil {
			return nil
		}
		return FindByNumber(n)
	}
	if first == 'H' {
		first = 'R'
	}
	first &^= 0x20 // fold to upper case
	p := skipBlank(name, i+1)
	for idx := range tableMain {
		sg := &tableMain[idx]
		hm := sg.HM
		if hm[0] != first {
			continue
		}
		if p < len(name) && hm[2] == name[p] {
			if matchesHM(name, skipBlank(name, p+1), hm, skipBlank(hm, 3), sg.Ext) {
				return sg
			}
		} else if len(hm) > 4 && hm[2] == '1' && hm[3] == ' ' && hm[4] != '1' {
			// short monoclinic names: "P2" means "P 1 2 1"
			a, b := p, 4
			for a < len(name) && b < len(hm) && name[a] == hm[b] && hm[b] != ' ' {
				a = skipBlank(name, a+1)
				b++
			}
			if a >= len(name) && b < len(hm) && hm[b] == ' ' {
				return sg
			}
		}
	}
	for k := range altNames {
		alt := &altNames[k]
		if alt.HM[0] != first {
			continue
		}
		if p < len(name) && alt.HM[2] == name[p] &&
			matchesHM(name, skipBlank(name, p+1), alt.HM, skipBlank(alt.HM, 3), alt.Ext) {
			return &tableMain[alt.Pos]
		}
	}
	return nil
}

// GetByName is FindByName returning ErrNotFound on a miss.
func GetByName(name string) (*SpaceGroup, error) {
	if sg := FindByName(name); sg != nil {
		return sg, nil
	}
	return nil, fmt.Errorf("%w: name %q", ErrNotFound, name)
}

// FindByOps identifies a closed operation group against the catalog, or
// returns nil. Candidate entries are pre-filtered by the centring
// letter before the full set comparison.
func FindByOps(g *symgroup.GroupOps) *SpaceGroup {
	c := g.FindCentering()
	for i := range tableMain {
		sg := &tableMain[i]
		if c != sg.Hall[0] && (sg.Hall[0] != '-' || c != sg.Hall[1]) {
			continue
		}
		ops, err := sg.Operations()
		if err != nil {
			continue
		}
		if g.IsSameAs(ops) {
			return sg
		}
	}
	return nil
}
