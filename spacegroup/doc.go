// Package spacegroup is the static catalog of the 230 crystallographic
// space groups in all 554 documented settings, with classification,
// tolerant lookup, and the reciprocal-space asymmetric-unit predicates.
//
// 🚀 What is in the catalog?
//
//	One immutable entry per documented setting: space-group number,
//	legacy CCP4 number, Hermann–Mauguin name, origin-choice/extension
//	tag, axis/cell qualifier, Hall symbol, and the index of the
//	change-of-basis triplet that maps the setting back to its reference
//	setting (index 0 means the entry is the reference setting itself).
//
// ✨ Lookup strategies:
//   - FindByNumber – by the legacy numeric identifier ("4005" → I 1 2 1)
//   - FindByName – tolerant Hermann–Mauguin match: blanks and underscores
//     ignored, case-folded first letter, H→R rewrite, monoclinic short
//     forms ("P21" → P 1 21 1), ':' origin suffixes, 1990's alternate
//     spellings ("Aem2" → A b m 2), and plain numbers
//   - FindByOps – identify an arbitrary closed GroupOps against the catalog
//
// ⚙️ Usage:
//
//	sg := spacegroup.FindByName("P 21/c")  // space group 14, "-P 2ybc"
//	gops, err := sg.Operations()           // Hall → generators → closure
//	asu, err := spacegroup.NewHklAsuChecker(sg)
//	asu.IsIn(1, 1, 1)
//
// Classification (point group, Laue class, crystal system) is an
// exhaustive enum-keyed mapping; the enum ordinals match the documented
// reference tables and are load-bearing.
//
// The catalog is constructed at compile time, never mutated, and safe for
// concurrent readers without locking.
package spacegroup
