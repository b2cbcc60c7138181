// Package symgroup assembles exact symmetry operations into groups: it
// models a group as point operations × centering vectors, interprets Hall
// symbols into generator sets, and closes generator sets with Dimino's
// algorithm.
//
// 🚀 What is a GroupOps?
//
//	The operation set of a crystallographic space group, factored as
//	SymOps (rotations with their translations; SymOps[0] is always the
//	identity) times CenOps (centering vectors; CenOps[0] is always zero).
//	The group's full operation set is the Cartesian sum of the two lists,
//	so Order() == len(SymOps)·len(CenOps).
//
// ✨ Key features:
//   - Hall symbols: "-P 2ybc", "P 31", "P 4n 2 3 -1n", with lattice letter,
//     rotation symbols, screw subscripts, diagonal markers, intrinsic
//     translation letters and a trailing change-of-basis
//   - Dimino closure: cyclic subgroup of the first generator, then coset
//     enumeration per remaining generator, bounded by a 1023-element guard
//   - Queries: centering detection, centrosymmetry, canonical sorted
//     enumeration (group equality independent of generator choice), grid
//     factors for symmetry-compatible map sampling, basis change
//
// ⚙️ Usage:
//
//	gops, err := symgroup.SymopsFromHall("-P 2ybc")
//	if err != nil { ... }
//	fmt.Println(gops.Order())         // 4
//	fmt.Println(gops.IsCentric())     // true
//	for _, op := range gops.AllOpsSorted() { ... }
//
// The closure compares rotation parts only: a crystallographic space group
// never holds two operations sharing a rotation but differing in
// translation, and centering vectors are assumed complete before closure.
// That assumption is documented catalog-side, not re-derived here.
package symgroup
