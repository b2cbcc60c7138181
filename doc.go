// Package xtalsym is the crystallographic symmetry engine for
// macromolecular-structure tooling: exact symmetry operations, standard
// crystallographic notations, group expansion, and the full space-group
// catalog.
//
// 🚀 What is xtalsym?
//
//	A pure in-memory library that brings together:
//		• Exact operation algebra: 3×3 rotation + translation, denominator 24
//		• Triplet notation: "x,y,z+1/2" ↔ operation, both directions
//		• Hall symbols: compact generator notation, fully interpreted
//		• Group closure: Dimino's algorithm with a runaway-size guard
//		• The catalog: 230 space groups, 554 documented settings
//		• Lookup: by number, by (tolerant) Hermann–Mauguin name, by operations
//		• Reciprocal-space ASU: the 10 canonical asymmetric-unit predicates
//
// ✨ Why choose xtalsym?
//
//   - Exact – all group arithmetic is integer, no floating-point drift ever
//   - Deterministic – canonical sorted enumeration, total order on operations
//   - Self-contained – the catalog is compiled in, no files, no network
//   - Concurrency-safe – the catalog is read-only; values carry no shared state
//
// Everything is organized under three subpackages:
//
//	symop/      — the Op type: algebra, triplets, Seitz matrices
//	symgroup/   — GroupOps, centering lattices, Hall symbols, Dimino closure
//	spacegroup/ — the static catalog, classification, lookup, ASU checker
//
// Quick example:
//
//	sg := spacegroup.FindByName("P 21 21 21")
//	ops, _ := sg.Operations()
//	for _, op := range ops.AllOpsSorted() {
//	    fmt.Println(op.Triplet())
//	}
//
// Coordinate-file readers, density-map tools and reflection-data tools sit
// on top of this engine: they enumerate symmetry images, pick map grids via
// GridFactors, and restrict reflections to an asymmetric unit with
// HklAsuChecker.
//
//	go get github.com/katalvlaran/xtalsym
package xtalsym
