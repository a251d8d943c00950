// Package conlat is your in-memory toolkit for computing and analyzing the
// congruence lattice of a finite algebra — from partition primitives to
// tame-congruence-theory type labels.
//
// 🚀 What is conlat?
//
//	A modern, zero-dependency library that brings together:
//		• Partitions: immutable equivalence relations over {0..n-1}, union-find backed
//		• Algebras: finite universes with table- or function-backed finitary operations
//		• Principal congruences: worklist fixpoint closure Cg(a,b)
//		• Congruence lattices: full enumeration via join/meet closure, atoms, coatoms, covers
//		• Lattice analysis: height, width, irreducibles, distributivity/modularity/booleanness
//		• TCT types: classification of every prime interval into types 1–5
//
// ✨ Why choose conlat?
//
//   - Deterministic – canonical orderings everywhere, reproducible lattice indices
//   - Rock-solid guarantees – sentinel errors, all-or-nothing construction
//   - Pure Go – no cgo, no hidden deps
//   - Cooperative – context cancellation and synchronous progress hooks on long builds
//
// Under the hood, everything is organized in five subpackages:
//
//	algebra/    — finite Algebra and Operation values + canonical fixtures
//	partition/  — immutable Partition type with join, meet and refinement order
//	congruence/ — principal-congruence closure and the CongruenceLattice
//	analyze/    — structural invariants of a built lattice
//	tct/        — tame-congruence-theory types of covering pairs
//
// Quick ASCII example — the congruence lattice of Z4 (+ mod 4):
//
//	      ⊤  |0 1 2 3|
//	      │
//	      θ  |0 2|1 3|
//	      │
//	      ⊥  |0|1|2|3|
//
//	a three-element chain: bottom, the parity congruence, top.
//
// Dive into the package docs for full examples, complexity notes, and the
// export surface (JSON/CSV interchange of congruences and covering relations).
//
//	go get github.com/katalvlaran/conlat
package conlat
