// Package congruence computes congruences of a finite algebra: the principal
// congruence Cg(a,b) via worklist fixpoint closure, and the full congruence
// lattice via join/meet closure of the principal congruences.
//
// What
//
//   - Principal(alg, a, b): smallest congruence relating a and b, by the
//     one-coordinate substitution lemma over a worklist of merged pairs.
//   - Build(alg): the complete congruence Lattice — every congruence in a
//     canonical, reproducible order, with the refinement order, covering
//     relation, atoms, coatoms, and a principal-congruence cache frozen in.
//   - Export surface: JSON and CSV renderings of the canonical interchange
//     shape (size, congruences as integer block lists, covering edge list,
//     atoms, coatoms).
//
// Why
//
//   - The congruence lattice is the central invariant of an algebra: its
//     shape decides variety membership questions, Malcev conditions, and
//     feeds directly into tame-congruence-theory type analysis.
//
// Construction
//
//	Seed with the bottom (identity) and top (universal) partitions plus
//	Cg(i,j) for every pair i<j; close the set under pairwise join and meet
//	until nothing new appears. Finiteness of the algebra guarantees
//	termination. Congruences then sort by descending block count, ties by
//	block signature, so bottom is index 0 and top index Size()-1 on every run.
//
// Concurrency & cancellation
//
//	All algorithms are single-threaded and synchronous. Long builds accept
//	WithContext (cooperative cancellation, polled between worklist items,
//	surfacing ErrCancelled) and WithOnProgress (a synchronous hook with a
//	heuristic fraction — the final lattice size is unknown in advance).
//	A built Lattice is immutable and safe for concurrent reads; construction
//	itself assumes a single writer.
//
// Complexity (n = cardinality, m = lattice size, k = max arity)
//
//   - Principal: O(n · |ops| · k · n^(k-1) · α(n)) worst case.
//   - Build: O(n²) principal closures + O(m²) join/meet pairings + O(m³) for
//     the covering relation. Congruence lattices stay small for the algebra
//     sizes this engine targets; see DESIGN.md for the revisit threshold.
//
// Errors
//
//   - ErrAlgebraNil, ErrLatticeNil     nil inputs.
//   - ErrIndexOutOfRange               lattice index outside [0, Size()).
//   - algebra.ErrInvalidElement        universe element outside [0, n).
//   - algebra.ErrNotTotal              closure reached an undefined operation
//     input; construction aborts (all-or-nothing).
//   - ErrCancelled                     cooperative cancellation fired.
//   - ErrUnknownFormat                 Export with a format ≠ "json"/"csv".
//   - ErrInconsistent                  internal closure invariant broken (bug).
package congruence
