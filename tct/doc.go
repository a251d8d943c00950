// Package tct classifies the prime intervals of a congruence lattice by
// tame-congruence-theory type: for every covering pair (α,β) it determines
// which of the five local prototypes the algebra induces between them.
//
// What
//
//   - Classify(lat, lower, upper): the type of one covering pair.
//   - ClassifyAll(lat): labels for every covering pair of the lattice.
//   - Summary(labels): the type distribution (the "typeset" of the algebra).
//   - Types: 1 unary, 2 affine, 3 boolean, 4 lattice, 5 semilattice.
//
// Why
//
//   - TCT types link the local structure of an algebra to prototypical
//     varieties: a typeset omitting 1 and 2 forces congruence
//     meet-semidistributivity, types {2,3} appear in congruence-modular
//     varieties, and so on. The typeset is the bridge from a computed lattice
//     to structural theorems.
//
// Procedure
//
//	For a covering pair (α,β):
//	  1. Compute the unary polynomial clone (identity + constants, closed
//	     under applying basic operations to tuples of members).
//	  2. Among unary polynomials f with f(β) ⊄ α, take the inclusion-minimal
//	     images: the (β,α)-minimal sets. Pick the canonical one (smallest,
//	     then lexicographic).
//	  3. Inside it, take a trace: the β-class of the first β-related,
//	     α-unrelated pair, intersected with the minimal set. Quotient the
//	     trace by α.
//	  4. Restrict the binary and ternary polynomial clones to operations
//	     preserving the trace and project them onto the quotient.
//	  5. Decide, testing structure in order:
//	     Maltsev + semilattice operation → type 3 (boolean);
//	     Maltsev alone                  → type 2 (affine);
//	     two semilattice ops + absorption → type 4 (lattice);
//	     one semilattice op             → type 5 (semilattice);
//	     nothing beyond unary maps      → type 1 (unary).
//
// Degenerate inputs
//
//	A one-element algebra, or a lattice where bottom == top, has no prime
//	interval to classify: ErrDegenerateLattice is returned rather than a
//	guessed label.
//
// Complexity
//
//	Clone closure is bounded by the number of distinct k-ary functions the
//	algebra can induce (at most n^(n^k)); it stays small for the tiny
//	universes prime-interval analysis targets, and WithContext offers a
//	cooperative escape hatch on every closure round.
//
// Errors
//
//   - ErrLatticeNil                     nil lattice.
//   - ErrDegenerateLattice              no prime interval exists (documented
//     domain boundary rather than a guessed label).
//   - ErrNotCovering                    (lower, upper) is not a covering pair.
//   - congruence.ErrIndexOutOfRange     invalid lattice index.
//   - congruence.ErrCancelled           cancelled via WithContext.
//   - ErrMinimalSet                     internal: no minimal set found (bug).
package tct
