// Package analyze derives structural invariants from a built congruence
// lattice: chain and antichain measures, irreducible elements, and the
// distributive / modular / boolean classification.
//
// What
//
//   - Analyze(lat) returns a Report with:
//   - Size, Height (longest chain, via longest path in the covering DAG)
//   - Width (largest layer of the topological leveling)
//   - AtomCount, CoatomCount
//   - JoinIrreducibles (exactly one lower cover, bottom excluded) and
//     MeetIrreducibles (dually), as lattice indices
//   - IsDistributive, IsModular, IsBoolean
//   - HasZero, HasOne (verified, not assumed)
//   - AnalysisTime
//
// Why
//
//   - The shape of Con(A) — its height, width, irreducibles, and which
//     lattice identities it satisfies — is what classification arguments
//     (variety membership, Malcev conditions) actually consume.
//
// Method
//
//	Distributivity is checked brute-force over all ordered triples
//	(a∧(b∨c) = (a∧b)∨(a∧c)); modularity over triples with a ≤ c
//	(a∨(b∧c) = (a∨b)∧c). Brute force is chosen over forbidden-sublattice
//	detection for guaranteed correctness at the lattice sizes congruence
//	lattices reach here; join/meet tables are precomputed so the triple scan
//	costs O(m³) lookups. Booleanness is distributivity plus a complement for
//	every element. As a sanity cross-check, the irreducibles are recomputed
//	on the order dual (covering relation reversed) and must mirror exactly;
//	a mismatch surfaces ErrDualMismatch instead of a silently wrong Report.
//
// Complexity (m = lattice size)
//
//   - Leveling (height, width): O(m + |covers|)
//   - Join/meet tables: O(m⁴) worst case; triple identity scans: O(m³)
//
// Errors
//
//   - ErrLatticeNil   a nil *congruence.Lattice was supplied.
//   - ErrDualMismatch the dual cross-check failed (internal inconsistency).
package analyze
