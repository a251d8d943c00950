// Package partition provides an immutable equivalence relation (Partition)
// over the universe {0..n-1}, the ground type of every congruence computation.
//
// What
//
//   - Partition: disjoint, nonempty blocks covering {0..n-1}; every element
//     belongs to exactly one block.
//   - Constructors: Identity(n), Universal(n), FromBlocks(n, blocks).
//   - Queries: SameBlock, IsFinerThan, Blocks, NumBlocks, Equal, String.
//   - Lattice primitives: Join (coarsest common refinement bound from above),
//     Meet (finest common coarsening bound from below).
//   - Builder: a mutable union-find accumulator for fixpoint algorithms that
//     finalizes into an immutable Partition.
//
// Why
//
//   - Congruences of a finite algebra are exactly the partitions compatible
//     with its operations; join/meet of partitions under the refinement order
//     is the algebraic backbone of the congruence lattice.
//   - An immutable value with a canonical representative array makes equality,
//     hashing (via String) and deterministic block ordering trivial.
//
// Representation
//
//	A Partition stores rep[i] = the smallest element of i's block. The array is
//	index-based (no pointer chasing), fully canonical after construction:
//	SameBlock is two array reads, Equal is one slice comparison, and Blocks
//	returns blocks ascending by their minimal element.
//
// Join & Meet
//
//	Join unions the two underlying relations in a single pass over each input's
//	representative array — union-find merging is already transitively
//	consistent, so no iterative fixpoint is needed. Meet groups elements by the
//	pair (root in P, root in Q); elements sharing a pair form a meet-block.
//
// Complexity (n = universe size, α = inverse Ackermann)
//
//   - Builder.Union/Find: O(α(n)) amortized (path compression + union by size)
//   - Join, Meet, IsFinerThan, Equal: O(n·α(n)) / O(n)
//   - Blocks, String: O(n)
//
// Errors
//
//   - ErrInvalidSize       if n < 1 is requested.
//   - ErrInvalidPartition  if FromBlocks input overlaps, misses elements,
//     contains an empty block, or references an element outside [0,n).
//   - ErrIndexOutOfRange   if an element index is outside [0,n).
//   - ErrDimensionMismatch if two partitions over different universes meet.
package partition
