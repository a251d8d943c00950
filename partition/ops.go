// Package partition: lattice operations on Partition values — Join, Meet,
// and the refinement order IsFinerThan.
package partition

// Join returns the smallest partition coarser than both p and q: the union of
// the two underlying equivalence relations, closed transitively.
//
// A single pass over each input suffices: seeding a union-find with p's blocks
// and then merging i with q's representative of i is already transitively
// consistent, so no iterative fixpoint is needed.
//
// Returns ErrDimensionMismatch if the universe sizes differ.
// Complexity: O(n·α(n)).
func (p Partition) Join(q Partition) (Partition, error) {
	if p.n != q.n {
		return Partition{}, ErrDimensionMismatch
	}
	// 1. Seed with p's relation.
	b := newBuilderFrom(p)
	// 2. Overlay q's relation: each element joins its q-representative.
	for i, r := range q.rep {
		if i != r {
			b.Union(i, r)
		}
	}

	return b.Partition(), nil
}

// Meet returns the largest partition finer than both p and q: elements share a
// meet-block iff they share a block in p AND in q.
//
// Implementation: group elements by the pair (root in p, root in q). The
// ascending scan makes the first element carrying a given pair the block
// minimum, so the result is canonical without a sort.
//
// Returns ErrDimensionMismatch if the universe sizes differ.
// Complexity: O(n).
func (p Partition) Meet(q Partition) (Partition, error) {
	if p.n != q.n {
		return Partition{}, ErrDimensionMismatch
	}
	type pair struct{ u, v int }
	first := make(map[pair]int, p.n) // (repP, repQ) -> block minimum
	rep := make([]int, p.n)
	for i := 0; i < p.n; i++ {
		k := pair{p.rep[i], q.rep[i]}
		m, ok := first[k]
		if !ok {
			m = i
			first[k] = i
		}
		rep[i] = m
	}

	return Partition{n: p.n, rep: rep}, nil
}

// IsFinerThan reports the refinement order p ≤ q: every block of p is
// contained in a block of q. The order is reflexive — p.IsFinerThan(p) holds.
//
// Returns ErrDimensionMismatch if the universe sizes differ.
// Complexity: O(n).
func (p Partition) IsFinerThan(q Partition) (bool, error) {
	if p.n != q.n {
		return false, ErrDimensionMismatch
	}
	// p ≤ q iff each element sits in the same q-block as its p-representative.
	for i, r := range p.rep {
		if q.rep[i] != q.rep[r] {
			return false, nil
		}
	}

	return true, nil
}
