package partition

// Builder is a mutable disjoint-set (union-find) accumulator over {0..n-1}
// with path compression and union by size. It exists for fixpoint algorithms
// (principal-congruence closure, partition join) that perform many merges and
// finalize once into an immutable Partition.
//
// Builder methods do not bounds-check: indices are assumed validated by the
// caller before the hot loop. A Builder is not safe for concurrent use.
type Builder struct {
	parent []int // parent[i] = parent index in the DSU forest; parent[r] == r for roots
	size   []int // size[r] = number of elements under root r (valid for roots only)
	blocks int   // current number of disjoint blocks
}

// NewBuilder returns a Builder with every element in its own block.
// Returns ErrInvalidSize if n < 1.
func NewBuilder(n int) (*Builder, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	b := &Builder{
		parent: make([]int, n),
		size:   make([]int, n),
		blocks: n,
	}
	for i := 0; i < n; i++ {
		b.parent[i] = i
		b.size[i] = 1
	}

	return b, nil
}

// newBuilderFrom seeds a Builder with the blocks of an existing Partition.
func newBuilderFrom(p Partition) *Builder {
	b, _ := NewBuilder(p.n) // p is valid, so p.n >= 1
	for i, r := range p.rep {
		if i != r {
			b.Union(i, r)
		}
	}

	return b
}

// Find returns the current root of x, compressing the path as it walks.
func (b *Builder) Find(x int) int {
	// Iterative two-pass halving: make x point to its grandparent while walking.
	for b.parent[x] != x {
		b.parent[x] = b.parent[b.parent[x]]
		x = b.parent[x]
	}

	return x
}

// Union merges the blocks of x and y. It reports whether a merge actually
// happened (false when x and y were already in the same block).
func (b *Builder) Union(x, y int) bool {
	rx, ry := b.Find(x), b.Find(y)
	if rx == ry {
		return false
	}
	// Attach the smaller tree under the larger root.
	if b.size[rx] < b.size[ry] {
		rx, ry = ry, rx
	}
	b.parent[ry] = rx
	b.size[rx] += b.size[ry]
	b.blocks--

	return true
}

// SameBlock reports whether x and y currently share a block.
func (b *Builder) SameBlock(x, y int) bool {
	return b.Find(x) == b.Find(y)
}

// NumBlocks returns the current number of blocks.
func (b *Builder) NumBlocks() int {
	return b.blocks
}

// Partition finalizes the Builder into an immutable, canonical Partition.
// The Builder remains usable afterwards; further unions do not affect the
// returned value.
func (b *Builder) Partition() Partition {
	n := len(b.parent)
	rep := make([]int, n)
	// minOf[r] = smallest element seen so far under root r; -1 = unseen.
	minOf := make([]int, n)
	for i := range minOf {
		minOf[i] = -1
	}
	// Ascending scan guarantees the first element of each root is its minimum.
	for i := 0; i < n; i++ {
		r := b.Find(i)
		if minOf[r] < 0 {
			minOf[r] = i
		}
		rep[i] = minOf[r]
	}

	return Partition{n: n, rep: rep}
}
