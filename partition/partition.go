// Package partition: the immutable Partition value, its constructors, and
// element/block queries. Lattice operations (Join/Meet/IsFinerThan) live in
// ops.go per the one-concern-per-file convention.
package partition

import (
	"sort"
	"strconv"
	"strings"
)

// Partition is an immutable equivalence relation over {0..n-1}.
//
// Internally it stores rep[i] = the smallest element of i's block, so the
// representation is canonical: two Partitions describe the same relation iff
// their rep arrays are equal. All operations return new Partitions; nothing
// mutates in place. The zero value is not a valid Partition — always use a
// constructor or Builder.Partition.
type Partition struct {
	n   int   // universe size
	rep []int // rep[i] = min element of i's block (canonical form)
}

// Identity returns the finest partition of {0..n-1}: every element alone.
// Returns ErrInvalidSize if n < 1.
func Identity(n int) (Partition, error) {
	if n < 1 {
		return Partition{}, ErrInvalidSize
	}
	rep := make([]int, n)
	for i := range rep {
		rep[i] = i
	}

	return Partition{n: n, rep: rep}, nil
}

// Universal returns the coarsest partition of {0..n-1}: one block holding all.
// Returns ErrInvalidSize if n < 1.
func Universal(n int) (Partition, error) {
	if n < 1 {
		return Partition{}, ErrInvalidSize
	}
	// rep is all zeros: every element's block minimum is 0.
	return Partition{n: n, rep: make([]int, n)}, nil
}

// FromBlocks builds a Partition of {0..n-1} from explicit blocks.
// The blocks must be disjoint, nonempty, and cover the universe exactly;
// otherwise ErrInvalidPartition is returned. Block and element order in the
// input is irrelevant — the result is canonical.
func FromBlocks(n int, blocks [][]int) (Partition, error) {
	if n < 1 {
		return Partition{}, ErrInvalidSize
	}
	rep := make([]int, n)
	seen := make([]bool, n)
	covered := 0
	for _, blk := range blocks {
		if len(blk) == 0 {
			return Partition{}, ErrInvalidPartition
		}
		// 1. Locate the block minimum (input order is arbitrary).
		m := blk[0]
		for _, e := range blk {
			if e < 0 || e >= n {
				return Partition{}, ErrInvalidPartition
			}
			if e < m {
				m = e
			}
		}
		// 2. Assign the representative, rejecting overlaps.
		for _, e := range blk {
			if seen[e] {
				return Partition{}, ErrInvalidPartition
			}
			seen[e] = true
			rep[e] = m
			covered++
		}
	}
	// 3. Every element of the universe must have been covered exactly once.
	if covered != n {
		return Partition{}, ErrInvalidPartition
	}

	return Partition{n: n, rep: rep}, nil
}

// Size returns the universe size n.
func (p Partition) Size() int {
	return p.n
}

// NumBlocks returns the number of blocks.
func (p Partition) NumBlocks() int {
	count := 0
	for i, r := range p.rep {
		if i == r {
			count++
		}
	}

	return count
}

// SameBlock reports whether a and b lie in the same block.
// Returns ErrIndexOutOfRange if either index is outside [0,n).
func (p Partition) SameBlock(a, b int) (bool, error) {
	if a < 0 || a >= p.n || b < 0 || b >= p.n {
		return false, ErrIndexOutOfRange
	}

	return p.rep[a] == p.rep[b], nil
}

// Rep returns the canonical representative (block minimum) of a.
// Returns ErrIndexOutOfRange if a is outside [0,n).
func (p Partition) Rep(a int) (int, error) {
	if a < 0 || a >= p.n {
		return 0, ErrIndexOutOfRange
	}

	return p.rep[a], nil
}

// Blocks returns the blocks in canonical order: ascending by minimal element,
// each block sorted ascending. The result is freshly allocated.
func (p Partition) Blocks() [][]int {
	byRep := make(map[int][]int, p.n)
	reps := make([]int, 0, p.n)
	for i, r := range p.rep {
		if _, ok := byRep[r]; !ok {
			reps = append(reps, r)
		}
		byRep[r] = append(byRep[r], i) // ascending scan keeps blocks sorted
	}
	sort.Ints(reps)
	blocks := make([][]int, 0, len(reps))
	for _, r := range reps {
		blocks = append(blocks, byRep[r])
	}

	return blocks
}

// Equal reports whether p and q describe the same equivalence relation.
// Partitions over different universe sizes are never equal.
func (p Partition) Equal(q Partition) bool {
	if p.n != q.n {
		return false
	}
	for i := range p.rep {
		if p.rep[i] != q.rep[i] {
			return false
		}
	}

	return true
}

// String renders the partition in block notation, e.g. "|0 2|1 3|".
// Because the representation is canonical, the string doubles as a stable
// identity key for deduplication.
func (p Partition) String() string {
	var sb strings.Builder
	for _, blk := range p.Blocks() {
		sb.WriteByte('|')
		for i, e := range blk {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(e))
		}
	}
	sb.WriteByte('|')

	return sb.String()
}
