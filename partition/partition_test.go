package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conlat/partition"
)

// mustFromBlocks builds a partition or fails the test immediately.
func mustFromBlocks(t *testing.T, n int, blocks [][]int) partition.Partition {
	t.Helper()
	p, err := partition.FromBlocks(n, blocks)
	require.NoError(t, err)

	return p
}

// TestIdentity_Basics verifies the finest partition: n singleton blocks.
func TestIdentity_Basics(t *testing.T) {
	p, err := partition.Identity(4)
	require.NoError(t, err)

	assert.Equal(t, 4, p.Size())
	assert.Equal(t, 4, p.NumBlocks())
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, p.Blocks())

	same, err := p.SameBlock(1, 2)
	require.NoError(t, err)
	assert.False(t, same)

	assert.Equal(t, "|0|1|2|3|", p.String())
}

// TestUniversal_Basics verifies the coarsest partition: one block holding all.
func TestUniversal_Basics(t *testing.T) {
	p, err := partition.Universal(3)
	require.NoError(t, err)

	assert.Equal(t, 1, p.NumBlocks())
	assert.Equal(t, [][]int{{0, 1, 2}}, p.Blocks())

	same, err := p.SameBlock(0, 2)
	require.NoError(t, err)
	assert.True(t, same)
}

// TestConstructors_InvalidSize verifies ErrInvalidSize for n < 1.
func TestConstructors_InvalidSize(t *testing.T) {
	_, err := partition.Identity(0)
	assert.ErrorIs(t, err, partition.ErrInvalidSize)

	_, err = partition.Universal(-1)
	assert.ErrorIs(t, err, partition.ErrInvalidSize)

	_, err = partition.FromBlocks(0, nil)
	assert.ErrorIs(t, err, partition.ErrInvalidSize)
}

// TestFromBlocks_Canonicalization: input block and element order is irrelevant.
func TestFromBlocks_Canonicalization(t *testing.T) {
	p := mustFromBlocks(t, 4, [][]int{{3, 1}, {2, 0}})

	assert.Equal(t, [][]int{{0, 2}, {1, 3}}, p.Blocks())
	assert.Equal(t, "|0 2|1 3|", p.String())
	assert.Equal(t, 2, p.NumBlocks())
}

// TestFromBlocks_Invalid rejects overlap, gaps, empty blocks, foreign elements.
func TestFromBlocks_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		blocks [][]int
	}{
		{"overlap", 3, [][]int{{0, 1}, {1, 2}}},
		{"missing element", 3, [][]int{{0, 1}}},
		{"empty block", 3, [][]int{{0, 1, 2}, {}}},
		{"out of range", 3, [][]int{{0, 1, 2, 3}}},
		{"negative", 2, [][]int{{0, -1}, {1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := partition.FromBlocks(tc.n, tc.blocks)
			assert.ErrorIs(t, err, partition.ErrInvalidPartition)
		})
	}
}

// TestSameBlock_OutOfRange verifies index validation on queries.
func TestSameBlock_OutOfRange(t *testing.T) {
	p, err := partition.Identity(3)
	require.NoError(t, err)

	_, err = p.SameBlock(0, 3)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfRange)

	_, err = p.SameBlock(-1, 0)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfRange)

	_, err = p.Rep(5)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfRange)
}

// TestJoin_MergesAcrossInputs: join of |0 1|2|3| and |0|1 2|3| chains 0,1,2.
func TestJoin_MergesAcrossInputs(t *testing.T) {
	p := mustFromBlocks(t, 4, [][]int{{0, 1}, {2}, {3}})
	q := mustFromBlocks(t, 4, [][]int{{0}, {1, 2}, {3}})

	j, err := p.Join(q)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, j.Blocks())
}

// TestMeet_IntersectsBlocks: meet keeps only pairs related in both inputs.
func TestMeet_IntersectsBlocks(t *testing.T) {
	p := mustFromBlocks(t, 4, [][]int{{0, 1, 2}, {3}})
	q := mustFromBlocks(t, 4, [][]int{{0, 1}, {2, 3}})

	m, err := p.Meet(q)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}, {3}}, m.Blocks())
}

// TestJoinMeet_LatticeLaws exhaustively checks commutativity, associativity
// and absorption over a small family of partitions of a 4-element universe.
func TestJoinMeet_LatticeLaws(t *testing.T) {
	id, err := partition.Identity(4)
	require.NoError(t, err)
	top, err := partition.Universal(4)
	require.NoError(t, err)

	family := []partition.Partition{
		id,
		top,
		mustFromBlocks(t, 4, [][]int{{0, 1}, {2}, {3}}),
		mustFromBlocks(t, 4, [][]int{{0, 2}, {1, 3}}),
		mustFromBlocks(t, 4, [][]int{{0, 3}, {1, 2}}),
		mustFromBlocks(t, 4, [][]int{{0, 1, 2}, {3}}),
	}

	join := func(a, b partition.Partition) partition.Partition {
		r, jerr := a.Join(b)
		require.NoError(t, jerr)

		return r
	}
	meet := func(a, b partition.Partition) partition.Partition {
		r, merr := a.Meet(b)
		require.NoError(t, merr)

		return r
	}

	for _, x := range family {
		for _, y := range family {
			// Commutativity.
			assert.True(t, join(x, y).Equal(join(y, x)), "join commutativity: %v vs %v", x, y)
			assert.True(t, meet(x, y).Equal(meet(y, x)), "meet commutativity: %v vs %v", x, y)
			// Absorption.
			assert.True(t, join(x, meet(x, y)).Equal(x), "join-absorption: %v vs %v", x, y)
			assert.True(t, meet(x, join(x, y)).Equal(x), "meet-absorption: %v vs %v", x, y)
			for _, z := range family {
				// Associativity.
				assert.True(t, join(join(x, y), z).Equal(join(x, join(y, z))))
				assert.True(t, meet(meet(x, y), z).Equal(meet(x, meet(y, z))))
			}
		}
	}
}

// TestIsFinerThan_Order verifies reflexivity, bounds and a strict refinement.
func TestIsFinerThan_Order(t *testing.T) {
	id, err := partition.Identity(4)
	require.NoError(t, err)
	top, err := partition.Universal(4)
	require.NoError(t, err)
	mid := mustFromBlocks(t, 4, [][]int{{0, 2}, {1, 3}})

	for _, p := range []partition.Partition{id, mid, top} {
		refl, ferr := p.IsFinerThan(p)
		require.NoError(t, ferr)
		assert.True(t, refl, "reflexivity for %v", p)

		below, ferr := id.IsFinerThan(p)
		require.NoError(t, ferr)
		assert.True(t, below, "identity below %v", p)

		above, ferr := p.IsFinerThan(top)
		require.NoError(t, ferr)
		assert.True(t, above, "%v below universal", p)
	}

	finer, err := top.IsFinerThan(mid)
	require.NoError(t, err)
	assert.False(t, finer)
}

// TestDimensionMismatch verifies the cross-universe sentinel on all ops.
func TestDimensionMismatch(t *testing.T) {
	p, err := partition.Identity(3)
	require.NoError(t, err)
	q, err := partition.Identity(4)
	require.NoError(t, err)

	_, err = p.Join(q)
	assert.ErrorIs(t, err, partition.ErrDimensionMismatch)
	_, err = p.Meet(q)
	assert.ErrorIs(t, err, partition.ErrDimensionMismatch)
	_, err = p.IsFinerThan(q)
	assert.ErrorIs(t, err, partition.ErrDimensionMismatch)
	assert.False(t, p.Equal(q))
}

// TestBuilder_UnionFind exercises the mutable accumulator directly.
func TestBuilder_UnionFind(t *testing.T) {
	b, err := partition.NewBuilder(6)
	require.NoError(t, err)
	assert.Equal(t, 6, b.NumBlocks())

	assert.True(t, b.Union(0, 3))
	assert.True(t, b.Union(3, 5))
	assert.False(t, b.Union(0, 5), "already merged via transitivity")
	assert.True(t, b.SameBlock(0, 5))
	assert.Equal(t, 4, b.NumBlocks())

	p := b.Partition()
	assert.Equal(t, [][]int{{0, 3, 5}, {1}, {2}, {4}}, p.Blocks())

	// Finalized value is immutable: further unions do not leak into p.
	b.Union(1, 2)
	assert.Equal(t, 4, p.NumBlocks())

	_, err = partition.NewBuilder(0)
	assert.ErrorIs(t, err, partition.ErrInvalidSize)
}
