package tct_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/congruence"
	"github.com/katalvlaran/conlat/tct"
)

// buildLattice is the common fixture path.
func buildLattice(t *testing.T, alg *algebra.Algebra) *congruence.Lattice {
	t.Helper()
	lat, err := congruence.Build(alg)
	require.NoError(t, err)

	return lat
}

// TestClassify_AffineGroup: every prime interval of an abelian group is
// type 2 — Z4 gives a chain with two covering pairs.
func TestClassify_AffineGroup(t *testing.T) {
	z4, err := algebra.NewCyclicGroup(4)
	require.NoError(t, err)
	lat := buildLattice(t, z4)

	labels, err := tct.ClassifyAll(lat)
	require.NoError(t, err)
	require.Len(t, labels, 2)
	for _, l := range labels {
		assert.Equal(t, tct.TypeAffine, l.Type, "interval (%d,%d)", l.Lower, l.Upper)
	}

	assert.Equal(t, map[tct.Type]int{tct.TypeAffine: 2}, tct.Summary(labels))
}

// TestClassify_KleinFour: all six prime intervals of the M3 diamond over
// Z2×Z2 are affine.
func TestClassify_KleinFour(t *testing.T) {
	k4, err := algebra.NewKleinFour()
	require.NoError(t, err)
	lat := buildLattice(t, k4)

	labels, err := tct.ClassifyAll(lat)
	require.NoError(t, err)
	require.Len(t, labels, 6)
	for _, l := range labels {
		assert.Equal(t, tct.TypeAffine, l.Type)
	}
}

// TestClassify_Boolean: the two-element boolean algebra has the boolean type
// on its single prime interval.
func TestClassify_Boolean(t *testing.T) {
	b2, err := algebra.NewTwoElementBoolean()
	require.NoError(t, err)
	lat := buildLattice(t, b2)

	typ, err := tct.Classify(lat, lat.Bottom(), lat.Top())
	require.NoError(t, err)
	assert.Equal(t, tct.TypeBoolean, typ)
}

// TestClassify_Lattice: dropping complementation leaves the lattice type.
func TestClassify_Lattice(t *testing.T) {
	l2, err := algebra.NewTwoElementLattice()
	require.NoError(t, err)
	lat := buildLattice(t, l2)

	typ, err := tct.Classify(lat, lat.Bottom(), lat.Top())
	require.NoError(t, err)
	assert.Equal(t, tct.TypeLattice, typ)
}

// TestClassify_Semilattice: a lone meet keeps only the semilattice type.
func TestClassify_Semilattice(t *testing.T) {
	ch, err := algebra.NewChainMeetSemilattice(2)
	require.NoError(t, err)
	lat := buildLattice(t, ch)

	typ, err := tct.Classify(lat, lat.Bottom(), lat.Top())
	require.NoError(t, err)
	assert.Equal(t, tct.TypeSemilattice, typ)
}

// TestClassify_Unary: with no operations at all, nothing beyond unary maps
// can be induced — type 1.
func TestClassify_Unary(t *testing.T) {
	alg, err := algebra.New(2)
	require.NoError(t, err)
	lat := buildLattice(t, alg)

	typ, err := tct.Classify(lat, lat.Bottom(), lat.Top())
	require.NoError(t, err)
	assert.Equal(t, tct.TypeUnary, typ)
}

// TestClassify_Degenerate: one-element algebras have no prime interval; the
// convention is to refuse, never to guess.
func TestClassify_Degenerate(t *testing.T) {
	alg, err := algebra.New(1)
	require.NoError(t, err)
	lat := buildLattice(t, alg)

	_, err = tct.Classify(lat, 0, 0)
	assert.ErrorIs(t, err, tct.ErrDegenerateLattice)
	_, err = tct.ClassifyAll(lat)
	assert.ErrorIs(t, err, tct.ErrDegenerateLattice)
}

// TestClassify_PairValidation: non-covering pairs and foreign indices.
func TestClassify_PairValidation(t *testing.T) {
	z4, err := algebra.NewCyclicGroup(4)
	require.NoError(t, err)
	lat := buildLattice(t, z4)

	// (0,2) is comparable but not a cover on the 3-chain.
	_, err = tct.Classify(lat, 0, 2)
	assert.ErrorIs(t, err, tct.ErrNotCovering)

	// Reversed pair.
	_, err = tct.Classify(lat, 1, 0)
	assert.ErrorIs(t, err, tct.ErrNotCovering)

	// Out-of-range index.
	_, err = tct.Classify(lat, 0, 9)
	assert.ErrorIs(t, err, congruence.ErrIndexOutOfRange)

	// Nil lattice.
	_, err = tct.Classify(nil, 0, 1)
	assert.ErrorIs(t, err, tct.ErrLatticeNil)
}

// TestClassify_Cancellation: a pre-cancelled context aborts clone closure.
func TestClassify_Cancellation(t *testing.T) {
	z4, err := algebra.NewCyclicGroup(4)
	require.NoError(t, err)
	lat := buildLattice(t, z4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = tct.ClassifyAll(lat, tct.WithContext(ctx))
	assert.ErrorIs(t, err, congruence.ErrCancelled)
}

// TestType_String covers the display names.
func TestType_String(t *testing.T) {
	assert.Equal(t, "1 (unary)", tct.TypeUnary.String())
	assert.Equal(t, "2 (affine)", tct.TypeAffine.String())
	assert.Equal(t, "3 (boolean)", tct.TypeBoolean.String())
	assert.Equal(t, "4 (lattice)", tct.TypeLattice.String())
	assert.Equal(t, "5 (semilattice)", tct.TypeSemilattice.String())
	assert.Contains(t, tct.Type(9).String(), "unknown")
}
