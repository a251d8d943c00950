package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/analyze"
	"github.com/katalvlaran/conlat/congruence"
)

// buildAndAnalyze is the common fixture path: algebra -> lattice -> report.
func buildAndAnalyze(t *testing.T, alg *algebra.Algebra) (*congruence.Lattice, analyze.Report) {
	t.Helper()
	lat, err := congruence.Build(alg)
	require.NoError(t, err)
	rep, err := analyze.Analyze(lat)
	require.NoError(t, err)

	return lat, rep
}

// TestAnalyze_Z4Chain: Con(Z4) is a 3-chain — the simplest nontrivial shape.
func TestAnalyze_Z4Chain(t *testing.T) {
	z4, err := algebra.NewCyclicGroup(4)
	require.NoError(t, err)
	_, rep := buildAndAnalyze(t, z4)

	assert.Equal(t, 3, rep.Size)
	assert.Equal(t, 2, rep.Height)
	assert.Equal(t, 1, rep.Width)
	assert.Equal(t, 1, rep.AtomCount)
	assert.Equal(t, 1, rep.CoatomCount)
	assert.Equal(t, []int{1, 2}, rep.JoinIrreducibles)
	assert.Equal(t, []int{0, 1}, rep.MeetIrreducibles)

	// A chain is distributive and modular but not complemented.
	assert.True(t, rep.IsDistributive)
	assert.True(t, rep.IsModular)
	assert.False(t, rep.IsBoolean)

	assert.True(t, rep.HasZero)
	assert.True(t, rep.HasOne)
	assert.GreaterOrEqual(t, rep.AnalysisTime.Nanoseconds(), int64(0))
}

// TestAnalyze_M3Diamond: Con(Z2×Z2) is the diamond M3 — the canonical
// modular-but-not-distributive lattice.
func TestAnalyze_M3Diamond(t *testing.T) {
	k4, err := algebra.NewKleinFour()
	require.NoError(t, err)
	lat, rep := buildAndAnalyze(t, k4)

	assert.Equal(t, 5, rep.Size)
	assert.Equal(t, 2, rep.Height)
	assert.Equal(t, 3, rep.Width)
	assert.Equal(t, 3, rep.AtomCount)
	assert.Equal(t, 3, rep.CoatomCount)
	assert.Equal(t, []int{1, 2, 3}, rep.JoinIrreducibles)
	assert.Equal(t, []int{1, 2, 3}, rep.MeetIrreducibles)

	assert.True(t, rep.IsModular)
	assert.False(t, rep.IsDistributive)
	assert.False(t, rep.IsBoolean)

	// The scenario's join/meet facts on the diamond's atoms.
	ji, err := lat.JoinIndex(1, 2)
	require.NoError(t, err)
	assert.Equal(t, lat.Top(), ji)
	mi, err := lat.MeetIndex(1, 2)
	require.NoError(t, err)
	assert.Equal(t, lat.Bottom(), mi)
}

// TestAnalyze_Z6Boolean: Con(Z6) is the divisor lattice of 6, a 2×2 boolean
// square — the smallest boolean congruence lattice with proper elements.
func TestAnalyze_Z6Boolean(t *testing.T) {
	z6, err := algebra.NewCyclicGroup(6)
	require.NoError(t, err)
	_, rep := buildAndAnalyze(t, z6)

	assert.Equal(t, 4, rep.Size)
	assert.Equal(t, 2, rep.Height)
	assert.Equal(t, 2, rep.Width)
	assert.True(t, rep.IsBoolean)
	assert.True(t, rep.IsDistributive)
	assert.True(t, rep.IsModular)
}

// TestAnalyze_PartitionLatticeNonModular: the full partition lattice over a
// 4-element universe (no operations) is not modular.
func TestAnalyze_PartitionLatticeNonModular(t *testing.T) {
	alg, err := algebra.New(4)
	require.NoError(t, err)
	_, rep := buildAndAnalyze(t, alg)

	assert.Equal(t, 15, rep.Size) // Bell(4)
	assert.False(t, rep.IsModular)
	assert.False(t, rep.IsDistributive)
	assert.False(t, rep.IsBoolean)
}

// TestAnalyze_ImplicationChain: IsBoolean ⇒ IsDistributive ⇒ IsModular across
// the whole fixture family, never the converse assumed.
func TestAnalyze_ImplicationChain(t *testing.T) {
	fixtures := map[string]func() (*algebra.Algebra, error){
		"Z4":        func() (*algebra.Algebra, error) { return algebra.NewCyclicGroup(4) },
		"Z6":        func() (*algebra.Algebra, error) { return algebra.NewCyclicGroup(6) },
		"Klein":     algebra.NewKleinFour,
		"chain3":    func() (*algebra.Algebra, error) { return algebra.NewChainMeetSemilattice(3) },
		"noops3":    func() (*algebra.Algebra, error) { return algebra.New(3) },
		"noops4":    func() (*algebra.Algebra, error) { return algebra.New(4) },
		"2-boolean": algebra.NewTwoElementBoolean,
	}
	for name, mk := range fixtures {
		t.Run(name, func(t *testing.T) {
			alg, err := mk()
			require.NoError(t, err)
			_, rep := buildAndAnalyze(t, alg)

			if rep.IsBoolean {
				assert.True(t, rep.IsDistributive, "boolean must imply distributive")
			}
			if rep.IsDistributive {
				assert.True(t, rep.IsModular, "distributive must imply modular")
			}
			// Bounds are verified invariants, never false for Con(A).
			assert.True(t, rep.HasZero)
			assert.True(t, rep.HasOne)
			// Irreducibles can never outnumber the lattice.
			assert.LessOrEqual(t, len(rep.JoinIrreducibles), rep.Size)
			assert.LessOrEqual(t, len(rep.MeetIrreducibles), rep.Size)
		})
	}
}

// TestAnalyze_TrivialLattice: the one-element lattice is degenerate but legal
// for analysis — every identity holds vacuously.
func TestAnalyze_TrivialLattice(t *testing.T) {
	alg, err := algebra.New(1)
	require.NoError(t, err)
	_, rep := buildAndAnalyze(t, alg)

	assert.Equal(t, 1, rep.Size)
	assert.Equal(t, 0, rep.Height)
	assert.Equal(t, 1, rep.Width)
	assert.Empty(t, rep.JoinIrreducibles)
	assert.Empty(t, rep.MeetIrreducibles)
	assert.True(t, rep.IsDistributive)
	assert.True(t, rep.IsModular)
	assert.True(t, rep.IsBoolean)
}

// TestAnalyze_NilLattice surfaces ErrLatticeNil.
func TestAnalyze_NilLattice(t *testing.T) {
	_, err := analyze.Analyze(nil)
	assert.ErrorIs(t, err, analyze.ErrLatticeNil)
}
