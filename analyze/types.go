// Package analyze: sentinel errors and the Report type.
package analyze

import (
	"errors"
	"time"
)

var (
	// ErrLatticeNil is returned when a nil lattice is supplied.
	ErrLatticeNil = errors.New("analyze: lattice is nil")

	// ErrDualMismatch is returned when the order-dual cross-check disagrees
	// with the primal irreducible computation. It indicates a broken covering
	// relation, not a caller mistake.
	ErrDualMismatch = errors.New("analyze: dual lattice cross-check failed")
)

// Report holds every structural invariant Analyze derives from a lattice.
type Report struct {
	// Size is the number of congruences.
	Size int

	// Height is the length (edge count) of the longest chain from bottom to
	// top; 0 for the one-element lattice.
	Height int

	// Width is the size of the largest layer in the topological leveling of
	// the covering DAG — a lower bound witness for the largest antichain.
	Width int

	// AtomCount and CoatomCount count covers of bottom / covered by top.
	AtomCount   int
	CoatomCount int

	// JoinIrreducibles lists indices with exactly one lower cover (bottom
	// excluded); MeetIrreducibles dually (top excluded). Ascending order.
	JoinIrreducibles []int
	MeetIrreducibles []int

	// Identity classification. IsBoolean ⇒ IsDistributive ⇒ IsModular.
	IsDistributive bool
	IsModular      bool
	IsBoolean      bool

	// HasZero and HasOne are verified bounds — true for every congruence
	// lattice of a finite algebra, checked rather than assumed.
	HasZero bool
	HasOne  bool

	// AnalysisTime is the wall-clock duration of the analysis.
	AnalysisTime time.Duration
}
