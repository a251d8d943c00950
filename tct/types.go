// Package tct: the Type enum, result types, sentinel errors, and options.
package tct

import (
	"context"
	"errors"
	"fmt"
)

// Type is a tame-congruence-theory type of a prime interval.
type Type int

// The five TCT types, numbered as in Hobby–McKenzie.
const (
	TypeUnary       Type = 1 // G-set: no structure beyond unary maps
	TypeAffine      Type = 2 // vector space: Maltsev, no semilattice operation
	TypeBoolean     Type = 3 // two-element boolean algebra
	TypeLattice     Type = 4 // two-element lattice
	TypeSemilattice Type = 5 // two-element semilattice
)

// String renders the conventional name, e.g. "2 (affine)".
func (t Type) String() string {
	switch t {
	case TypeUnary:
		return "1 (unary)"
	case TypeAffine:
		return "2 (affine)"
	case TypeBoolean:
		return "3 (boolean)"
	case TypeLattice:
		return "4 (lattice)"
	case TypeSemilattice:
		return "5 (semilattice)"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Labeled is one classified covering pair: lattice indices plus its type.
type Labeled struct {
	Lower int  // index of α
	Upper int  // index of β
	Type  Type // TCT type of the prime interval (α,β)
}

var (
	// ErrLatticeNil is returned when a nil lattice is supplied.
	ErrLatticeNil = errors.New("tct: lattice is nil")

	// ErrDegenerateLattice is returned when there is no prime interval to
	// classify: a one-element algebra, or a lattice with bottom == top.
	// The convention is to refuse, never to guess a type.
	ErrDegenerateLattice = errors.New("tct: degenerate lattice has no prime interval")

	// ErrNotCovering is returned when (lower, upper) is not a covering pair
	// of the lattice.
	ErrNotCovering = errors.New("tct: pair is not a covering pair")

	// ErrMinimalSet signals that no (β,α)-minimal set was found. The identity
	// polynomial always witnesses one for a genuine covering pair, so this
	// indicates a bug, not a caller mistake.
	ErrMinimalSet = errors.New("tct: no minimal set found")
)

// Option configures classification via functional arguments.
type Option func(*options)

// options currently carries only the cancellation context.
type options struct {
	ctx context.Context // polled between clone-closure rounds and covering pairs
}

// defaultOptions returns the zero-config behavior (background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets the cancellation context; cancellation is cooperative,
// polled between closure rounds. Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Summary returns the type distribution over a set of labeled pairs —
// the typeset of the algebra with multiplicities.
func Summary(labels []Labeled) map[Type]int {
	dist := make(map[Type]int, 5)
	for _, l := range labels {
		dist[l.Type]++
	}

	return dist
}
