// Package algebra: sentinel error set. All constructors and Apply paths
// return these sentinels; tests match them via errors.Is.
package algebra

import "errors"

var (
	// ErrBadCardinality is returned when an algebra over fewer than one
	// element is requested.
	ErrBadCardinality = errors.New("algebra: cardinality must be >= 1")

	// ErrBadArity is returned when an operation declares a negative arity.
	// Arity 0 (constants) is legal.
	ErrBadArity = errors.New("algebra: arity must be >= 0")

	// ErrBadTable is returned when an operation table has the wrong length
	// (must be cardinality^arity) or holds an entry outside [0,n) ∪ {-1}.
	ErrBadTable = errors.New("algebra: malformed operation table")

	// ErrArityMismatch is returned by Apply when len(args) != Arity.
	ErrArityMismatch = errors.New("algebra: argument count does not match arity")

	// ErrInvalidElement is returned when an element index lies outside the
	// universe [0, cardinality).
	ErrInvalidElement = errors.New("algebra: element outside universe")

	// ErrNotTotal is returned when evaluation reaches an undefined input of a
	// partial operation. Policy: fail fast, never skip.
	ErrNotTotal = errors.New("algebra: operation undefined on input")

	// ErrUniverseMismatch is returned by New when an operation was built for a
	// different cardinality than the algebra it is attached to.
	ErrUniverseMismatch = errors.New("algebra: operation universe differs from algebra cardinality")

	// ErrNotLattice is returned by NewLatticeFromCovers when the supplied
	// covering relation does not describe a bounded lattice (some pair lacks
	// a unique meet or join).
	ErrNotLattice = errors.New("algebra: cover relation is not a lattice order")
)
