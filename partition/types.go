// Package partition: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations return
// these sentinels and tests check them via errors.Is; no operation panics on a
// user-triggered condition.
package partition

import "errors"

var (
	// ErrInvalidSize is returned when a partition over fewer than one element
	// is requested. The universe {0..n-1} must be nonempty.
	ErrInvalidSize = errors.New("partition: universe size must be >= 1")

	// ErrInvalidPartition is returned by FromBlocks when the supplied blocks
	// are not a valid partition of {0..n-1}: an element repeated across blocks,
	// an element missing, an empty block, or an element outside the universe.
	ErrInvalidPartition = errors.New("partition: blocks do not partition the universe")

	// ErrIndexOutOfRange is returned when an element index lies outside [0,n).
	ErrIndexOutOfRange = errors.New("partition: element index out of range")

	// ErrDimensionMismatch is returned when two partitions over different
	// universe sizes are combined (Join, Meet, IsFinerThan, Equal is exempt).
	ErrDimensionMismatch = errors.New("partition: universe size mismatch")
)
