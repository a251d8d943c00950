// Package congruence: sentinel errors, functional options, and the progress
// hook type. Algorithms return ONLY these sentinels (plus algebra/partition
// sentinels surfaced as-is); tests match via errors.Is.
package congruence

import (
	"context"
	"errors"
)

var (
	// ErrAlgebraNil is returned when a nil *algebra.Algebra is supplied.
	ErrAlgebraNil = errors.New("congruence: algebra is nil")

	// ErrLatticeNil is returned when a nil *Lattice receiver or argument is used.
	ErrLatticeNil = errors.New("congruence: lattice is nil")

	// ErrIndexOutOfRange is returned when a lattice element index is outside
	// [0, Size()).
	ErrIndexOutOfRange = errors.New("congruence: lattice index out of range")

	// ErrCancelled is returned when the caller's context is cancelled between
	// worklist iterations. Construction is all-or-nothing: nothing partially
	// built is ever returned alongside this error.
	ErrCancelled = errors.New("congruence: computation cancelled")

	// ErrUnknownFormat is returned by Export for a format other than
	// "json" or "csv".
	ErrUnknownFormat = errors.New("congruence: unknown export format")

	// ErrInconsistent signals an internal invariant violation (a join or meet
	// of two congruences escaped the closed set). It indicates a bug, not a
	// caller mistake.
	ErrInconsistent = errors.New("congruence: lattice closure inconsistency")
)

// ProgressFunc receives heuristic construction progress: fraction is a
// monotone estimate in [0,1] (the total lattice size is unknown in advance),
// message names the current phase. It is invoked synchronously on the calling
// goroutine and must not block.
type ProgressFunc func(fraction float64, message string)

// Option configures Principal and Build via functional arguments.
type Option func(*options)

// options holds construction settings: cancellation and progress reporting.
type options struct {
	ctx        context.Context // cooperative cancellation, polled between worklist items
	onProgress ProgressFunc    // synchronous progress hook
}

// defaultOptions returns the zero-config behavior: background context, no-op
// progress hook.
func defaultOptions() options {
	return options{
		ctx:        context.Background(),
		onProgress: func(float64, string) {},
	}
}

// WithContext sets the cancellation context. Cancellation is cooperative
// only: the context is polled between worklist iterations, never preemptively.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnProgress registers a synchronous progress hook. Passing nil has no
// effect.
func WithOnProgress(fn ProgressFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.onProgress = fn
		}
	}
}

// cancelled reports ctx cancellation without blocking.
func cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
