// Package congruence: principal-congruence closure. Computes Cg(a,b), the
// smallest congruence of an algebra relating a and b, by a worklist fixpoint
// over the one-coordinate substitution lemma.
package congruence

import (
	"fmt"

	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/partition"
)

// Principal computes the principal congruence Cg(a,b) of alg: the smallest
// partition relating a and b that is compatible with every operation.
//
// Algorithm: start from the partition merging only {a,b} and keep a worklist
// of newly merged pairs. For each popped pair (x,y), each operation f of
// arity k, each argument position, and each tuple of constants for the other
// positions, evaluate f with x and with y substituted; if the two results are
// not yet related, merge them and push the new pair. The one-coordinate
// substitution lemma (Mal'cev) guarantees this generates the full closure
// without enumerating cardinalityᵏ tuple pairs per step. Terminates because
// every merge strictly reduces the block count.
//
// Errors:
//   - ErrAlgebraNil              if alg is nil.
//   - algebra.ErrInvalidElement  if a or b is outside [0, cardinality).
//   - algebra.ErrNotTotal        if closure reaches an undefined operation
//     input (fail fast, never skip).
//   - ErrCancelled               if the WithContext context is cancelled
//     between worklist iterations.
//
// Complexity: O(n · |ops| · k · n^(k-1) · α(n)) in the worst case, where k is
// the maximal arity; at most n-1 merges can ever happen.
func Principal(alg *algebra.Algebra, a, b int, opts ...Option) (partition.Partition, error) {
	// 1. Validate inputs.
	if alg == nil {
		return partition.Partition{}, ErrAlgebraNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := alg.Cardinality()
	if a < 0 || a >= n || b < 0 || b >= n {
		return partition.Partition{}, algebra.ErrInvalidElement
	}

	// 2. Cg(a,a) is the identity partition — nothing to close over.
	bld, err := partition.NewBuilder(n)
	if err != nil {
		return partition.Partition{}, err
	}
	if a == b {
		return bld.Partition(), nil
	}

	// 3. Worklist fixpoint.
	eng := &closureEngine{
		alg:  alg,
		ops:  alg.Operations(),
		n:    n,
		bld:  bld,
		opts: o,
	}
	if err = eng.run(a, b); err != nil {
		return partition.Partition{}, err
	}

	return bld.Partition(), nil
}

// closureEngine bundles the mutable state of one principal-congruence
// computation: the union-find accumulator and the worklist of merged pairs.
type closureEngine struct {
	alg  *algebra.Algebra
	ops  []algebra.Operation
	n    int
	bld  *partition.Builder
	work [][2]int // newly merged pairs awaiting substitution
	opts options
}

// run seeds the worklist with (a,b) and drives the fixpoint to completion.
func (e *closureEngine) run(a, b int) error {
	e.bld.Union(a, b)
	e.work = append(e.work, [2]int{a, b})

	for len(e.work) > 0 {
		// Cooperative cancellation between worklist iterations.
		if cancelled(e.opts.ctx) {
			return fmt.Errorf("%w: %v", ErrCancelled, e.opts.ctx.Err())
		}
		// Pop from the back: processing order does not affect the fixpoint.
		last := len(e.work) - 1
		x, y := e.work[last][0], e.work[last][1]
		e.work = e.work[:last]

		for _, op := range e.ops {
			if err := e.substitute(op, x, y); err != nil {
				return err
			}
		}
		// Heuristic progress: merges done out of the n-1 possible.
		merged := e.n - e.bld.NumBlocks()
		e.opts.onProgress(float64(merged)/float64(e.n-1), "principal closure")
	}

	return nil
}

// substitute applies the one-coordinate substitution lemma for a single
// operation and one merged pair (x,y): for every argument position and every
// constant tuple in the remaining positions, relate f(..x..) with f(..y..).
func (e *closureEngine) substitute(op algebra.Operation, x, y int) error {
	k := op.Arity()
	if k == 0 {
		// Constants cannot distinguish related elements.
		return nil
	}
	args := make([]int, k)
	rest := make([]int, k-1) // odometer over the non-substituted positions

	for pos := 0; pos < k; pos++ {
		// Reset the odometer for this position.
		for i := range rest {
			rest[i] = 0
		}
		for {
			// 1. Lay out the constant tuple around position pos.
			ri := 0
			for i := 0; i < k; i++ {
				if i == pos {
					continue
				}
				args[i] = rest[ri]
				ri++
			}
			// 2. Evaluate with x, then with y, in the substituted slot.
			args[pos] = x
			rx, err := op.Apply(args)
			if err != nil {
				return err // ErrNotTotal and friends: fail fast
			}
			args[pos] = y
			ry, err := op.Apply(args)
			if err != nil {
				return err
			}
			// 3. A genuinely new relation re-enters the worklist.
			if rx != ry && e.bld.Union(rx, ry) {
				e.work = append(e.work, [2]int{rx, ry})
			}
			// 4. Advance the odometer; carry out means this position is done.
			i := 0
			for i < len(rest) {
				rest[i]++
				if rest[i] < e.n {
					break
				}
				rest[i] = 0
				i++
			}
			if i == len(rest) {
				break
			}
		}
	}

	return nil
}
