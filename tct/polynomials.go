// Package tct: polynomial clone closure. A k-ary polynomial of a finite
// algebra is represented extensionally as a flat value table over all
// cardinality^k argument points; the clone is generated from projections and
// constants by applying basic operations to tuples of already-known members.
package tct

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/congruence"
)

// fnKey renders a value table as a map key.
func fnKey(tab []int) string {
	var sb strings.Builder
	for i, v := range tab {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// clone computes the set of all k-ary polynomial operations of alg, as value
// tables indexed row-major over the k-tuples of {0..n-1}.
//
// Generation: start from the k projections and the n constant functions;
// repeatedly apply every basic operation pointwise to every tuple of current
// members until nothing new appears. The result is the full k-ary slice of
// the polynomial clone (constants make it the polynomial, not term, clone).
//
// The caller's context is polled between closure rounds (ErrCancelled);
// algebra evaluation errors (ErrNotTotal) abort immediately.
func clone(alg *algebra.Algebra, arity int, o options) ([][]int, error) {
	n := alg.Cardinality()
	points := 1
	for i := 0; i < arity; i++ {
		points *= n
	}

	set := make(map[string][]int)
	var members [][]int
	add := func(tab []int) bool {
		key := fnKey(tab)
		if _, ok := set[key]; ok {
			return false
		}
		set[key] = tab
		members = append(members, tab)

		return true
	}

	// 1. Projections: the j-th coordinate of the row-major point index.
	for j := 0; j < arity; j++ {
		tab := make([]int, points)
		// stride of coordinate j in row-major order
		stride := 1
		for i := j + 1; i < arity; i++ {
			stride *= n
		}
		for p := 0; p < points; p++ {
			tab[p] = (p / stride) % n
		}
		add(tab)
	}
	// 2. Constants.
	for c := 0; c < n; c++ {
		tab := make([]int, points)
		for p := range tab {
			tab[p] = c
		}
		add(tab)
	}

	// 3. Fixpoint: apply every basic operation to every tuple of members.
	ops := alg.Operations()
	for grew := true; grew; {
		grew = false
		if cancelled(o.ctx) {
			return nil, fmt.Errorf("%w: %v", congruence.ErrCancelled, o.ctx.Err())
		}
		snapshot := members // compose over this round's membership
		for _, op := range ops {
			k := op.Arity()
			if k == 0 {
				continue // constants are already seeded
			}
			// Odometer over snapshot^k.
			idx := make([]int, k)
			args := make([]int, k)
			for {
				tab := make([]int, points)
				var err error
				for p := 0; p < points; p++ {
					for a := 0; a < k; a++ {
						args[a] = snapshot[idx[a]][p]
					}
					if tab[p], err = op.Apply(args); err != nil {
						return nil, err
					}
				}
				if add(tab) {
					grew = true
				}
				// Advance the tuple odometer.
				i := 0
				for i < k {
					idx[i]++
					if idx[i] < len(snapshot) {
						break
					}
					idx[i] = 0
					i++
				}
				if i == k {
					break
				}
			}
		}
	}

	return members, nil
}

// cancelled reports context cancellation without blocking.
func cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
