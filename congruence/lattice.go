// Package congruence: the Lattice type and its construction. Build enumerates
// ALL congruences of a finite algebra by closing the principal congruences
// under pairwise join and meet, then freezes a canonical, fully indexed value.
package congruence

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/partition"
)

// Lattice is the congruence lattice of one finite algebra: every congruence,
// partially ordered by refinement, with the covering relation precomputed.
//
// A Lattice is immutable after Build and safe for concurrent reads. All
// caches (principal congruences keyed by canonicalized pairs) are owned by
// the value and die with it; there is no process-wide state.
//
// Canonical ordering: congruences are sorted by descending block count, then
// lexicographically by block signature. The bottom (identity partition) is
// therefore always index 0 and the top (universal partition) always index
// Size()-1, and indices are reproducible across runs.
type Lattice struct {
	alg       *algebra.Algebra
	cons      []partition.Partition // canonical order
	index     map[string]int        // partition signature -> lattice index
	leq       [][]bool              // refinement order over indices
	covers    [][2]int              // covering relation (lower, upper), lex order
	bottom    int                   // index of the identity partition (== 0)
	top       int                   // index of the universal partition (== Size()-1)
	principal map[[2]int]int        // (min(a,b),max(a,b)) -> lattice index of Cg(a,b)
}

// Build constructs the full congruence lattice of alg.
//
// Construction: seed the set with the bottom partition, the top partition,
// and Cg(i,j) for every pair i<j (deduplicated, cached); then repeatedly
// compute pairwise joins and meets across the current set — any result not
// already present re-enters the closure worklist. Terminates because the
// congruence lattice of a finite algebra is finite.
//
// Options: WithContext for cooperative cancellation (polled between worklist
// items → ErrCancelled), WithOnProgress for a synchronous heuristic progress
// hook (phase 1, principal congruences, reports 0..0.5 exactly; phase 2,
// join/meet closure, estimates 0.5..1 since the final size is unknown).
//
// Errors: ErrAlgebraNil, ErrCancelled, algebra.ErrNotTotal (a partial
// operation was reached — all-or-nothing, no lattice is returned).
func Build(alg *algebra.Algebra, opts ...Option) (*Lattice, error) {
	// 1. Validate and resolve options.
	if alg == nil {
		return nil, ErrAlgebraNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := alg.Cardinality()

	// 2. Seed: bottom, top, and every principal congruence.
	bottom, err := partition.Identity(n)
	if err != nil {
		return nil, err
	}
	top, err := partition.Universal(n)
	if err != nil {
		return nil, err
	}
	seen := map[string]partition.Partition{}
	var queue []partition.Partition
	add := func(p partition.Partition) bool {
		key := p.String()
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = p
		queue = append(queue, p)

		return true
	}
	add(bottom)
	add(top)

	principalPart := make(map[[2]int]partition.Partition, n*(n-1)/2)
	pairTotal := n * (n - 1) / 2
	pairDone := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cancelled(o.ctx) {
				return nil, fmt.Errorf("%w: %v", ErrCancelled, o.ctx.Err())
			}
			cg, perr := Principal(alg, i, j, WithContext(o.ctx))
			if perr != nil {
				return nil, perr
			}
			principalPart[[2]int{i, j}] = cg
			add(cg)
			pairDone++
			o.onProgress(0.5*float64(pairDone)/float64(pairTotal), "principal congruences")
		}
	}

	// 3. Close under pairwise join and meet. Every element pairs with every
	//    element present at its pop time; later arrivals pair back when they
	//    pop themselves, so the closure is complete.
	var all []partition.Partition
	for len(queue) > 0 {
		if cancelled(o.ctx) {
			return nil, fmt.Errorf("%w: %v", ErrCancelled, o.ctx.Err())
		}
		p := queue[0]
		queue = queue[1:]
		all = append(all, p)

		for _, q := range all {
			j, jerr := p.Join(q)
			if jerr != nil {
				return nil, jerr
			}
			add(j)
			m, merr := p.Meet(q)
			if merr != nil {
				return nil, merr
			}
			add(m)
		}
		// Heuristic: fraction of discovered elements already processed.
		frac := float64(len(all)) / float64(len(all)+len(queue))
		o.onProgress(0.5+0.5*frac, "join/meet closure")
	}

	// 4. Canonical order: finer first (more blocks), ties by block signature.
	sort.Slice(all, func(i, j int) bool {
		bi, bj := all[i].NumBlocks(), all[j].NumBlocks()
		if bi != bj {
			return bi > bj
		}

		return all[i].String() < all[j].String()
	})

	lat := &Lattice{
		alg:       alg,
		cons:      all,
		index:     make(map[string]int, len(all)),
		principal: make(map[[2]int]int, len(principalPart)),
	}
	for i, p := range all {
		lat.index[p.String()] = i
	}
	lat.bottom = lat.index[bottom.String()]
	lat.top = lat.index[top.String()]
	for key, p := range principalPart {
		lat.principal[key] = lat.index[p.String()]
	}

	// 5. Freeze the order and its covering relation.
	if err = lat.freezeOrder(); err != nil {
		return nil, err
	}
	o.onProgress(1.0, "done")

	return lat, nil
}

// freezeOrder materializes the refinement order matrix and the covering
// relation (pairs with nothing strictly between).
func (l *Lattice) freezeOrder() error {
	m := len(l.cons)
	l.leq = make([][]bool, m)
	for i := 0; i < m; i++ {
		l.leq[i] = make([]bool, m)
		for j := 0; j < m; j++ {
			finer, err := l.cons[i].IsFinerThan(l.cons[j])
			if err != nil {
				return err
			}
			l.leq[i][j] = finer
		}
	}
	// Covers in lexicographic (lower, upper) order for determinism.
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j || !l.leq[i][j] {
				continue
			}
			between := false
			for k := 0; k < m; k++ {
				if k != i && k != j && l.leq[i][k] && l.leq[k][j] {
					between = true
					break
				}
			}
			if !between {
				l.covers = append(l.covers, [2]int{i, j})
			}
		}
	}

	return nil
}
