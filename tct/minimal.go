// Package tct: (β,α)-minimal sets and traces. A minimal set is an
// inclusion-minimal image of a unary polynomial that does not collapse β
// into α; a trace is its intersection with one nontrivial β-class. The
// induced quotient of a trace by α is where the five prototypes live.
package tct

import (
	"sort"

	"github.com/katalvlaran/conlat/partition"
)

// localization holds the local structure of one prime interval: the chosen
// minimal set, its trace, and the trace's α-quotient.
type localization struct {
	set     []int       // the (β,α)-minimal set U, ascending
	trace   []int       // trace N ⊆ U: one β-class within U, ascending
	inTrace map[int]bool
	classOf map[int]int // element of N -> quotient class index
	classes int         // number of α-classes in the trace (≥ 2)
}

// localize picks the canonical (β,α)-minimal set and trace for the covering
// pair α < β, given the unary polynomial clone.
func localize(alpha, beta partition.Partition, unary [][]int) (*localization, error) {
	// 1. Candidate images: f(A) for unary polynomials f with f(β) ⊄ α.
	var images [][]int
	seen := map[string]bool{}
	for _, f := range unary {
		if !movesBeyond(alpha, beta, f) {
			continue
		}
		img := imageOf(f)
		key := fnKey(img)
		if !seen[key] {
			seen[key] = true
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		// The identity polynomial witnesses a candidate for any α < β.
		return nil, ErrMinimalSet
	}

	// 2. Keep inclusion-minimal images; choose deterministically: smallest
	//    cardinality first, ties by lexicographic order.
	var minimal [][]int
	for _, img := range images {
		properSub := false
		for _, other := range images {
			if len(other) < len(img) && isSubset(other, img) {
				properSub = true
				break
			}
		}
		if !properSub {
			minimal = append(minimal, img)
		}
	}
	sort.Slice(minimal, func(i, j int) bool {
		if len(minimal[i]) != len(minimal[j]) {
			return len(minimal[i]) < len(minimal[j])
		}

		return lessInts(minimal[i], minimal[j])
	})
	u := minimal[0]

	// 3. Trace: the β-class (within U) of the first β-related, α-unrelated
	//    pair. Such a pair exists in U because unary polynomials preserve β.
	anchor := -1
	for i := 0; i < len(u) && anchor < 0; i++ {
		for j := i + 1; j < len(u); j++ {
			inBeta, err := beta.SameBlock(u[i], u[j])
			if err != nil {
				return nil, err
			}
			inAlpha, err := alpha.SameBlock(u[i], u[j])
			if err != nil {
				return nil, err
			}
			if inBeta && !inAlpha {
				anchor = u[i]
				break
			}
		}
	}
	if anchor < 0 {
		return nil, ErrMinimalSet
	}
	loc := &localization{set: u, inTrace: map[int]bool{}, classOf: map[int]int{}}
	for _, w := range u {
		same, err := beta.SameBlock(w, anchor)
		if err != nil {
			return nil, err
		}
		if same {
			loc.trace = append(loc.trace, w)
			loc.inTrace[w] = true
		}
	}

	// 4. Quotient the trace by α; class indices follow ascending minima.
	for _, w := range loc.trace {
		assigned := false
		for _, prev := range loc.trace {
			if prev == w {
				break
			}
			same, err := alpha.SameBlock(prev, w)
			if err != nil {
				return nil, err
			}
			if same {
				loc.classOf[w] = loc.classOf[prev]
				assigned = true
				break
			}
		}
		if !assigned {
			loc.classOf[w] = loc.classes
			loc.classes++
		}
	}

	return loc, nil
}

// movesBeyond reports whether the unary table f maps some β-pair outside α.
func movesBeyond(alpha, beta partition.Partition, f []int) bool {
	n := len(f)
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			inBeta, err := beta.SameBlock(x, y)
			if err != nil || !inBeta {
				continue
			}
			inAlpha, err := alpha.SameBlock(f[x], f[y])
			if err == nil && !inAlpha {
				return true
			}
		}
	}

	return false
}

// imageOf returns the sorted distinct values of a unary table.
func imageOf(f []int) []int {
	present := map[int]bool{}
	for _, v := range f {
		present[v] = true
	}
	img := make([]int, 0, len(present))
	for v := range present {
		img = append(img, v)
	}
	sort.Ints(img)

	return img
}

// isSubset reports a ⊆ b for ascending slices.
func isSubset(a, b []int) bool {
	i := 0
	for _, v := range a {
		for i < len(b) && b[i] < v {
			i++
		}
		if i == len(b) || b[i] != v {
			return false
		}
	}

	return true
}

// lessInts is lexicographic order on ascending slices.
func lessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
