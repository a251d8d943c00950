// Package analyze: the Analyze entry point and its helpers. One pass builds
// the leveling, the irreducibles, the join/meet tables, and the identity
// flags; the order dual re-derives the irreducibles as a cross-check.
package analyze

import (
	"sort"
	"time"

	"github.com/katalvlaran/conlat/congruence"
)

// Analyze computes the full structural Report for a built lattice.
// See the package documentation for the method and complexity notes.
func Analyze(lat *congruence.Lattice) (Report, error) {
	if lat == nil {
		return Report{}, ErrLatticeNil
	}
	start := time.Now()

	m := lat.Size()
	covers := lat.CoveringRelation()

	// 1. Cover adjacency in both directions.
	lower := make([][]int, m) // lower[i] = indices covered by i
	upper := make([][]int, m) // upper[i] = indices covering i
	for _, c := range covers {
		lower[c[1]] = append(lower[c[1]], c[0])
		upper[c[0]] = append(upper[c[0]], c[1])
	}

	// 2. Topological leveling: level[i] = longest cover-path length from the
	//    bottom. Kahn order over the covering DAG.
	level := levels(m, lower, upper)
	height := 0
	widthCount := make(map[int]int, m)
	for i := 0; i < m; i++ {
		if level[i] > height {
			height = level[i]
		}
		widthCount[level[i]]++
	}
	width := 0
	for _, c := range widthCount {
		if c > width {
			width = c
		}
	}

	// 3. Irreducibles from cover degrees.
	joinIrr := irreducibles(m, lower, lat.Bottom())
	meetIrr := irreducibles(m, upper, lat.Top())

	// 4. Dual cross-check: rebuild the order dual (every cover reversed) and
	//    recompute both irreducible families there. Join-irreducibles of the
	//    dual must be exactly the meet-irreducibles of the primal, and vice
	//    versa; the dual's bottom is the primal top.
	dualCovers := make([][2]int, len(covers))
	for i, c := range covers {
		dualCovers[i] = [2]int{c[1], c[0]}
	}
	lowerD := make([][]int, m)
	upperD := make([][]int, m)
	for _, c := range dualCovers {
		lowerD[c[1]] = append(lowerD[c[1]], c[0])
		upperD[c[0]] = append(upperD[c[0]], c[1])
	}
	dualJoinIrr := irreducibles(m, lowerD, lat.Top())
	dualMeetIrr := irreducibles(m, upperD, lat.Bottom())
	if !equalInts(meetIrr, dualJoinIrr) || !equalInts(joinIrr, dualMeetIrr) {
		return Report{}, ErrDualMismatch
	}

	// 5. Join/meet tables, then identity flags by exhaustive triple scan.
	joinTab, meetTab, err := tables(lat)
	if err != nil {
		return Report{}, err
	}
	distributive := isDistributive(m, joinTab, meetTab)
	modular := distributive || isModular(lat, joinTab, meetTab)
	boolean := distributive && isComplemented(m, joinTab, meetTab, lat.Bottom(), lat.Top())

	// 6. Verified bounds.
	hasZero, hasOne := true, true
	for i := 0; i < m; i++ {
		zle, lerr := lat.Leq(lat.Bottom(), i)
		if lerr != nil {
			return Report{}, lerr
		}
		ole, lerr := lat.Leq(i, lat.Top())
		if lerr != nil {
			return Report{}, lerr
		}
		hasZero = hasZero && zle
		hasOne = hasOne && ole
	}

	return Report{
		Size:             m,
		Height:           height,
		Width:            width,
		AtomCount:        len(lat.Atoms()),
		CoatomCount:      len(lat.Coatoms()),
		JoinIrreducibles: joinIrr,
		MeetIrreducibles: meetIrr,
		IsDistributive:   distributive,
		IsModular:        modular,
		IsBoolean:        boolean,
		HasZero:          hasZero,
		HasOne:           hasOne,
		AnalysisTime:     time.Since(start),
	}, nil
}

// levels computes the longest-path level of every element in the covering
// DAG, processing elements in Kahn (indegree) order.
func levels(m int, lower, upper [][]int) []int {
	level := make([]int, m)
	indeg := make([]int, m)
	for i := 0; i < m; i++ {
		indeg[i] = len(lower[i])
	}
	queue := make([]int, 0, m)
	for i := 0; i < m; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range upper[v] {
			if level[v]+1 > level[u] {
				level[u] = level[v] + 1
			}
			indeg[u]--
			if indeg[u] == 0 {
				queue = append(queue, u)
			}
		}
	}

	return level
}

// irreducibles returns the indices with exactly one cover on the given side,
// excluding the named bound, ascending.
func irreducibles(m int, side [][]int, exclude int) []int {
	var out []int
	for i := 0; i < m; i++ {
		if i != exclude && len(side[i]) == 1 {
			out = append(out, i)
		}
	}
	sort.Ints(out)

	return out
}

// tables precomputes the full join and meet index tables.
func tables(lat *congruence.Lattice) (joinTab, meetTab [][]int, err error) {
	m := lat.Size()
	joinTab = make([][]int, m)
	meetTab = make([][]int, m)
	for i := 0; i < m; i++ {
		joinTab[i] = make([]int, m)
		meetTab[i] = make([]int, m)
		for j := 0; j < m; j++ {
			if joinTab[i][j], err = lat.JoinIndex(i, j); err != nil {
				return nil, nil, err
			}
			if meetTab[i][j], err = lat.MeetIndex(i, j); err != nil {
				return nil, nil, err
			}
		}
	}

	return joinTab, meetTab, nil
}

// isDistributive brute-forces a∧(b∨c) == (a∧b)∨(a∧c) over all triples.
func isDistributive(m int, joinTab, meetTab [][]int) bool {
	for a := 0; a < m; a++ {
		for b := 0; b < m; b++ {
			for c := 0; c < m; c++ {
				if meetTab[a][joinTab[b][c]] != joinTab[meetTab[a][b]][meetTab[a][c]] {
					return false
				}
			}
		}
	}

	return true
}

// isModular checks a∨(b∧c) == (a∨b)∧c over all triples with a ≤ c.
func isModular(lat *congruence.Lattice, joinTab, meetTab [][]int) bool {
	m := lat.Size()
	for a := 0; a < m; a++ {
		for c := 0; c < m; c++ {
			leq, err := lat.Leq(a, c)
			if err != nil || !leq {
				continue
			}
			for b := 0; b < m; b++ {
				if joinTab[a][meetTab[b][c]] != meetTab[joinTab[a][b]][c] {
					return false
				}
			}
		}
	}

	return true
}

// isComplemented reports whether every element has a complement:
// x∨y == top and x∧y == bottom for some y.
func isComplemented(m int, joinTab, meetTab [][]int, bottom, top int) bool {
	for x := 0; x < m; x++ {
		found := false
		for y := 0; y < m; y++ {
			if joinTab[x][y] == top && meetTab[x][y] == bottom {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// equalInts compares two ascending index slices.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
