// Package algebra: canonical fixture builders. Deterministic generators for
// the standard algebras the rest of the module tests and demonstrates with,
// in the spirit of classic textbook examples: cyclic groups, lattices given
// by their covering relation, semilattice chains.
package algebra

// NewCyclicGroup returns the cyclic group Z_n: universe {0..n-1} with the
// single binary operation "+" computing addition mod n.
// Errors: ErrBadCardinality if n < 1.
func NewCyclicGroup(n int) (*Algebra, error) {
	if n < 1 {
		return nil, ErrBadCardinality
	}
	table := make([]int, n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			table[a*n+b] = (a + b) % n
		}
	}
	plus, err := NewTableOperation("+", 2, n, table)
	if err != nil {
		return nil, err
	}

	return New(n, plus)
}

// NewKleinFour returns the Klein four-group Z2 × Z2 on {0,1,2,3} encoded as
// bit pairs, with "+" being componentwise addition mod 2 (XOR). Its congruence
// lattice is the diamond M3: bottom, three atoms, top.
func NewKleinFour() (*Algebra, error) {
	const n = 4
	table := make([]int, n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			table[a*n+b] = a ^ b
		}
	}
	plus, err := NewTableOperation("+", 2, n, table)
	if err != nil {
		return nil, err
	}

	return New(n, plus)
}

// NewChainMeetSemilattice returns the n-element chain 0 < 1 < … < n-1 as a
// meet-semilattice: one binary operation "min".
// Errors: ErrBadCardinality if n < 1.
func NewChainMeetSemilattice(n int) (*Algebra, error) {
	if n < 1 {
		return nil, ErrBadCardinality
	}
	table := make([]int, n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			m := a
			if b < a {
				m = b
			}
			table[a*n+b] = m
		}
	}
	min, err := NewTableOperation("min", 2, n, table)
	if err != nil {
		return nil, err
	}

	return New(n, min)
}

// NewTwoElementBoolean returns the two-element boolean algebra on {0,1} with
// operations "and", "or", "not".
func NewTwoElementBoolean() (*Algebra, error) {
	and, err := NewTableOperation("and", 2, 2, []int{0, 0, 0, 1})
	if err != nil {
		return nil, err
	}
	or, err := NewTableOperation("or", 2, 2, []int{0, 1, 1, 1})
	if err != nil {
		return nil, err
	}
	not, err := NewTableOperation("not", 1, 2, []int{1, 0})
	if err != nil {
		return nil, err
	}

	return New(2, and, or, not)
}

// NewTwoElementLattice returns the two-element lattice on {0,1} with
// operations "meet" and "join" only (no complement).
func NewTwoElementLattice() (*Algebra, error) {
	meet, err := NewTableOperation("meet", 2, 2, []int{0, 0, 0, 1})
	if err != nil {
		return nil, err
	}
	join, err := NewTableOperation("join", 2, 2, []int{0, 1, 1, 1})
	if err != nil {
		return nil, err
	}

	return New(2, meet, join)
}

// NewLatticeFromCovers builds the lattice algebra on {0..n-1} whose order is
// the reflexive-transitive closure of the given covering pairs (lower, upper).
// The resulting algebra carries two binary operations, "meet" and "join",
// computed from the order. Returns ErrNotLattice if the closure is not a
// partial order or some pair lacks a unique greatest lower / least upper bound.
//
// Complexity: O(n³) for the closure plus O(n³) for the bound tables.
func NewLatticeFromCovers(n int, covers [][2]int) (*Algebra, error) {
	if n < 1 {
		return nil, ErrBadCardinality
	}
	// 1. Seed the order with reflexivity and the covers.
	leq := make([][]bool, n)
	for i := range leq {
		leq[i] = make([]bool, n)
		leq[i][i] = true
	}
	for _, c := range covers {
		lo, hi := c[0], c[1]
		if lo < 0 || lo >= n || hi < 0 || hi >= n {
			return nil, ErrInvalidElement
		}
		leq[lo][hi] = true
	}
	// 2. Transitive closure (Warshall).
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !leq[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if leq[k][j] {
					leq[i][j] = true
				}
			}
		}
	}
	// 3. Antisymmetry: a cycle in the covers collapses distinct elements.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && leq[i][j] && leq[j][i] {
				return nil, ErrNotLattice
			}
		}
	}
	// 4. Meet and join tables from the order.
	meetTab := make([]int, n*n)
	joinTab := make([]int, n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			m, ok := boundOf(leq, a, b, true)
			if !ok {
				return nil, ErrNotLattice
			}
			j, ok := boundOf(leq, a, b, false)
			if !ok {
				return nil, ErrNotLattice
			}
			meetTab[a*n+b] = m
			joinTab[a*n+b] = j
		}
	}
	meet, err := NewTableOperation("meet", 2, n, meetTab)
	if err != nil {
		return nil, err
	}
	join, err := NewTableOperation("join", 2, n, joinTab)
	if err != nil {
		return nil, err
	}

	return New(n, meet, join)
}

// boundOf returns the greatest lower bound (lower=true) or least upper bound
// (lower=false) of a and b under leq, and whether it exists uniquely.
func boundOf(leq [][]bool, a, b int, lower bool) (int, bool) {
	n := len(leq)
	// Collect all common bounds.
	bounds := make([]int, 0, n)
	for x := 0; x < n; x++ {
		if lower && leq[x][a] && leq[x][b] {
			bounds = append(bounds, x)
		}
		if !lower && leq[a][x] && leq[b][x] {
			bounds = append(bounds, x)
		}
	}
	// Find the extreme bound: comparable to every other bound from the right side.
	for _, x := range bounds {
		extreme := true
		for _, y := range bounds {
			if lower && !leq[y][x] {
				extreme = false
				break
			}
			if !lower && !leq[x][y] {
				extreme = false
				break
			}
		}
		if extreme {
			return x, true
		}
	}

	return 0, false
}
