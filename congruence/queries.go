// Package congruence: read-only queries on a built Lattice — element access,
// join/meet, the refinement order, atoms, coatoms, and the covering relation.
package congruence

import (
	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/partition"
)

// Size returns the number of congruences in the lattice.
func (l *Lattice) Size() int {
	return len(l.cons)
}

// Algebra returns the algebra this lattice was built from.
func (l *Lattice) Algebra() *algebra.Algebra {
	return l.alg
}

// Bottom returns the index of the identity partition (always 0 under the
// canonical ordering).
func (l *Lattice) Bottom() int {
	return l.bottom
}

// Top returns the index of the universal partition (always Size()-1 under the
// canonical ordering).
func (l *Lattice) Top() int {
	return l.top
}

// Congruences returns every congruence in canonical order. The slice is
// freshly allocated; Partition values are immutable.
func (l *Lattice) Congruences() []partition.Partition {
	out := make([]partition.Partition, len(l.cons))
	copy(out, l.cons)

	return out
}

// Congruence returns the congruence at lattice index i.
// Returns ErrIndexOutOfRange if i is outside [0, Size()).
func (l *Lattice) Congruence(i int) (partition.Partition, error) {
	if i < 0 || i >= len(l.cons) {
		return partition.Partition{}, ErrIndexOutOfRange
	}

	return l.cons[i], nil
}

// Principal returns Cg(a,b) from the lattice's cache, keyed by the
// canonicalized pair (min(a,b), max(a,b)). Cg(a,a) is the bottom congruence.
// Returns algebra.ErrInvalidElement if a or b is outside the universe.
func (l *Lattice) Principal(a, b int) (partition.Partition, error) {
	n := l.alg.Cardinality()
	if a < 0 || a >= n || b < 0 || b >= n {
		return partition.Partition{}, algebra.ErrInvalidElement
	}
	if a == b {
		return l.cons[l.bottom], nil
	}
	if b < a {
		a, b = b, a
	}
	idx, ok := l.principal[[2]int{a, b}]
	if !ok {
		return partition.Partition{}, ErrInconsistent
	}

	return l.cons[idx], nil
}

// PrincipalIndex returns the lattice index of Cg(a,b); see Principal.
func (l *Lattice) PrincipalIndex(a, b int) (int, error) {
	n := l.alg.Cardinality()
	if a < 0 || a >= n || b < 0 || b >= n {
		return 0, algebra.ErrInvalidElement
	}
	if a == b {
		return l.bottom, nil
	}
	if b < a {
		a, b = b, a
	}
	idx, ok := l.principal[[2]int{a, b}]
	if !ok {
		return 0, ErrInconsistent
	}

	return idx, nil
}

// Leq reports the refinement order: whether congruence i is finer than or
// equal to congruence j.
// Returns ErrIndexOutOfRange for an invalid index.
func (l *Lattice) Leq(i, j int) (bool, error) {
	if err := l.check(i, j); err != nil {
		return false, err
	}

	return l.leq[i][j], nil
}

// JoinIndex returns the index of the least upper bound of congruences i and j.
// Returns ErrIndexOutOfRange for an invalid index.
func (l *Lattice) JoinIndex(i, j int) (int, error) {
	if err := l.check(i, j); err != nil {
		return 0, err
	}

	return l.bound(i, j, false)
}

// MeetIndex returns the index of the greatest lower bound of congruences i and j.
// Returns ErrIndexOutOfRange for an invalid index.
func (l *Lattice) MeetIndex(i, j int) (int, error) {
	if err := l.check(i, j); err != nil {
		return 0, err
	}

	return l.bound(i, j, true)
}

// Join returns the least upper bound of congruences i and j as a Partition.
func (l *Lattice) Join(i, j int) (partition.Partition, error) {
	idx, err := l.JoinIndex(i, j)
	if err != nil {
		return partition.Partition{}, err
	}

	return l.cons[idx], nil
}

// Meet returns the greatest lower bound of congruences i and j as a Partition.
func (l *Lattice) Meet(i, j int) (partition.Partition, error) {
	idx, err := l.MeetIndex(i, j)
	if err != nil {
		return partition.Partition{}, err
	}

	return l.cons[idx], nil
}

// CoveringRelation returns every covering pair (lower, upper) — α < β with
// nothing strictly between — in lexicographic index order. Freshly allocated.
func (l *Lattice) CoveringRelation() [][2]int {
	out := make([][2]int, len(l.covers))
	copy(out, l.covers)

	return out
}

// Atoms returns the indices of congruences covering the bottom, ascending.
func (l *Lattice) Atoms() []int {
	var atoms []int
	for _, c := range l.covers {
		if c[0] == l.bottom {
			atoms = append(atoms, c[1])
		}
	}

	return atoms
}

// Coatoms returns the indices of congruences covered by the top, ascending.
func (l *Lattice) Coatoms() []int {
	var coatoms []int
	for _, c := range l.covers {
		if c[1] == l.top {
			coatoms = append(coatoms, c[0])
		}
	}

	return coatoms
}

// check validates lattice indices.
func (l *Lattice) check(idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= len(l.cons) {
			return ErrIndexOutOfRange
		}
	}

	return nil
}

// bound scans the order matrix for the unique extreme common bound of i and j:
// greatest lower (lower=true) or least upper (lower=false). The closure
// guarantees existence; absence means a broken invariant.
func (l *Lattice) bound(i, j int, lower bool) (int, error) {
	m := len(l.cons)
	for x := 0; x < m; x++ {
		// 1. x must be a common bound.
		if lower && !(l.leq[x][i] && l.leq[x][j]) {
			continue
		}
		if !lower && !(l.leq[i][x] && l.leq[j][x]) {
			continue
		}
		// 2. x must dominate every other common bound from the proper side.
		extreme := true
		for y := 0; y < m; y++ {
			if lower && l.leq[y][i] && l.leq[y][j] && !l.leq[y][x] {
				extreme = false
				break
			}
			if !lower && l.leq[i][y] && l.leq[j][y] && !l.leq[x][y] {
				extreme = false
				break
			}
		}
		if extreme {
			return x, nil
		}
	}

	return 0, ErrInconsistent
}
