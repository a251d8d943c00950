// Package tct: the classifier. Localizes each covering pair to a trace
// quotient and tests the induced polynomial structure against the five
// prototypes, strongest evidence first.
package tct

import (
	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/congruence"
)

// Classify returns the TCT type of the covering pair (lower, upper) of lat.
//
// Errors: ErrLatticeNil, ErrDegenerateLattice (no prime interval exists),
// congruence.ErrIndexOutOfRange, ErrNotCovering, congruence.ErrCancelled.
func Classify(lat *congruence.Lattice, lower, upper int, opts ...Option) (Type, error) {
	f, err := newFinder(lat, opts)
	if err != nil {
		return 0, err
	}

	return f.classify(lower, upper)
}

// ClassifyAll labels every covering pair of lat, in covering-relation order.
// The polynomial clones are computed once and shared across pairs.
func ClassifyAll(lat *congruence.Lattice, opts ...Option) ([]Labeled, error) {
	f, err := newFinder(lat, opts)
	if err != nil {
		return nil, err
	}
	covers := lat.CoveringRelation()
	labels := make([]Labeled, 0, len(covers))
	for _, c := range covers {
		typ, cerr := f.classify(c[0], c[1])
		if cerr != nil {
			return nil, cerr
		}
		labels = append(labels, Labeled{Lower: c[0], Upper: c[1], Type: typ})
	}

	return labels, nil
}

// finder carries the per-lattice classification state: the unary, binary and
// ternary polynomial clones, computed once.
type finder struct {
	lat     *congruence.Lattice
	alg     *algebra.Algebra
	opts    options
	unary   [][]int
	binary  [][]int
	ternary [][]int
}

// newFinder validates the lattice and precomputes the clones.
func newFinder(lat *congruence.Lattice, opts []Option) (*finder, error) {
	if lat == nil {
		return nil, ErrLatticeNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// No prime interval exists for a trivial algebra or a collapsed lattice.
	if lat.Algebra().Cardinality() < 2 || lat.Size() < 2 {
		return nil, ErrDegenerateLattice
	}

	f := &finder{lat: lat, alg: lat.Algebra(), opts: o}
	var err error
	if f.unary, err = clone(f.alg, 1, o); err != nil {
		return nil, err
	}
	if f.binary, err = clone(f.alg, 2, o); err != nil {
		return nil, err
	}
	if f.ternary, err = clone(f.alg, 3, o); err != nil {
		return nil, err
	}

	return f, nil
}

// classify runs the localization-and-prototype pipeline for one pair.
func (f *finder) classify(lower, upper int) (Type, error) {
	// 1. Validate the pair.
	alpha, err := f.lat.Congruence(lower)
	if err != nil {
		return 0, err
	}
	beta, err := f.lat.Congruence(upper)
	if err != nil {
		return 0, err
	}
	if !f.isCover(lower, upper) {
		return 0, ErrNotCovering
	}

	// 2. Localize: minimal set, trace, trace quotient.
	loc, err := localize(alpha, beta, f.unary)
	if err != nil {
		return 0, err
	}

	// 3. Induced operations on the trace quotient.
	binOps := f.inducedBinary(loc)
	semis := semilatticeOps(binOps, loc.classes)
	maltsev := f.hasMaltsev(loc)

	// 4. Decision, strongest structure first.
	switch {
	case maltsev && len(semis) > 0:
		return TypeBoolean, nil
	case maltsev:
		return TypeAffine, nil
	case latticePair(semis, loc.classes):
		return TypeLattice, nil
	case len(semis) > 0:
		return TypeSemilattice, nil
	default:
		return TypeUnary, nil
	}
}

// isCover reports whether (lower, upper) is in the covering relation.
func (f *finder) isCover(lower, upper int) bool {
	for _, c := range f.lat.CoveringRelation() {
		if c[0] == lower && c[1] == upper {
			return true
		}
	}

	return false
}

// inducedBinary projects every binary polynomial preserving the trace onto
// the quotient, deduplicated.
func (f *finder) inducedBinary(loc *localization) [][]int {
	n := f.alg.Cardinality()
	q := loc.classes
	seen := map[string]bool{}
	var out [][]int
	for _, fn := range f.binary {
		// The polynomial must map N×N into N.
		preserves := true
		for _, a := range loc.trace {
			for _, b := range loc.trace {
				if !loc.inTrace[fn[a*n+b]] {
					preserves = false
					break
				}
			}
			if !preserves {
				break
			}
		}
		if !preserves {
			continue
		}
		// Project onto the α-quotient. α-compatibility of polynomials makes
		// the projection independent of representative choice.
		tab := make([]int, q*q)
		for _, a := range loc.trace {
			for _, b := range loc.trace {
				tab[loc.classOf[a]*q+loc.classOf[b]] = loc.classOf[fn[a*n+b]]
			}
		}
		key := fnKey(tab)
		if !seen[key] {
			seen[key] = true
			out = append(out, tab)
		}
	}

	return out
}

// hasMaltsev reports whether some ternary polynomial preserving the trace
// induces a Maltsev operation on the quotient: m(x,x,y)=y and m(x,y,y)=x.
func (f *finder) hasMaltsev(loc *localization) bool {
	n := f.alg.Cardinality()
	q := loc.classes
	for _, fn := range f.ternary {
		preserves := true
		for _, a := range loc.trace {
			for _, b := range loc.trace {
				for _, c := range loc.trace {
					if !loc.inTrace[fn[(a*n+b)*n+c]] {
						preserves = false
						break
					}
				}
				if !preserves {
					break
				}
			}
			if !preserves {
				break
			}
		}
		if !preserves {
			continue
		}
		tab := make([]int, q*q*q)
		for _, a := range loc.trace {
			for _, b := range loc.trace {
				for _, c := range loc.trace {
					idx := (loc.classOf[a]*q+loc.classOf[b])*q + loc.classOf[c]
					tab[idx] = loc.classOf[fn[(a*n+b)*n+c]]
				}
			}
		}
		if isMaltsevTable(tab, q) {
			return true
		}
	}

	return false
}

// isMaltsevTable checks m(x,x,y)==y and m(x,y,y)==x on a q-element table.
func isMaltsevTable(tab []int, q int) bool {
	for x := 0; x < q; x++ {
		for y := 0; y < q; y++ {
			if tab[(x*q+x)*q+y] != y {
				return false
			}
			if tab[(x*q+y)*q+y] != x {
				return false
			}
		}
	}

	return true
}

// semilatticeOps filters the idempotent, commutative, associative tables.
// Projections fail commutativity for q ≥ 2, so they never slip through.
func semilatticeOps(binOps [][]int, q int) [][]int {
	var out [][]int
	for _, tab := range binOps {
		if isSemilatticeTable(tab, q) {
			out = append(out, tab)
		}
	}

	return out
}

// isSemilatticeTable checks the three semilattice identities on a q×q table.
func isSemilatticeTable(tab []int, q int) bool {
	for x := 0; x < q; x++ {
		if tab[x*q+x] != x {
			return false
		}
		for y := 0; y < q; y++ {
			if tab[x*q+y] != tab[y*q+x] {
				return false
			}
			for z := 0; z < q; z++ {
				if tab[tab[x*q+y]*q+z] != tab[x*q+tab[y*q+z]] {
					return false
				}
			}
		}
	}

	return true
}

// latticePair reports whether two distinct semilattice operations satisfy
// both absorption laws — the witness that the quotient carries a lattice.
func latticePair(semis [][]int, q int) bool {
	for i, s1 := range semis {
		for j, s2 := range semis {
			if i == j {
				continue
			}
			absorbs := true
			for x := 0; x < q && absorbs; x++ {
				for y := 0; y < q; y++ {
					if s1[x*q+s2[x*q+y]] != x || s2[x*q+s1[x*q+y]] != x {
						absorbs = false
						break
					}
				}
			}
			if absorbs {
				return true
			}
		}
	}

	return false
}
