// Package algebra: the Algebra value — a finite universe plus an ordered
// sequence of operations, validated once at construction.
package algebra

// Algebra is a finite algebra: universe {0..cardinality-1} with an ordered
// sequence of finitary operations. Immutable after New; safe for concurrent
// reads.
type Algebra struct {
	card int
	ops  []Operation
}

// New builds an Algebra over the given cardinality. Every operation must have
// been constructed for the same cardinality (ErrUniverseMismatch otherwise).
// An algebra with no operations is legal: every partition is then a congruence.
func New(cardinality int, ops ...Operation) (*Algebra, error) {
	if cardinality < 1 {
		return nil, ErrBadCardinality
	}
	own := make([]Operation, len(ops))
	for i, op := range ops {
		if op.card != cardinality {
			return nil, ErrUniverseMismatch
		}
		own[i] = op
	}

	return &Algebra{card: cardinality, ops: own}, nil
}

// Cardinality returns the universe size.
func (a *Algebra) Cardinality() int {
	return a.card
}

// Operations returns the operations in declaration order.
// The slice is freshly allocated; Operation values are immutable.
func (a *Algebra) Operations() []Operation {
	out := make([]Operation, len(a.ops))
	copy(out, a.ops)

	return out
}
