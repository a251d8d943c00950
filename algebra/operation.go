// Package algebra: the Operation value. One uniform Apply signature for every
// arity — arity is data, not a type hierarchy — so the closure engine can
// substitute argument positions generically.
package algebra

// Operation is a named finitary operation {0..n-1}^arity → {0..n-1}.
// Construct via NewTableOperation or NewFuncOperation; the zero value is not
// usable. Operations are immutable once built.
type Operation struct {
	symbol string
	arity  int
	card   int
	apply  func(args []int) (int, error)
}

// intPow returns base^exp for small non-negative exponents.
// Operation tables are only feasible for tiny cardinality^arity anyway.
func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}

// NewTableOperation builds an Operation from an explicit row-major table over
// a universe of the given cardinality: the cell for (a₀,…,a_{k-1}) lives at
// index ((a₀·n + a₁)·n + a₂)·n + …  A cell of -1 marks the operation as
// undefined on that input (partial operation); evaluating it yields ErrNotTotal.
//
// Errors: ErrBadCardinality, ErrBadArity, ErrBadTable.
func NewTableOperation(symbol string, arity, cardinality int, table []int) (Operation, error) {
	// 1. Validate shape parameters.
	if cardinality < 1 {
		return Operation{}, ErrBadCardinality
	}
	if arity < 0 {
		return Operation{}, ErrBadArity
	}
	// 2. Validate table length and entry range.
	if len(table) != intPow(cardinality, arity) {
		return Operation{}, ErrBadTable
	}
	for _, v := range table {
		if v != -1 && (v < 0 || v >= cardinality) {
			return Operation{}, ErrBadTable
		}
	}
	// 3. Keep a private copy: Operations are immutable values.
	own := make([]int, len(table))
	copy(own, table)

	apply := func(args []int) (int, error) {
		idx := 0
		for _, a := range args {
			idx = idx*cardinality + a
		}
		v := own[idx]
		if v < 0 {
			return 0, ErrNotTotal
		}

		return v, nil
	}

	return Operation{symbol: symbol, arity: arity, card: cardinality, apply: apply}, nil
}

// NewFuncOperation builds an Operation from a Go function. The function's
// results are range-checked on every call; returning an element outside the
// universe surfaces ErrInvalidElement to the caller.
//
// Errors: ErrBadCardinality, ErrBadArity.
func NewFuncOperation(symbol string, arity, cardinality int, fn func(args []int) (int, error)) (Operation, error) {
	if cardinality < 1 {
		return Operation{}, ErrBadCardinality
	}
	if arity < 0 || fn == nil {
		return Operation{}, ErrBadArity
	}

	apply := func(args []int) (int, error) {
		v, err := fn(args)
		if err != nil {
			return 0, err
		}
		if v < 0 || v >= cardinality {
			return 0, ErrInvalidElement
		}

		return v, nil
	}

	return Operation{symbol: symbol, arity: arity, card: cardinality, apply: apply}, nil
}

// Symbol returns the operation's display name.
func (op Operation) Symbol() string {
	return op.symbol
}

// Arity returns the number of arguments the operation takes.
func (op Operation) Arity() int {
	return op.arity
}

// Apply evaluates the operation on args.
// Errors: ErrArityMismatch if len(args) != Arity; ErrInvalidElement if an
// argument is outside the universe; ErrNotTotal on an undefined cell.
func (op Operation) Apply(args []int) (int, error) {
	if len(args) != op.arity {
		return 0, ErrArityMismatch
	}
	for _, a := range args {
		if a < 0 || a >= op.card {
			return 0, ErrInvalidElement
		}
	}

	return op.apply(args)
}
