// Package algebra models a finite algebra: a universe {0..n-1} together with
// an ordered sequence of finitary operations on it. It is the input surface
// for every congruence computation in this module.
//
// What
//
//   - Operation: a named finitary operation with a uniform
//     Apply(args []int) (int, error) signature; arity is carried as data, not
//     as a type hierarchy. Backed either by an explicit table
//     (NewTableOperation, row-major, -1 marking undefined cells) or by a Go
//     function (NewFuncOperation).
//   - Algebra: cardinality + operations, validated once at construction.
//   - Fixtures: deterministic canonical algebras used across tests and
//     examples — cyclic groups, lattice algebras built from a covering
//     relation, meet-semilattice chains, and arbitrary table algebras.
//
// Why
//
//   - Congruences are exactly the partitions compatible with every operation;
//     a uniform operation signature lets the closure engine iterate argument
//     positions generically for any arity.
//   - Partial operations are legal inputs, but the engine's policy is fail
//     fast: reaching an undefined cell surfaces ErrNotTotal immediately,
//     never a silent skip.
//
// Determinism
//
//	Operations preserve their declared order; fixture builders always emit the
//	same tables for the same parameters. Lattice indices downstream depend on
//	this.
//
// Errors
//
//   - ErrBadCardinality  cardinality < 1.
//   - ErrBadArity        negative arity.
//   - ErrBadTable        table length ≠ n^arity, or an entry outside [0,n) ∪ {-1}.
//   - ErrArityMismatch   Apply called with the wrong number of arguments.
//   - ErrInvalidElement  an argument outside [0, cardinality).
//   - ErrNotTotal        an undefined (partial) cell was reached.
//   - ErrNotLattice      NewLatticeFromCovers input is not a bounded lattice order.
package algebra
