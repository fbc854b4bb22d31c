package monadic

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a 2-tuple. It lets binary functions take part in compositions of
// unary functions, see Uncurry.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair from x and y.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of a pair.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("⟨%v, %v⟩", p.Left, p.Right)
}

// --- Currying --------------------------------------------------------------

// Curry converts a binary function into a chain of unary functions:
//
//	Curry(f)(a)(b) == f(a, b)
//
// Every application of the intermediate function is a Partial application of f.
func Curry[A, B, R any](f func(A, B) R) func(A) func(B) R {
	if f == nil {
		panic(NilFunction("Curry"))
	}
	return func(a A) func(B) R {
		return Partial(f, a)
	}
}

// Uncurry converts a binary function into a unary function over pairs.
func Uncurry[A, B, R any](f func(A, B) R) func(Pair[A, B]) R {
	if f == nil {
		panic(NilFunction("Uncurry"))
	}
	return func(p Pair[A, B]) R {
		return f(p.Decompose())
	}
}
