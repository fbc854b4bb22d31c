// Package identity implements the trivial monad: a wrapper without any
// validation or coercion.
package identity

import (
	"fmt"

	"github.com/npillmayer/monadic"
	"github.com/npillmayer/monadic/monad"
)

// Identity wraps a single value of type T.
type Identity[T any] struct {
	x T
}

var _ monad.Monad[int, Identity[int]] = Identity[int]{}

// Of wraps x unconditionally.
func Of[T any](x T) Identity[T] {
	return Identity[T]{x: x}
}

// Of is the unit of Identity, see package-level Of.
func (i Identity[T]) Of(x T) Identity[T] {
	return Of(x)
}

// Emit returns the wrapped value.
func (i Identity[T]) Emit() T {
	return i.x
}

// Inspect renders i as "Identity(x)".
func (i Identity[T]) Inspect() string {
	return fmt.Sprintf("Identity(%v)", i.x)
}

func (i Identity[T]) String() string {
	return i.Inspect()
}

// Chain returns f(x) as-is.
func (i Identity[T]) Chain(f func(T) Identity[T]) Identity[T] {
	if f == nil {
		panic(monadic.NilFunction("Identity.Chain"))
	}
	return f(i.x)
}

// Map returns Of(f(x)).
func (i Identity[T]) Map(f func(T) T) Identity[T] {
	if f == nil {
		panic(monadic.NilFunction("Identity.Map"))
	}
	return i.Of(f(i.x))
}

// Pipe maps i over fns, in the order listed.
func (i Identity[T]) Pipe(fns ...func(T) T) Identity[T] {
	return monad.Pipe[T](i, fns...)
}

// Map is the type-changing version of method Map.
func Map[T, U any](i Identity[T], f func(T) U) Identity[U] {
	if f == nil {
		panic(monadic.NilFunction("identity.Map"))
	}
	return Of(f(i.x))
}
