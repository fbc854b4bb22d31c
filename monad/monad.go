/*
Package monad defines the contract shared by all monad variants of this module.

A variant M wrapping values of type T implements Monad[T, M]. Referring to the
variant's own type M in the method signatures lets Map, Pipe and Chain return
the concrete variant, so clients may continue with variant-specific methods
(e.g. Fork for maybe.Maybe) without type assertions.

Go methods cannot introduce type parameters of their own. Operations that
change the result type are therefore package-level functions, like Chain
in this package or maybe.Map.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package monad

import (
	"github.com/npillmayer/monadic"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.monad'.
func tracer() tracing.Trace {
	return tracing.Select("fp.monad")
}

// Monad is the capability set every variant implements.
//
// Of is the variant's unit. It performs whatever validation or coercion the
// variant requires and is what Map uses to re-wrap results.
//
// Chain applies a function to the wrapped value and returns its result
// unchanged, without re-wrapping.
type Monad[T, M any] interface {
	Of(T) M
	Map(func(T) T) M
	Chain(func(T) M) M
	Pipe(...func(T) T) M
	Emit() T
	Inspect() string
}

// Pipe successively maps m over fns, in the order listed:
//
//	Pipe(m, f1, f2, f3) == m.Map(f1).Map(f2).Map(f3)
//
// Variants implement their Pipe method by calling this function.
func Pipe[T any, M Monad[T, M]](m M, fns ...func(T) T) M {
	tracer().Debugf("pipe through %d functions", len(fns))
	for _, f := range fns {
		m = m.Map(f)
	}
	return m
}

// Chain applies fn to the value wrapped by m and returns fn's result as-is.
// It is an escape hatch from the monad; fn may return anything.
func Chain[T, R any](m interface{ Emit() T }, fn func(T) R) R {
	if fn == nil {
		panic(monadic.NilFunction("Chain"))
	}
	return fn(m.Emit())
}

// Lift turns a function on plain values into a function on monads of
// variant M.
func Lift[T any, M Monad[T, M]](fn func(T) T) func(M) M {
	if fn == nil {
		panic(monadic.NilFunction("Lift"))
	}
	return func(m M) M {
		return m.Map(fn)
	}
}
