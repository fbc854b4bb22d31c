/*
Package monadic offers a small set of functional programming constructs:
partial application, left-to-right composition, and a family of monads
which share a common contract.

# Function Tools

Compose chains functions in the order they are listed, i.e. the first function
is applied first. This is a pipe rather than the mathematical composition
operator:

	inc := func(n int) int { return n + 1 }
	dbl := func(n int) int { return n * 2 }
	h := monadic.Compose(inc, dbl)   // h(3) = dbl(inc(3)) = 8

Partial binds leading arguments of a function:

	add := func(a, b int) int { return a + b }
	add5 := monadic.Partial(add, 5)  // add5(2) = 7

# Monads

Package monad defines the contract (Of, Map, Chain, Pipe, Emit, Inspect);
packages identity, collection and maybe provide concrete variants. Every
variant is immutable: transformations always return a new instance.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package monadic

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.monadic'.
func tracer() tracing.Trace {
	return tracing.Select("fp.monadic")
}

// ErrInvalidArgument is the error wrapped by panics and errors resulting from
// a client passing an unusable argument, most prominently a nil function.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrArity signals a mismatch between the number of arguments a function
// expects and the number of arguments it has been called with.
var ErrArity = errors.New("arity mismatch")

// NilFunction creates an error for a nil function argument to operation op.
// Sub-packages use it to panic with an error that wraps ErrInvalidArgument.
func NilFunction(op string) error {
	return fmt.Errorf("%s: function argument is nil: %w", op, ErrInvalidArgument)
}
