package monadic_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/monadic"
)

func TestCombinatorProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	f := func(a, b int) int { return 3*a - b }
	g := func(n int) int { return n*n + 1 }
	h := func(n int) int { return n - 7 }
	//
	properties.Property("Partial(f, a)(b) == f(a, b)", prop.ForAll(
		func(a, b int) bool {
			return monadic.Partial(f, a)(b) == f(a, b)
		},
		gen.Int(), gen.Int(),
	))
	properties.Property("Compose(g, h)(x) == h(g(x))", prop.ForAll(
		func(x int) bool {
			return monadic.Compose(g, h)(x) == h(g(x))
		},
		gen.Int(),
	))
	properties.Property("Compose()(x) == x", prop.ForAll(
		func(x int) bool {
			return monadic.Compose[int]()(x) == x
		},
		gen.Int(),
	))
	properties.Property("Curry(f)(a)(b) == Uncurry(f)(P(a, b))", prop.ForAll(
		func(a, b int) bool {
			return monadic.Curry(f)(a)(b) == monadic.Uncurry(f)(monadic.P(a, b))
		},
		gen.Int(), gen.Int(),
	))
	properties.TestingRun(t)
}
