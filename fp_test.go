package monadic_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/monadic"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := monadic.Compose2(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestComposeLeftToRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.monadic")
	defer teardown()
	//
	inc := func(n int) int { return n + 1 }
	dbl := func(n int) int { return n * 2 }
	if r := monadic.Compose(inc, dbl)(3); r != 8 {
		t.Errorf("expected Compose(inc, dbl)(3) to be 8, is %d", r)
	}
	if r := monadic.Compose(dbl, inc)(3); r != 7 {
		t.Errorf("expected Compose(dbl, inc)(3) to be 7, is %d", r)
	}
	var trail []string
	step := func(name string) func(string) string {
		return func(s string) string {
			trail = append(trail, name)
			return s + name
		}
	}
	r := monadic.Compose(step("a"), step("b"), step("c"))("")
	if r != "abc" || len(trail) != 3 || trail[0] != "a" {
		t.Errorf("expected steps to run in listed order, got %q / %v", r, trail)
	}
}

func TestComposeEmpty(t *testing.T) {
	id := monadic.Compose[string]()
	if id("x") != "x" {
		t.Errorf("expected Compose() to be the identity, Compose()(x) = %q", id("x"))
	}
}

func TestComposeNilPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, monadic.ErrInvalidArgument) {
			t.Errorf("expected panic with ErrInvalidArgument, got %v", r)
		}
	}()
	monadic.Compose(func(n int) int { return n }, nil)
}

func TestCompose3(t *testing.T) {
	h := monadic.Compose3(
		func(n int) int { return n * 10 },
		func(n int) string { return fmt.Sprint(n) },
		func(s string) int { return len(s) },
	)
	if h(123) != 4 {
		t.Errorf("expected Compose3(…)(123) to be 4, is %d", h(123))
	}
}

func TestConst(t *testing.T) {
	seven := monadic.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
}

func TestUnit(t *testing.T) {
	nothing := monadic.Unit(7)
	if nothing != 0 {
		t.Logf("Unit(7) = %v", nothing)
		t.Error("expected Unit(7) to be nothing = 0")
	}
}

func TestId(t *testing.T) {
	if monadic.Id("x") != "x" {
		t.Error("expected Id(x) to be x")
	}
}
