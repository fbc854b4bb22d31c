package identity_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/monadic/identity"
)

func TestIdentityOf(t *testing.T) {
	var p *int
	i := identity.Of(p)
	if i.Emit() != nil {
		t.Errorf("expected Identity to wrap nil unchanged, is %v", i.Emit())
	}
	if identity.Of(7).Emit() != 7 {
		t.Error("expected Identity.Of(7).Emit() to be 7")
	}
}

func TestIdentityMap(t *testing.T) {
	x := identity.Of(7).Map(func(n int) int { return n * 3 })
	if x.Emit() != 21 {
		t.Errorf("expected Of(7).Map(*3) to be 21, is %d", x.Emit())
	}
	s := identity.Map(identity.Of(7), func(n int) string { return "#" })
	if s.Emit() != "#" {
		t.Errorf("expected type-changing map to yield #, is %q", s.Emit())
	}
}

func TestIdentityPipe(t *testing.T) {
	x := identity.Of(2).Pipe(
		func(n int) int { return n + 1 },
		func(n int) int { return n * 2 },
	)
	if x.Emit() != 6 {
		t.Errorf("expected Of(2).Pipe(+1, *2) to be 6, is %d", x.Emit())
	}
}

func TestIdentityChain(t *testing.T) {
	x := identity.Of(2).Chain(func(n int) identity.Identity[int] {
		return identity.Of(n * 100)
	})
	if x.Emit() != 200 {
		t.Errorf("expected chain to return the function's result, got %v", x)
	}
}

func TestIdentityInspect(t *testing.T) {
	if s := identity.Of("a").Inspect(); s != "Identity(a)" {
		t.Errorf("expected Identity(a), got %q", s)
	}
}

func TestIdentityImmutable(t *testing.T) {
	x := identity.Of(1)
	_ = x.Map(func(n int) int { return n + 1 })
	if x.Emit() != 1 {
		t.Error("expected Map to leave the original untouched")
	}
}

func TestIdentityLaws(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	f := func(n int) int { return n*2 - 1 }
	g := func(n int) int { return n ^ 0x55 }
	properties.Property("Of(x).Map(f).Emit() == f(x)", prop.ForAll(
		func(x int) bool {
			return identity.Of(x).Map(f).Emit() == f(x)
		},
		gen.Int(),
	))
	properties.Property("Map(f).Map(g) == Pipe(f, g)", prop.ForAll(
		func(x int) bool {
			return identity.Of(x).Map(f).Map(g) == identity.Of(x).Pipe(f, g)
		},
		gen.Int(),
	))
	properties.Property("left identity for Chain", prop.ForAll(
		func(x int) bool {
			k := func(n int) identity.Identity[int] { return identity.Of(g(n)) }
			return identity.Of(x).Chain(k) == k(x)
		},
		gen.Int(),
	))
	properties.TestingRun(t)
}
