package maybe_test

import (
	"testing"

	"github.com/npillmayer/monadic/maybe"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func TestFromOption(t *testing.T) {
	assert.Equal(t, 3, maybe.FromOption(mo.Some(3)).Emit())
	assert.True(t, maybe.FromOption(mo.None[int]()).IsNothing())
	var p *int
	assert.True(t, maybe.FromOption(mo.Some(p)).IsNothing(), "Some(nil) has to be absent")
}

func TestToOption(t *testing.T) {
	o := maybe.Just("a").ToOption()
	assert.True(t, o.IsPresent())
	assert.Equal(t, "a", o.MustGet())
	assert.True(t, maybe.Nothing[string]().ToOption().IsAbsent())
}
