/*
Package maybe implements an optional value, similar to Elm's or Haskell's Maybe.

A Maybe is exactly one of two states: Just, holding a value, or Nothing.
The zero value of Maybe[T] is Nothing.

Of is the smart constructor. It inspects its argument and produces Nothing for
absent values (nil pointers, maps, slices, functions, channels and interfaces)
and for values which are themselves a Maybe in state Nothing:

	m := maybe.Of(user)                       // Nothing if user == nil
	name := maybe.Map(func(u *User) string {
	    return u.Name
	}, m).WithDefault("anonymous")

Mapping re-wraps every intermediate result with Of. Thus a function returning
nil turns the pipeline into Nothing, and every subsequent Map is skipped.

Clients consume a Maybe with Fork, or by pattern-matching:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
	    …
	case m.Nothing():
	    …
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.maybe'.
func tracer() tracing.Trace {
	return tracing.Select("fp.maybe")
}
