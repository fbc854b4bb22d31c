package maybe

import "github.com/samber/mo"

// FromOption converts an option of package samber/mo into a Maybe.
// Some(nil) is treated as absent and yields Nothing.
func FromOption[T any](o mo.Option[T]) Maybe[T] {
	v, ok := o.Get()
	return FromOk(v, ok)
}

// ToOption converts m into an option of package samber/mo.
func (m Maybe[T]) ToOption() mo.Option[T] {
	if m.just {
		return mo.Some(m.value)
	}
	return mo.None[T]()
}
