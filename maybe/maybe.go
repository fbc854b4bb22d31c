package maybe

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/monadic"
	"github.com/npillmayer/monadic/monad"
)

// Maybe is a tagged union of Just(x) and Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

var _ monad.Monad[int, Maybe[int]] = Maybe[int]{}

// Of returns Nothing if x is absent, i.e. nil, or a Maybe in state Nothing.
// Otherwise it returns Just(x).
func Of[T any](x T) Maybe[T] {
	if absent(x) {
		tracer().Debugf("absent value of type %T ⇒ Nothing", x)
		return Nothing[T]()
	}
	return Just(x)
}

// Just wraps x without further checks.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr returns Just(*p), or Nothing for p == nil.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Of(*p)
}

// FromOk converts Go's "comma ok" idiom to a Maybe:
//
//	v, ok := m[key]
//	mv := maybe.FromOk(v, ok)
func FromOk[T any](x T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Of(x)
}

// --- Monad -----------------------------------------------------------------

// Of is the unit of Maybe, see package-level Of.
func (m Maybe[T]) Of(x T) Maybe[T] {
	return Of(x)
}

// IsJust is true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// IsNothing is true if m does not hold a value.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Emit returns the wrapped value. For Nothing this is the zero value of T.
func (m Maybe[T]) Emit() T {
	return m.value
}

// Get returns the wrapped value and true, or the zero value and false for Nothing.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// Inspect renders m as "Just(x)" or "Nothing".
func (m Maybe[T]) Inspect() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

func (m Maybe[T]) String() string {
	return m.Inspect()
}

// Map applies f to the value of a Just and re-wraps the result with Of. If f
// returns an absent value, the result is Nothing. For Nothing, f is not called.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if f == nil {
		panic(monadic.NilFunction("Maybe.Map"))
	}
	if !m.just {
		return Nothing[T]()
	}
	return m.Of(f(m.value))
}

// Pipe maps m over fns, in the order listed. Once an intermediate result is
// Nothing, the remaining functions are skipped.
func (m Maybe[T]) Pipe(fns ...func(T) T) Maybe[T] {
	return monad.Pipe[T](m, fns...)
}

// Chain applies f to the wrapped value and returns f's result unchanged.
// It does not look at the state of m: for Nothing, f receives the zero value of T.
// Use AndThen for a short-circuiting bind.
func (m Maybe[T]) Chain(f func(T) Maybe[T]) Maybe[T] {
	if f == nil {
		panic(monadic.NilFunction("Maybe.Chain"))
	}
	return f(m.value)
}

// Fork consumes m: it returns onJust(x) for Just(x) and onNothing() for Nothing.
// See package-level Fork for handlers with a result type other than T.
func (m Maybe[T]) Fork(onNothing func() T, onJust func(T) T) T {
	return Fork(m, onNothing, onJust)
}

// WithDefault returns the value of a Just, or def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// absent flags a Maybe as representing an absent value to Of.
func (m Maybe[T]) absent() bool {
	return !m.just
}

// --- Package-level operations ----------------------------------------------

// Fork calls onJust(x) for Just(x) and onNothing() for Nothing, and returns the
// handler's result. Both handlers have to be provided.
func Fork[T, R any](m Maybe[T], onNothing func() R, onJust func(T) R) R {
	if onNothing == nil || onJust == nil {
		panic(monadic.NilFunction("maybe.Fork"))
	}
	if m.just {
		return onJust(m.value)
	}
	return onNothing()
}

// Map is the type-changing version of method Map.
func Map[T, U any](f func(T) U, x Maybe[T]) Maybe[U] {
	if f == nil {
		panic(monadic.NilFunction("maybe.Map"))
	}
	if !x.just {
		return Nothing[U]()
	}
	return Of(f(x.value))
}

// AndThen chains together computations that may fail. Other than method Chain
// it short-circuits: for Nothing, f is not called.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if f == nil {
		panic(monadic.NilFunction("maybe.AndThen"))
	}
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Absence ---------------------------------------------------------------

// maybeValue is implemented by Maybe[T] for every T. It is unexported, so other
// types with a method of that name do not count as Nothing.
type maybeValue interface {
	absent() bool
}

func absent(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.UnsafePointer:
		if v.IsNil() {
			return true
		}
	}
	// includes *Maybe[U], which is non-nil at this point
	if m, ok := x.(maybeValue); ok {
		return m.absent()
	}
	return false
}
