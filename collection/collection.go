package collection

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/monadic"
	"github.com/npillmayer/monadic/maybe"
	"github.com/npillmayer/monadic/monad"
	"github.com/npillmayer/monadic/persistent/vector"
	"github.com/samber/lo"
)

// Collection wraps a sequence of values of type T.
type Collection[T any] struct {
	items vector.Vector[T]
}

var _ monad.Monad[[]int, Collection[int]] = Collection[int]{}

// Of creates a collection from its arguments. A single argument is promoted
// to a sequence of length one. To wrap an existing slice, either spread it
// (Of(xs...)) or use From.
func Of[T any](xs ...T) Collection[T] {
	return From(xs)
}

// From wraps the elements of xs, in order. xs is copied.
func From[T any](xs []T) Collection[T] {
	return Collection[T]{items: vector.Immutable[T]().Append(xs...)}
}

// OfAny creates a collection from a value of unknown type. Slices and arrays
// are wrapped element by element, any other value becomes a collection of
// one element.
func OfAny(x any) Collection[any] {
	v := reflect.ValueOf(x)
	if x != nil && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) {
		items := make([]any, v.Len())
		for i := range items {
			items[i] = v.Index(i).Interface()
		}
		return From(items)
	}
	return Of(x)
}

// --- Monad -----------------------------------------------------------------

// Of is the unit of Collection: it wraps xs as-is.
func (c Collection[T]) Of(xs []T) Collection[T] {
	return From(xs)
}

// Emit returns the wrapped sequence as a new slice.
func (c Collection[T]) Emit() []T {
	return c.items.Slice()
}

// Inspect renders c as "Collection(e1, e2, …)".
func (c Collection[T]) Inspect() string {
	elems := lo.Map(c.Emit(), func(x T, _ int) string {
		return fmt.Sprintf("%v", x)
	})
	return "Collection(" + strings.Join(elems, ", ") + ")"
}

func (c Collection[T]) String() string {
	return c.Inspect()
}

// Map applies f to the whole sequence and re-wraps the result with Of.
func (c Collection[T]) Map(f func([]T) []T) Collection[T] {
	if f == nil {
		panic(monadic.NilFunction("Collection.Map"))
	}
	return c.Of(f(c.Emit()))
}

// Chain returns f applied to the sequence, without re-wrapping.
func (c Collection[T]) Chain(f func([]T) Collection[T]) Collection[T] {
	if f == nil {
		panic(monadic.NilFunction("Collection.Chain"))
	}
	return f(c.Emit())
}

// Pipe maps c over fns, in the order listed.
func (c Collection[T]) Pipe(fns ...func([]T) []T) Collection[T] {
	return monad.Pipe[[]T](c, fns...)
}

// --- Sequence operations ---------------------------------------------------

// Concat returns a new collection holding the elements of c followed by xs.
// Duplicates are kept and no re-ordering takes place.
func (c Collection[T]) Concat(xs ...T) Collection[T] {
	tracer().Debugf("concat %d + %d elements", c.items.Len(), len(xs))
	return Collection[T]{items: c.items.Append(xs...)}
}

// ConcatCollection returns a new collection holding the elements of c followed
// by the elements of other.
func (c Collection[T]) ConcatCollection(other Collection[T]) Collection[T] {
	return c.Concat(other.Emit()...)
}

// Len returns the number of elements in c.
func (c Collection[T]) Len() int {
	return c.items.Len()
}

// At returns the element at position i, or Nothing if i is out of range.
func (c Collection[T]) At(i int) maybe.Maybe[T] {
	if i < 0 || i >= c.items.Len() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(c.items.Get(i))
}

// Last returns the last element of c, or Nothing if c is empty.
func (c Collection[T]) Last() maybe.Maybe[T] {
	return c.items.Last()
}

// --- Element-wise operations -----------------------------------------------

// Fmap applies f to every element of c.
func Fmap[T, U any](c Collection[T], f func(T) U) Collection[U] {
	if f == nil {
		panic(monadic.NilFunction("collection.Fmap"))
	}
	return From(lo.Map(c.Emit(), func(x T, _ int) U {
		return f(x)
	}))
}

// Filter returns a collection of the elements of c for which pred holds.
func Filter[T any](c Collection[T], pred func(T) bool) Collection[T] {
	if pred == nil {
		panic(monadic.NilFunction("collection.Filter"))
	}
	return From(lo.Filter(c.Emit(), func(x T, _ int) bool {
		return pred(x)
	}))
}

// Reduce folds the elements of c from left to right, starting with initial.
func Reduce[T, R any](c Collection[T], f func(R, T) R, initial R) R {
	if f == nil {
		panic(monadic.NilFunction("collection.Reduce"))
	}
	return lo.Reduce(c.Emit(), func(agg R, x T, _ int) R {
		return f(agg, x)
	}, initial)
}
