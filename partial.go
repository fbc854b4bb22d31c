package monadic

import (
	"fmt"
	"reflect"
)

// Partial binds the first argument of a binary function:
//
//	Partial(f, a)(b) == f(a, b)
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	if f == nil {
		panic(NilFunction("Partial"))
	}
	return func(b B) R {
		return f(a, b)
	}
}

// Partial2 binds the first two arguments of a ternary function.
func Partial2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	if f == nil {
		panic(NilFunction("Partial2"))
	}
	return func(c C) R {
		return f(a, b, c)
	}
}

// PartialN binds leading arguments of a variadic function. Bound arguments
// always precede the arguments given at call time.
func PartialN[A, R any](f func(...A) R, bound ...A) func(...A) R {
	if f == nil {
		panic(NilFunction("PartialN"))
	}
	fixed := make([]A, len(bound))
	copy(fixed, bound)
	return func(args ...A) R {
		all := make([]A, 0, len(fixed)+len(args))
		all = append(all, fixed...)
		all = append(all, args...)
		return f(all...)
	}
}

// Dynamic is a function of arbitrary arity, as returned by PartialAny.
// It returns the results of the underlying function in order.
type Dynamic func(args ...any) ([]any, error)

// PartialAny binds leading arguments of a function of any signature. Types are
// checked at run time: if f is not a function or if a bound argument is not
// assignable to the corresponding parameter, an error wrapping
// ErrInvalidArgument is returned.
//
// Calling the resulting Dynamic with a total number of arguments which does
// not fit f returns an error wrapping ErrArity. The call is not performed in
// this case.
func PartialAny(f any, bound ...any) (Dynamic, error) {
	fv := reflect.ValueOf(f)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("PartialAny: %T is not a function: %w", f, ErrInvalidArgument)
	}
	ft := fv.Type()
	if !ft.IsVariadic() && len(bound) > ft.NumIn() {
		return nil, fmt.Errorf("PartialAny: %d arguments bound to function with %d parameters: %w",
			len(bound), ft.NumIn(), ErrArity)
	}
	fixed := make([]reflect.Value, len(bound))
	for i, a := range bound {
		v, err := argValue(ft, i, a)
		if err != nil {
			return nil, err
		}
		fixed[i] = v
	}
	tracer().Debugf("partial application of %s with %d bound arguments", ft, len(fixed))
	return func(args ...any) ([]any, error) {
		n := len(fixed) + len(args)
		if ft.IsVariadic() && n < ft.NumIn()-1 || !ft.IsVariadic() && n != ft.NumIn() {
			return nil, fmt.Errorf("%s called with %d arguments: %w", ft, n, ErrArity)
		}
		in := make([]reflect.Value, 0, n)
		in = append(in, fixed...)
		for i, a := range args {
			v, err := argValue(ft, len(fixed)+i, a)
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
		out := fv.Call(in)
		results := make([]any, len(out))
		for i, r := range out {
			results[i] = r.Interface()
		}
		return results, nil
	}, nil
}

// argValue converts argument a at position i to a value suitable for a call of
// a function of type ft.
func argValue(ft reflect.Type, i int, a any) (reflect.Value, error) {
	var pt reflect.Type
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		pt = ft.In(ft.NumIn() - 1).Elem()
	} else {
		pt = ft.In(i)
	}
	if a == nil {
		switch pt.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("argument #%d: nil not usable as %s: %w", i, pt, ErrInvalidArgument)
	}
	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("argument #%d: %s not assignable to %s: %w",
			i, v.Type(), pt, ErrInvalidArgument)
	}
	return v, nil
}
