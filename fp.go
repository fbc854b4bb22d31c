package monadic

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Id returns its argument.
func Id[T any](a T) T {
	return a
}

// Compose returns a function h which applies fns in the order they are listed:
//
//	h(x) = fn(…f2(f1(x)))
//
// Compose() returns the identity function. Passing a nil function panics with
// an error wrapping ErrInvalidArgument.
func Compose[T any](fns ...func(T) T) func(T) T {
	for _, f := range fns {
		if f == nil {
			panic(NilFunction("Compose"))
		}
	}
	if len(fns) == 0 {
		return Id[T]
	}
	pipe := make([]func(T) T, len(fns))
	copy(pipe, fns)
	return func(x T) T {
		for _, f := range pipe {
			x = f(x)
		}
		return x
	}
}

// Compose2 returns h = f ; g, i.e. h(a) = g(f(a)). Other than Compose it allows
// the types to change from step to step.
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	if f == nil || g == nil {
		panic(NilFunction("Compose2"))
	}
	return func(a A) C {
		b := f(a)
		return g(b)
	}
}

// Compose3 returns h with h(a) = k(g(f(a))).
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, k func(C) D) func(A) D {
	return Compose2(Compose2(f, g), k)
}
