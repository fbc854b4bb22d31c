package maybe

// --- Matching --------------------------------------------------------------

// Matcher supports switch-style pattern matching on a Maybe:
//
//	var v int
//	switch m := x.Match(); m {
//	case m.Just(&v):
//	    fmt.Println(v)
//	case m.Nothing():
//	    fmt.Println("nothing")
//	}
//
// Just(&v) fills v only if it matches.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// Match returns a Matcher for m.
func (m Maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

// matcher is handed out as a pointer: switch compares matchers with ==, which
// must not depend on T being comparable.
type matcher[T any] struct {
	m Maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
