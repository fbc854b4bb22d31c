package vector

import (
	"github.com/npillmayer/monadic/maybe"
)

// Vector is an immutable persistent vector. The zero value is an empty vector,
// ready to use.
type Vector[T any] struct {
	props
	length uint32
	tail   []T
	root   *vnode[T]
}

// Immutable creates an empty vector with options, if you need any.
// Use it like this:
//
//	vec := vector.Immutable[int](vector.BitsPerLevel(3))
//	vec = vec.Push(42)
//	vec.Get(0)   // returns 42
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	v.props = v.props.init()
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to set the degree of the nodes in the vector's trie.
// The degree will be 2^n. Accepted values for n are [1…5]; default is 5, i.e.
// a degree of 32.
//
// Use it like this:
//
//	vec := vector.Immutable[int](BitsPerLevel(2))
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n < 1 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return newProps(uint32(n))
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in v.
func (v Vector[T]) Len() int {
	return int(v.length)
}

// Get returns the element at position i. It panics if i is out of range.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && i < v.Len(), "vector index out of bounds: %d with length %d", i, v.length)
	return v.leafsFor(uint32(i))[uint32(i)&v.mask]
}

// Last returns the last element of v, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if v.length == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Set returns a copy of v with the element at position i replaced by value.
// It panics if i is out of range.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && i < v.Len(), "vector index out of bounds: %d with length %d", i, v.length)
	u := uint32(i)
	if u >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[u&v.mask] = value
		return Vector[T]{length: v.length, props: v.props, root: v.root, tail: newTail}
	}
	newRoot := v.assoc(v.shift, v.root, u, value)
	return Vector[T]{length: v.length, props: v.props, root: newRoot, tail: v.tail}
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if !v.tailFull() { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{length: v.length + 1, props: v.props, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into tree
	leaf := newLeaf(v.tail)
	newTail := []T{value}
	if (v.length >> v.bits) > (1 << v.shift) { // root is full ⇒ grow by one level
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.bits, v.degree, leaf)
		tracer().Debugf("vector root overflow at length %d, new shift = %d", v.length, v.shift+v.bits)
		return Vector[T]{length: v.length + 1, props: v.props.withShift(v.shift + v.bits),
			root: newRoot, tail: newTail}
	}
	newRoot := v.pushLeaf(v.shift, v.root, leaf)
	return Vector[T]{length: v.length + 1, props: v.props, root: newRoot, tail: newTail}
}

// Append returns a copy of v with values appended, in order.
func (v Vector[T]) Append(values ...T) Vector[T] {
	for _, value := range values {
		v = v.Push(value)
	}
	return v
}

// Slice returns the elements of v as a freshly allocated slice.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.length)
	for i := uint32(0); i < v.length; {
		leafs := v.leafsFor(i)
		s = append(s, leafs...)
		i += uint32(len(leafs))
	}
	return s
}

// --- Internals -------------------------------------------------------------

// leafsFor returns the bucket of leafs containing index i.
func (v Vector[T]) leafsFor(i uint32) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	return node.leafs
}

// pushLeaf inserts leaf as the new rightmost leaf below parent, copying the path.
// parent may be nil for a vector which has never outgrown its tail.
func (v Vector[T]) pushLeaf(level uint32, parent *vnode[T], leaf *vnode[T]) *vnode[T] {
	var node *vnode[T]
	if parent == nil {
		node = emptyNode[T](v.degree)
	} else {
		node = parent.clone()
	}
	subidx := ((v.length - 1) >> level) & v.mask
	if level == v.bits {
		node.children[subidx] = leaf
	} else if child := node.children[subidx]; child != nil {
		node.children[subidx] = v.pushLeaf(level-v.bits, child, leaf)
	} else {
		node.children[subidx] = newPath(level-v.bits, v.bits, v.degree, leaf)
	}
	return node
}

// assoc replaces the leaf at index i below node, copying the path.
func (v Vector[T]) assoc(level uint32, node *vnode[T], i uint32, value T) *vnode[T] {
	n := node.clone()
	if level == 0 {
		n.leafs[i&v.mask] = value
		return n
	}
	subidx := (i >> level) & v.mask
	n.children[subidx] = v.assoc(level-v.bits, node.children[subidx], i, value)
	return n
}

// tailOffset is the index of the first element held in the tail.
func (v Vector[T]) tailOffset() uint32 {
	if v.length < v.degree {
		return 0
	}
	return (v.length - 1) &^ v.mask
}

func (v Vector[T]) tailFull() bool {
	if v.length-v.tailOffset() < v.degree {
		return false
	}
	tracer().Debugf("tail is full: %v", v.tail)
	return true
}
