package konzept

// --- Primitive capabilities ------------------------------------------------

// Equalable is the interface of types comparable to other instances of
// themselves. We cannot express "the implementing type" directly in Go, thus
// implementors name themselves as the type parameter:
//
//    func (it *Iterator[T]) Equal(other *Iterator[T]) bool
//
// Equal must not modify its receiver nor its argument. For value types
// comparable with the built-in == operator there is AssertComparable instead.
type Equalable[I any] interface {
	Equal(other I) bool
}

// Restartable is the interface of types which can rewind to a pristine start
// state without further input, making them default-constructible in spirit:
// a freshly created instance and a restarted one are indistinguishable.
// Types whose zero value is not a usable start state will not offer Begin.
type Restartable interface {
	Begin()
}

// Cloneable is the interface of types which can produce an independent copy of
// themselves. For iterators, a clone continues to yield the remainder of the
// sequence no matter how the original moves on, which is the multi-pass
// guarantee separating forward from input iteration.
type Cloneable[I any] interface {
	Clone() I
}

// --- The iterator capability chain -----------------------------------------

// Iterator is the minimal structural shape shared by every iterator category:
// a position which can advance. Next moves to the successor position and
// reports whether an element is current afterwards. A fresh iterator starts
// out before the first element, so iteration is
//
//    for it.Next() {
//        … it.Value() …
//    }
//
// Dereferencing is deliberately not part of the base shape: reading arrives
// with InputIterator, while output-only positions provide Set instead and
// still count as iterators.
type Iterator interface {
	Next() bool
}

// InputIterator is the capability set for single-pass reading: an iterator
// which can be compared to other positions of its kind and yields elements.
// Value returns the current element; it must only be called after a Next
// returning true. Two input iterators compare equal if they denote the same
// position, with all exhausted iterators of one source being equal.
type InputIterator[I, T any] interface {
	Iterator
	Equalable[I]
	Value() T
}

// ForwardIterator adds the multi-pass guarantee to InputIterator: positions
// can be cloned and revisited, and the pristine start state can be restored.
// Everything a forward iterator yielded once, a clone taken early will yield
// again.
type ForwardIterator[I, T any] interface {
	InputIterator[I, T]
	Restartable
	Cloneable[I]
}

// BidirectionalIterator adds backward movement to ForwardIterator. Prev moves
// to the predecessor position and reports whether an element is current
// afterwards; it is the mirror image of Next.
type BidirectionalIterator[I, T any] interface {
	ForwardIterator[I, T]
	Prev() bool
}

// RandomAccessIterator adds constant-time jumps, distances and position
// ordering to BidirectionalIterator:
//
//    Advance(n)    move by a signed distance, in one step
//    Offset(n)     a new iterator, n positions away
//    Distance(j)   signed distance from j to this position
//    At(n)         the element n positions away
//    Less(j)       position ordering; j.Less and Equal induce >, <=, >=
//
// Distances are counted in elements and represented as int throughout.
type RandomAccessIterator[I, T any] interface {
	BidirectionalIterator[I, T]
	Advance(n int)
	Offset(n int) I
	Distance(other I) int
	At(n int) T
	Less(other I) bool
}
