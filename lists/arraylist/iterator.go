package arraylist

import (
	"github.com/npillmayer/konzept"
)

// Iterator is a stateful position within an array list. A fresh iterator
// points before the first element; Next moves it onto the elements one by one.
// Value and At panic when no element is current, i.e. before the first Next and
// after Next returned false.
type Iterator[T any] struct {
	list  *List[T]
	index int
}

func assertIteratorImplementation() {
	var _ konzept.RandomAccessIterator[*Iterator[int], int] = (*Iterator[int])(nil)
	var _ = konzept.AssertRandomAccess[*Iterator[int], int]()
}

// Iterator returns a new iterator positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l, index: -1}
}

// Next moves the iterator to the next element and returns true if there is a
// next element in the list. From a position outside of the list's range, as
// left behind by Advance, Next reports false.
func (it *Iterator[T]) Next() bool {
	if it.index < it.list.Size() {
		it.index++
	}
	return it.list.withinRange(it.index)
}

// Prev moves the iterator to the previous element and returns true if there is
// a previous element in the list. From a position outside of the list's range,
// as left behind by Advance, Prev reports false.
func (it *Iterator[T]) Prev() bool {
	if it.index >= 0 {
		it.index--
	}
	return it.list.withinRange(it.index)
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return it.list.elements[it.index]
}

// Index returns the current index.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Equal returns true if both iterators denote the same position of the same
// list.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.list == other.list && it.index == other.index
}

// Begin resets the iterator to its start state, before the first element.
func (it *Iterator[T]) Begin() {
	it.index = -1
}

// End moves the iterator past the last element.
func (it *Iterator[T]) End() {
	it.index = it.list.Size()
}

// First moves the iterator onto the first element and returns true if the list
// is not empty.
func (it *Iterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

// Last moves the iterator onto the last element and returns true if the list
// is not empty.
func (it *Iterator[T]) Last() bool {
	it.End()
	return it.Prev()
}

// Clone returns an independent copy of the iterator, denoting the same
// position.
func (it *Iterator[T]) Clone() *Iterator[T] {
	c := *it
	return &c
}

// Advance moves the iterator by a signed distance in one step. Advancing
// outside of the list's range is allowed; the iterator then has no current
// element until moved back.
func (it *Iterator[T]) Advance(n int) {
	it.index += n
}

// Offset returns a new iterator, n positions away.
func (it *Iterator[T]) Offset(n int) *Iterator[T] {
	c := *it
	c.index += n
	return &c
}

// Distance returns the signed distance from other to this position.
func (it *Iterator[T]) Distance(other *Iterator[T]) int {
	return it.index - other.index
}

// At returns the element n positions away from the current one.
func (it *Iterator[T]) At(n int) T {
	return it.list.elements[it.index+n]
}

// Less returns true if this position precedes the other one.
func (it *Iterator[T]) Less(other *Iterator[T]) bool {
	return it.index < other.index
}
