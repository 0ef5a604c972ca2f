package doublylinkedlist

import (
	"github.com/npillmayer/konzept"
)

// Iterator is a stateful position within a doubly-linked list. A fresh
// iterator points before the first element. Value panics when no element is
// current.
type Iterator[T any] struct {
	list    *List[T]
	index   int
	element *element[T]
}

func assertIteratorImplementation() {
	var _ konzept.BidirectionalIterator[*Iterator[int], int] = (*Iterator[int])(nil)
	var _ = konzept.AssertBidirectional[*Iterator[int], int]()
}

// Iterator returns a new iterator positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l, index: -1}
}

// Next moves the iterator to the next element and returns true if there is a
// next element in the list.
func (it *Iterator[T]) Next() bool {
	if it.index < it.list.size {
		it.index++
	}
	if it.index == it.list.size {
		it.element = nil
		return false
	}
	if it.element == nil {
		it.element = it.list.first
	} else {
		it.element = it.element.next
	}
	return true
}

// Prev moves the iterator to the previous element and returns true if there is
// a previous element in the list.
func (it *Iterator[T]) Prev() bool {
	if it.index >= 0 {
		it.index--
	}
	if it.index < 0 {
		it.element = nil
		return false
	}
	if it.element == nil {
		it.element = it.list.last
	} else {
		it.element = it.element.prev
	}
	return true
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return it.element.value
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
	it.element = nil
}

// End moves the iterator past the last element.
func (it *Iterator[T]) End() {
	it.index = it.list.size
	it.element = nil
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
