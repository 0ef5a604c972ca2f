/*
Package doublylinkedlist implements a list where every element links to its
successor and its predecessor.

Positions within a doubly-linked list are bidirectional: its iterator moves
forward and backward, one element at a time. There is no constant-time jumping
and no position arithmetic; for that, see package arraylist.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package doublylinkedlist

import (
	"fmt"
	"iter"
	"strings"
)

// List holds elements as a chain of doubly-linked nodes.
type List[T any] struct {
	first *element[T]
	last  *element[T]
	size  int
}

type element[T any] struct {
	value T
	prev  *element[T]
	next  *element[T]
}

// New instantiates a list and adds the given values, if any, to it.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	if len(values) > 0 {
		l.Add(values...)
	}
	return l
}

// Add appends values to the end of the list.
func (l *List[T]) Add(values ...T) {
	for _, value := range values {
		e := &element[T]{value: value, prev: l.last}
		if l.size == 0 {
			l.first = e
		} else {
			l.last.next = e
		}
		l.last = e
		l.size++
	}
}

// Prepend inserts values at the front of the list, keeping their order.
func (l *List[T]) Prepend(values ...T) {
	for i := len(values) - 1; i >= 0; i-- {
		e := &element[T]{value: values[i], next: l.first}
		if l.size == 0 {
			l.last = e
		} else {
			l.first.prev = e
		}
		l.first = e
		l.size++
	}
}

// Get returns the element at index, together with true if the index is within
// the list's range. Access by index walks the chain and costs linear time.
func (l *List[T]) Get(index int) (T, bool) {
	if !l.withinRange(index) {
		var none T
		return none, false
	}
	e := l.first
	for i := 0; i < index; i++ {
		e = e.next
	}
	return e.value, true
}

// Values returns all elements of the list as a freshly allocated slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for e := l.first; e != nil; e = e.next {
		values = append(values, e.value)
	}
	return values
}

// All returns an index/element sequence over the list, usable with range.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for e := l.first; e != nil; e = e.next {
			if !yield(i, e.value) {
				return
			}
			i++
		}
	}
}

// Size returns the number of elements within the list.
func (l *List[T]) Size() int {
	return l.size
}

// Empty returns true if the list does not contain any elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	l.first = nil
	l.last = nil
	l.size = 0
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("DoublyLinkedList [")
	for e := l.first; e != nil; e = e.next {
		if e != l.first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e.value)
	}
	b.WriteString("]")
	return b.String()
}

func (l *List[T]) withinRange(index int) bool {
	return index >= 0 && index < l.size
}
