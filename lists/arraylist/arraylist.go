/*
Package arraylist implements a list backed by a contiguous slice of elements.

Positions within an array list are random-access: its iterator can jump by
arbitrary signed distances, measure the distance between two positions and
order positions, each in constant time.

   l := arraylist.New("a", "b", "c")
   it := l.Iterator()
   for it.Next() {
       … it.Value() …
   }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arraylist

import (
	"fmt"
	"iter"
	"strings"
)

// List holds elements in a growing slice.
type List[T any] struct {
	elements []T
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
	l.elements = append(l.elements, values...)
}

// Get returns the element at index, together with true if the index is within
// the list's range.
func (l *List[T]) Get(index int) (T, bool) {
	if !l.withinRange(index) {
		var none T
		return none, false
	}
	return l.elements[index], true
}

// Remove deletes the element at index. Indexes outside the list's range are
// ignored.
func (l *List[T]) Remove(index int) {
	if !l.withinRange(index) {
		return
	}
	l.elements = append(l.elements[:index], l.elements[index+1:]...)
}

// Values returns all elements of the list as a freshly allocated slice.
func (l *List[T]) Values() []T {
	values := make([]T, len(l.elements))
	copy(values, l.elements)
	return values
}

// All returns an index/element sequence over the list, usable with range.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.elements {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Size returns the number of elements within the list.
func (l *List[T]) Size() int {
	return len(l.elements)
}

// Empty returns true if the list does not contain any elements.
func (l *List[T]) Empty() bool {
	return len(l.elements) == 0
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	l.elements = nil
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("ArrayList [")
	for i, v := range l.elements {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("]")
	return b.String()
}

func (l *List[T]) withinRange(index int) bool {
	return index >= 0 && index < len(l.elements)
}
