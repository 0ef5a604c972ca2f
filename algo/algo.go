/*
Package algo implements iteration algorithms on top of the iterator capability
sets.

Algorithms accept any iterator satisfying the capability they name in their
constraint, and dispatch on stronger capabilities where that buys complexity:
Distance, for example, is a constant-time subtraction for random-access
positions and an element-wise walk for everything weaker. Unless an iterator
can clone itself, walking consumes it; the individual functions state how they
treat their argument.

The element type parameter comes first throughout, so call sites may name it
alone and leave the iterator type to inference:

   values := algo.Collect[int](list.Iterator())

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package algo

import (
	"iter"

	"github.com/npillmayer/konzept"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// tracer traces with key 'konzept.algo'.
func tracer() tracing.Trace {
	return tracing.Select("konzept.algo")
}

// Distance returns the number of positions between from and to. For
// random-access iterators this is a constant-time subtraction and the result
// may be negative. Weaker iterators walk forward until they reach to: the
// walk starts on a clone if from can be cloned and consumes from otherwise,
// and returns -1 if to is not reachable by advancing.
func Distance[T any, I konzept.InputIterator[I, T]](from, to I) int {
	if ra, ok := any(to).(konzept.RandomAccessIterator[I, T]); ok {
		tracer().Debugf("distance via random access")
		return ra.Distance(from)
	}
	if c, ok := any(from).(konzept.Cloneable[I]); ok {
		from = c.Clone()
	}
	n := 0
	for !from.Equal(to) {
		moved := from.Next()
		n++
		if !moved {
			if from.Equal(to) {
				break
			}
			return -1
		}
	}
	return n
}

// Advance moves the iterator by n positions, in one step for random-access
// iterators and step by step otherwise. Negative distances need backward
// mobility; Advance panics if n is negative and the iterator cannot move
// backward. Advancing stops silently at the end of the sequence.
func Advance[I konzept.Iterator](it I, n int) {
	if ra, ok := any(it).(interface{ Advance(n int) }); ok {
		tracer().Debugf("advance via random access")
		ra.Advance(n)
		return
	}
	if n < 0 {
		bi, ok := any(it).(interface{ Prev() bool })
		if !ok {
			panic("cannot advance backward: iterator has no Prev")
		}
		for ; n < 0; n++ {
			if !bi.Prev() {
				return
			}
		}
		return
	}
	for ; n > 0; n-- {
		if !it.Next() {
			return
		}
	}
}

// Find advances the iterator until it yields want, and returns true if it did.
// The search starts behind the current position; on success the iterator is
// parked on the match.
func Find[T comparable, I konzept.InputIterator[I, T]](it I, want T) bool {
	for it.Next() {
		if it.Value() == want {
			return true
		}
	}
	return false
}

// Contains reports whether the remainder of the sequence holds want. Cloneable
// iterators are left untouched; single-pass iterators are consumed up to the
// match.
func Contains[T comparable, I konzept.InputIterator[I, T]](it I, want T) bool {
	if c, ok := any(it).(konzept.Cloneable[I]); ok {
		it = c.Clone()
	}
	return Find(it, want)
}

// Count consumes the iterator and returns how often it yielded want.
func Count[T comparable, I konzept.InputIterator[I, T]](it I, want T) int {
	n := 0
	for it.Next() {
		if it.Value() == want {
			n++
		}
	}
	return n
}

// Collect drains the iterator into a slice.
func Collect[T any, I konzept.InputIterator[I, T]](it I) []T {
	var values []T
	for it.Next() {
		values = append(values, it.Value())
	}
	return values
}

// Seq adapts the iterator to a range-able sequence. Ranging consumes the
// iterator.
func Seq[T any, I konzept.InputIterator[I, T]](it I) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Copy drains src into dst, which may be any output position accepting T,
// e.g. a streams.Sink. It returns the number of values written.
func Copy[T any, I konzept.InputIterator[I, T], O interface {
	Next() bool
	Set(v T)
}](src I, dst O) int {
	n := 0
	for src.Next() {
		dst.Set(src.Value())
		n++
		if !dst.Next() {
			break
		}
	}
	return n
}

// Equal consumes both iterators and reports whether they yield the same
// elements in the same order, exhausting together.
func Equal[T comparable, I konzept.InputIterator[I, T]](a, b I) bool {
	for {
		an, bn := a.Next(), b.Next()
		if an != bn {
			return false
		}
		if !an {
			return true
		}
		if a.Value() != b.Value() {
			return false
		}
	}
}

// Max consumes the iterator and returns the largest element, with false if the
// sequence was empty.
func Max[T constraints.Ordered, I konzept.InputIterator[I, T]](it I) (T, bool) {
	var max T
	if !it.Next() {
		return max, false
	}
	max = it.Value()
	for it.Next() {
		if v := it.Value(); v > max {
			max = v
		}
	}
	return max, true
}

// Min consumes the iterator and returns the smallest element, with false if
// the sequence was empty.
func Min[T constraints.Ordered, I konzept.InputIterator[I, T]](it I) (T, bool) {
	var min T
	if !it.Next() {
		return min, false
	}
	min = it.Value()
	for it.Next() {
		if v := it.Value(); v < min {
			min = v
		}
	}
	return min, true
}

// LowerBound performs a binary search over the n elements beginning at the
// iterator's current position, which must be sorted ascending. It returns the
// smallest offset k with it.At(k) >= want, or n if there is none. The iterator
// does not move.
func LowerBound[T constraints.Ordered, I konzept.RandomAccessIterator[I, T]](it I, n int, want T) int {
	lo, hi := 0, n
	for lo < hi {
		mid := lo + (hi-lo)/2
		if it.At(mid) < want {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
