package streams

import (
	"github.com/npillmayer/konzept"
)

// --- Sink -------------------------------------------------------------------

// Sink is an output-only position: values are written into it via Set and
// leave through the accept function. A sink has the basic iterator shape,
// since writing and advancing never fail on an output stream, but it is no
// input iterator, as there is nothing to read back.
type Sink[T any] struct {
	accept func(T)
	count  int
}

func assertSinkImplementation() {
	var _ konzept.Iterator = (*Sink[int])(nil)
	var _ konzept.Equalable[*Sink[int]] = (*Sink[int])(nil)
	var _ = konzept.AssertIterator[*Sink[int]]()
	var _ = konzept.AssertEqualable[*Sink[int]]()
}

// NewSink creates a sink forwarding every written value to accept. A nil
// accept discards the values.
func NewSink[T any](accept func(T)) *Sink[T] {
	return &Sink[T]{accept: accept}
}

// Collector creates a sink appending every written value to buf.
func Collector[T any](buf *[]T) *Sink[T] {
	return NewSink(func(v T) {
		*buf = append(*buf, v)
	})
}

// Next advances the sink. An output stream always has room, so Next never
// returns false.
func (s *Sink[T]) Next() bool {
	return true
}

// Set writes a value at the current position.
func (s *Sink[T]) Set(v T) {
	if s.accept != nil {
		s.accept(v)
	}
	s.count++
}

// Equal returns true if other is the same sink.
func (s *Sink[T]) Equal(other *Sink[T]) bool {
	return s == other
}

// Count returns the number of values written so far.
func (s *Sink[T]) Count() int {
	return s.count
}
