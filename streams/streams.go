/*
Package streams provides iterators over one-directional input streams,
together with an output-only sink.

Stream positions are consumed as they are read: there is no rewinding and no
second pass. Stream iterators therefore sit at exactly the input-iterator
capability level. Two stream iterators compare equal if both are exhausted,
which makes the end of input a position of its own, or if they are the same
live position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package streams

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/konzept"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'konzept.streams'.
func tracer() tracing.Trace {
	return tracing.Select("konzept.streams")
}

// --- Spans ------------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. It denotes a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Rune iterator ----------------------------------------------------------

// RuneIterator reads runes off an io.RuneReader, one per step. It is an input
// iterator: neither restartable nor cloneable, input read once is gone.
// Value is only valid after a Next returning true.
type RuneIterator struct {
	reader io.RuneReader
	curr   rune
	start  uint64 // byte index of curr
	end    uint64 // byte index just behind curr
	eos    bool
	err    error
}

func assertRuneIteratorImplementation() {
	var _ konzept.InputIterator[*RuneIterator, rune] = (*RuneIterator)(nil)
	var _ = konzept.AssertInput[*RuneIterator, rune]()
}

// NewRuneIterator creates an iterator reading off r.
func NewRuneIterator(r io.RuneReader) *RuneIterator {
	return &RuneIterator{reader: r}
}

// Next reads the next rune and returns true if one is available. At the end of
// input, and after a read error, Next returns false; the two cases are told
// apart by Err.
func (it *RuneIterator) Next() bool {
	if it.eos {
		return false
	}
	r, sz, err := it.reader.ReadRune()
	if err == io.EOF {
		tracer().Debugf("rune stream reached end of input")
		it.eos = true
		it.curr = utf8.RuneError
		return false
	} else if err != nil {
		it.err = fmt.Errorf("stream iterator cannot read (%w)", err)
		tracer().Errorf("stream iterator: %v", err)
		it.eos = true
		it.curr = utf8.RuneError
		return false
	}
	tracer().Debugf("read rune %#U", r)
	it.curr = r
	it.start = it.end
	it.end += uint64(sz)
	return true
}

// Value returns the current rune.
func (it *RuneIterator) Value() rune {
	return it.curr
}

// Equal returns true if both positions are exhausted, or if both are the same
// live position. All ends of input are one and the same position.
func (it *RuneIterator) Equal(other *RuneIterator) bool {
	if it.eos || other.eos {
		return it.eos && other.eos
	}
	return it == other
}

// Span returns the byte span of the current rune within the input.
func (it *RuneIterator) Span() Span {
	return Span{it.start, it.end}
}

// Err returns the first non-EOF error the iterator ran into, if any.
func (it *RuneIterator) Err() error {
	return it.err
}
