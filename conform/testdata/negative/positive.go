package negative

import (
	"github.com/npillmayer/konzept"
	"github.com/npillmayer/konzept/lists/arraylist"
	"github.com/npillmayer/konzept/lists/doublylinkedlist"
	"github.com/npillmayer/konzept/streams"
)

// The control group: these assertions hold and keep the harness honest.
var _ konzept.RandomAccessIterator[*arraylist.Iterator[string], string] = (*arraylist.Iterator[string])(nil)
var _ konzept.BidirectionalIterator[*doublylinkedlist.Iterator[int], int] = (*doublylinkedlist.Iterator[int])(nil)
var _ konzept.InputIterator[*streams.RuneIterator, rune] = (*streams.RuneIterator)(nil)
var _ konzept.Iterator = (*streams.Sink[int])(nil)
