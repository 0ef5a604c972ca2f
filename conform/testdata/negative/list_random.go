package negative

import (
	"github.com/npillmayer/konzept"
	"github.com/npillmayer/konzept/lists/doublylinkedlist"
)

// A doubly linked list steps one position at a time; it cannot jump.
var _ konzept.RandomAccessIterator[*doublylinkedlist.Iterator[int], int] = (*doublylinkedlist.Iterator[int])(nil)
