package negative

import (
	"github.com/npillmayer/konzept"
	"github.com/npillmayer/konzept/lists/singlylinkedlist"
)

// Singly linked nodes know their successor only.
var _ konzept.BidirectionalIterator[*singlylinkedlist.Iterator[rune], rune] = (*singlylinkedlist.Iterator[rune])(nil)
