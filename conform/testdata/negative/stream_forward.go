package negative

import (
	"github.com/npillmayer/konzept"
	"github.com/npillmayer/konzept/streams"
)

// A rune stream can neither rewind nor fork; one pass is all there is.
var _ konzept.ForwardIterator[*streams.RuneIterator, rune] = (*streams.RuneIterator)(nil)
