package negative

import (
	"github.com/npillmayer/konzept"
	"github.com/npillmayer/konzept/streams"
)

// Sinks accept values; there is nothing to read back.
var _ konzept.InputIterator[*streams.Sink[int], int] = (*streams.Sink[int])(nil)
