package negative

import "github.com/npillmayer/konzept"

type marker struct{}

// A bare struct does not know how to compare itself.
var _ konzept.Equalable[marker] = marker{}
