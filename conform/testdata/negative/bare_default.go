package negative

import "github.com/npillmayer/konzept"

type marker struct{}

// A bare struct has no start state to rewind to.
var _ konzept.Restartable = marker{}
