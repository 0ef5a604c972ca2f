/*
Package krepl/main provides an interactive command line tool (K.REPL)
for exploring iterator capabilities of Go types. Users load packages into
a universe of candidate types, then check single capabilities, audit whole
capability chains, or let candidates be classified. Diagnostics arrive per
requirement, not as a compiler's "does not implement".


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'konzept.conform'
func tracer() tracing.Trace {
	return tracing.Select("konzept.conform")
}
