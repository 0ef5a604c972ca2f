/*
Package konzept provides capability checks for iterator types.

Konzept classifies types against the classic iterator taxonomy (iterator,
input, forward, bidirectional, random-access) plus two primitive capabilities
(default-constructible, equality-comparable). Checks come in two flavours,
both of them decided before a program ever runs:

In-source assertions declare conformance right where an iterator is defined.
A violation surfaces as a compile error naming the missing method:

   var _ konzept.ForwardIterator[*Iterator[int], int] = (*Iterator[int])(nil)

Analysis-time classification (package conform) inspects types of compiled
packages and produces targeted diagnostics, naming the capability set and the
specific structural requirement a candidate type misses.

Package structure is as follows:

■ conform: Package conform implements the go/types based classifier, with
requirement descriptors, associated-type extraction and reports.

■ lists: Packages arraylist, doublylinkedlist and singlylinkedlist provide
container types whose iterators sit at exactly the random-access,
bidirectional and forward capability levels.

■ streams: Package streams provides one-directional stream iterators (runes,
lexed tokens) and an output-only sink.

■ algo: Package algo implements iteration algorithms which dispatch on
iterator capabilities.

The base package contains the capability vocabulary used throughout all the
other packages: the Capability type with its refinement relation, and the
concept interfaces.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package konzept
