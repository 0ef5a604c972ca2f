/*
Package conform checks iterator capabilities of Go types.

The interfaces of the konzept root package catch capability violations at
compile time, but their error messages stop at "missing method". This package
trades the compiler for the go/types machinery and answers the question a
compile error cannot: which capability level breaks, at which requirement,
and what would fulfilling it take.

Checking a Capability

Candidate types live in regular Go packages. A universe loads and type-checks
them, then candidates are picked out with a type expression:

	u, err := conform.Load("github.com/npillmayer/konzept/...")
	T, err := u.Resolve("*singlylinkedlist.Iterator[int]")
	report, err := conform.Check(T, konzept.Bidirectional)

Checking walks the capability levels from weakest to strongest and stops at
the first level with violations. Diagnostics name the requirement, not just
the method:

	for _, v := range report.Violations() {
		fmt.Println(v)
	}

	// Output:
	bidirectional iterator: missing method Prev() bool; steps back to the predecessor position

Audit does the same without stopping early, listing the violations of every
level up to the target. Candidates without iterator shape do not get this
far: extraction of the associated types fails beforehand, with an error
wrapping ErrNotIterator. Capability diagnostics are reserved for types which
are at least iterators.

Classification

Classify inverts the question: instead of verifying a claimed capability, it
determines every capability a candidate provides.

	profile, err := conform.Classify(T)
	fmt.Println(profile.Tag())

	// Output:
	forward iterator

Must-Not-Compile Assertions

A universe doubles as an importer for the go/types type checker. Checking a
candidate snippet with it turns "this must not compile" from a comment in
disabled test code into a verified assertion; the negative fixtures under
testdata are checked this way.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package conform

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'konzept.conform'.
func tracer() tracing.Trace {
	return tracing.Select("konzept.conform")
}
