package konzept

import "fmt"

// --- Capabilities ----------------------------------------------------------

// Capability denotes a named set of structural requirements which a type may or
// may not satisfy. Capabilities form a refinement hierarchy: a type satisfying
// RandomAccess will satisfy Bidirectional, Forward, Input and Basic as well.
// The two primitive capabilities DefaultConstructible and EqualityComparable
// sit outside of the iterator chain; they are prerequisites for Forward and
// Input, respectively, but carry no relation to each other.
type Capability int8

// Capability sets checkable by this module. Basic is the minimal structural
// shape common to all iterators; Input…RandomAccess mirror the classic iterator
// taxonomy.
const (
	Invalid Capability = iota // no capability; result of a failed classification
	DefaultConstructible
	EqualityComparable
	Basic
	Input
	Forward
	Bidirectional
	RandomAccess
)

// prereqs holds the direct prerequisites for each capability, i.e. the edges of
// the refinement DAG. Transitive closure is taken by Implies.
var prereqs = map[Capability][]Capability{
	DefaultConstructible: nil,
	EqualityComparable:   nil,
	Basic:                nil,
	Input:                {Basic, EqualityComparable},
	Forward:              {Input, DefaultConstructible},
	Bidirectional:        {Forward},
	RandomAccess:         {Bidirectional},
}

var capnames = map[Capability]string{
	Invalid:              "invalid",
	DefaultConstructible: "default-constructible",
	EqualityComparable:   "equality-comparable",
	Basic:                "iterator",
	Input:                "input iterator",
	Forward:              "forward iterator",
	Bidirectional:        "bidirectional iterator",
	RandomAccess:         "random-access iterator",
}

func (c Capability) String() string {
	if name, ok := capnames[c]; ok {
		return name
	}
	return fmt.Sprintf("capability(%d)", int8(c))
}

// Requires returns the direct prerequisites of a capability. Callers must not
// modify the returned slice.
func (c Capability) Requires() []Capability {
	return prereqs[c]
}

// Implies returns true if satisfying c implies satisfying other, i.e. if other
// is reachable from c in the refinement DAG. Every capability implies itself.
func (c Capability) Implies(other Capability) bool {
	if c == other {
		return true
	}
	for _, p := range prereqs[c] {
		if p.Implies(other) {
			return true
		}
	}
	return false
}

// IsIterator returns true for the capabilities of the iterator chain, false for
// the primitives (and for Invalid).
func (c Capability) IsIterator() bool {
	return c.Implies(Basic)
}

// All returns every capability, ordered from weakest to strongest. Prerequisites
// come before the capabilities requiring them, so iterating over All and
// stopping at the first failure yields the earliest unmet capability set.
func All() []Capability {
	return []Capability{
		DefaultConstructible, EqualityComparable,
		Basic, Input, Forward, Bidirectional, RandomAccess,
	}
}

// ParseCapability converts a capability name, as produced by String, into a
// Capability. Short forms without the "iterator" noun ("input", "random-access")
// are accepted, too.
func ParseCapability(s string) (Capability, error) {
	for c, name := range capnames {
		if c == Invalid {
			continue
		}
		if s == name {
			return c, nil
		}
	}
	switch s {
	case "basic":
		return Basic, nil
	case "input":
		return Input, nil
	case "forward":
		return Forward, nil
	case "bidirectional", "bidi":
		return Bidirectional, nil
	case "random-access", "random":
		return RandomAccess, nil
	case "default":
		return DefaultConstructible, nil
	case "equality", "equal":
		return EqualityComparable, nil
	}
	return Invalid, fmt.Errorf("no such capability: %q", s)
}
