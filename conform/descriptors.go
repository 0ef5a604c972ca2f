package conform

import (
	"fmt"
	"strings"

	"github.com/npillmayer/konzept"
)

// === Requirement Tables ====================================================

// ReqKind distinguishes how a requirement is verified.
type ReqKind int8

// Requirement kinds. Most requirements demand a method with a fixed
// signature; a handful are granted by Go language semantics and exist for
// documentation value only.
const (
	ReqMethod   ReqKind = iota // a named method with a fixed signature
	ReqOneOf                   // one method out of a set of alternatives
	ReqImplicit                // granted by Go semantics, never violated
)

// sym is a placeholder within a requirement signature. Placeholders are
// resolved against the candidate's traits during checking.
type sym int8

const (
	symIter  sym = iota + 1 // the candidate iterator type itself
	symValue                // the element type
	symDiff                 // the distance type
	symBool
)

func (s sym) String() string {
	switch s {
	case symIter:
		return "I"
	case symValue:
		return "T"
	case symDiff:
		return "int"
	case symBool:
		return "bool"
	}
	return "?"
}

// methodSig is the symbolic signature of a required method.
type methodSig struct {
	name    string
	params  []sym
	results []sym
}

func (m methodSig) String() string {
	var b strings.Builder
	b.WriteString(m.name)
	b.WriteByte('(')
	for i, p := range m.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	if len(m.results) == 1 {
		b.WriteString(" " + m.results[0].String())
	} else if len(m.results) > 1 {
		rs := make([]string, len(m.results))
		for i, r := range m.results {
			rs[i] = r.String()
		}
		b.WriteString(" (" + strings.Join(rs, ", ") + ")")
	}
	return b.String()
}

// Requirement is a single obligation a capability imposes on candidate types.
// Requirement names are unique over all capabilities, so diagnostics can
// refer to requirements by name.
type Requirement struct {
	Name string  // short requirement name
	Kind ReqKind // how the requirement is verified
	Expl string  // one-line explanation, included in diagnostics
	sigs []methodSig
}

// Signatures returns the acceptable method signatures of a requirement in
// symbolic form, with I standing for the candidate iterator type and T for
// its element type. Implicit requirements have none.
func (r Requirement) Signatures() []string {
	sigs := make([]string, len(r.sigs))
	for i, m := range r.sigs {
		sigs[i] = m.String()
	}
	return sigs
}

func (r Requirement) String() string {
	if r.Kind == ReqImplicit {
		return fmt.Sprintf("%s: %s", r.Name, r.Expl)
	}
	return fmt.Sprintf("%s: %s", r.Name, strings.Join(r.Signatures(), " or "))
}

// Descriptor lists the requirements a capability imposes on candidate types,
// not counting the requirements of its prerequisites. Use RequirementsFor for
// the full transitive set.
type Descriptor struct {
	Cap  konzept.Capability
	Reqs []Requirement
}

// descriptors is the one requirement table per capability. The table for the
// base capability carries the implicit requirements which in Go hold for
// every type: values can be copied, assigned, dropped for the collector and
// swapped. They take part in rendered requirement listings but cannot be
// violated.
var descriptors = map[konzept.Capability]Descriptor{
	konzept.Basic: {
		Cap: konzept.Basic,
		Reqs: []Requirement{
			{Name: "copyable", Kind: ReqImplicit,
				Expl: "iterator values can be copied; Go assignment copies"},
			{Name: "assignable", Kind: ReqImplicit,
				Expl: "iterator variables can be re-assigned"},
			{Name: "destructible", Kind: ReqImplicit,
				Expl: "dropped iterators are reclaimed by the collector"},
			{Name: "swappable", Kind: ReqImplicit,
				Expl: "i, j = j, i exchanges two iterators"},
			{Name: "increment", Kind: ReqMethod,
				Expl: "advances to the successor position",
				sigs: []methodSig{{name: "Next", results: []sym{symBool}}}},
			{Name: "dereference", Kind: ReqOneOf,
				Expl: "yields or accepts the element at the current position",
				sigs: []methodSig{
					{name: "Value", results: []sym{symValue}},
					{name: "Set", params: []sym{symValue}},
				}},
		},
	},
	konzept.DefaultConstructible: {
		Cap: konzept.DefaultConstructible,
		Reqs: []Requirement{
			{Name: "restart", Kind: ReqMethod,
				Expl: "rewinds to the pristine start state",
				sigs: []methodSig{{name: "Begin"}}},
		},
	},
	konzept.EqualityComparable: {
		Cap: konzept.EqualityComparable,
		Reqs: []Requirement{
			{Name: "equality", Kind: ReqMethod,
				Expl: "compares two positions of the same kind",
				sigs: []methodSig{{name: "Equal", params: []sym{symIter}, results: []sym{symBool}}}},
		},
	},
	konzept.Input: {
		Cap: konzept.Input,
		Reqs: []Requirement{
			{Name: "readable dereference", Kind: ReqMethod,
				Expl: "reads the element at the current position",
				sigs: []methodSig{{name: "Value", results: []sym{symValue}}}},
		},
	},
	konzept.Forward: {
		Cap: konzept.Forward,
		Reqs: []Requirement{
			{Name: "multi-pass", Kind: ReqMethod,
				Expl: "clones the position for revisiting the sequence",
				sigs: []methodSig{{name: "Clone", results: []sym{symIter}}}},
		},
	},
	konzept.Bidirectional: {
		Cap: konzept.Bidirectional,
		Reqs: []Requirement{
			{Name: "decrement", Kind: ReqMethod,
				Expl: "steps back to the predecessor position",
				sigs: []methodSig{{name: "Prev", results: []sym{symBool}}}},
		},
	},
	konzept.RandomAccess: {
		Cap: konzept.RandomAccess,
		Reqs: []Requirement{
			{Name: "jump", Kind: ReqMethod,
				Expl: "moves by a signed distance in a single step",
				sigs: []methodSig{{name: "Advance", params: []sym{symDiff}}}},
			{Name: "offset", Kind: ReqMethod,
				Expl: "creates an iterator a signed distance away",
				sigs: []methodSig{{name: "Offset", params: []sym{symDiff}, results: []sym{symIter}}}},
			{Name: "distance", Kind: ReqMethod,
				Expl: "measures the signed distance between two positions",
				sigs: []methodSig{{name: "Distance", params: []sym{symIter}, results: []sym{symDiff}}}},
			{Name: "indexed access", Kind: ReqMethod,
				Expl: "reads the element a signed distance away",
				sigs: []methodSig{{name: "At", params: []sym{symDiff}, results: []sym{symValue}}}},
			{Name: "position ordering", Kind: ReqMethod,
				Expl: "orders positions of the same sequence",
				sigs: []methodSig{{name: "Less", params: []sym{symIter}, results: []sym{symBool}}}},
		},
	},
}

// DescriptorFor returns the requirement descriptor for capability c, i.e. the
// requirements c introduces over its prerequisites.
func DescriptorFor(c konzept.Capability) (Descriptor, bool) {
	d, ok := descriptors[c]
	return d, ok
}

// RequirementsFor returns every requirement a candidate type has to fulfill
// for capability c, including the requirements of all prerequisites, ordered
// from weakest to strongest level. The requirement set of a capability is
// always a superset of the requirement sets of its prerequisites.
func RequirementsFor(c konzept.Capability) []Requirement {
	var reqs []Requirement
	for _, lvl := range levels(c) {
		reqs = append(reqs, descriptors[lvl].Reqs...)
	}
	return reqs
}

// levels expands capability c into the ordered list of capability levels to
// verify: the refinement chain up to c, with primitive prerequisites spliced
// in directly before the level introducing them. Checking levels in this
// order and stopping at the first failing one attributes a failure to the
// weakest capability the candidate misses.
func levels(c konzept.Capability) []konzept.Capability {
	if !c.IsIterator() {
		if c == konzept.Invalid {
			return nil
		}
		return []konzept.Capability{c}
	}
	var lvls []konzept.Capability
	for _, l := range konzept.All() {
		if !l.IsIterator() || !c.Implies(l) {
			continue
		}
		for _, p := range l.Requires() {
			if !p.IsIterator() {
				lvls = append(lvls, p)
			}
		}
		lvls = append(lvls, l)
	}
	return lvls
}
