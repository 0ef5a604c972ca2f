package conform

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/konzept"
)

// === Capability Checking ===================================================

// Check verifies that a candidate type provides capability c. Capability
// levels are checked from weakest to strongest, and checking stops at the
// first level with violations: requirements of stronger levels are not worth
// diagnosing as long as a weaker level already fails. Use Audit for an
// exhaustive listing.
//
// The only error condition is a candidate without iterator shape, reported as
// an error wrapping ErrNotIterator. A missing capability is not an error but
// a check result, found in the report.
func Check(t types.Type, c konzept.Capability) (*Report, error) {
	return check(t, c, false)
}

// Audit verifies capability c like Check does, but does not stop at the first
// failing level: the report lists the violations of every level up to c.
func Audit(t types.Type, c konzept.Capability) (*Report, error) {
	return check(t, c, true)
}

func check(t types.Type, c konzept.Capability, exhaustive bool) (*Report, error) {
	if c == konzept.Invalid {
		return nil, fmt.Errorf("cannot check for capability %s", c)
	}
	var tr Traits
	if c.IsIterator() {
		var err error
		if tr, err = ExtractTraits(t); err != nil {
			return nil, err
		}
	} else {
		tr = extract(t) // primitives apply to non-iterators, too
	}
	r := newReport(t, c, tr)
	for _, lvl := range levels(c) {
		failed := false
		for _, req := range descriptors[lvl].Reqs {
			if v, ok := verify(tr, lvl, req); !ok {
				r.violations.Add(v)
				failed = true
			}
		}
		if !failed {
			r.Satisfied = append(r.Satisfied, lvl)
			continue
		}
		if r.Failed == konzept.Invalid {
			r.Failed = lvl
		}
		tracer().Debugf("%s fails %s", r.Candidate, lvl)
		if !exhaustive {
			break
		}
	}
	return r, nil
}

// verify checks a single requirement against the candidate's method set. ok
// is true if the requirement holds. For violated requirements the returned
// violation carries the offending signature, if a method of the required name
// exists at all.
func verify(tr Traits, lvl konzept.Capability, req Requirement) (Violation, bool) {
	if req.Kind == ReqImplicit {
		return Violation{}, true
	}
	ms := types.NewMethodSet(tr.Iter)
	got := ""
	for _, sig := range req.sigs {
		sel := ms.Lookup(nil, sig.name)
		if sel == nil {
			continue
		}
		fsig, ok := sel.Obj().Type().(*types.Signature)
		if !ok {
			continue
		}
		if tr.matches(fsig, sig) {
			return Violation{}, true
		}
		got = sig.name + strings.TrimPrefix(types.TypeString(fsig, shortQualifier), "func")
	}
	return Violation{Cap: lvl, Req: req, Got: got}, false
}

// --- Classification --------------------------------------------------------

// Profile is the outcome of classifying a candidate type: the complete set of
// capabilities it provides, with no target capability given up front.
type Profile struct {
	Candidate string             // candidate type, printed
	Best      konzept.Capability // strongest satisfied capability of the iterator chain
	Traits    Traits             // the candidate's associated types
	caps      *treeset.Set
}

// Classify determines every capability a candidate type provides and the
// strongest iterator category it falls into. A capability counts as provided
// only if all of its prerequisites are provided as well. Candidates without
// iterator shape return an error wrapping ErrNotIterator.
func Classify(t types.Type) (*Profile, error) {
	tr, err := ExtractTraits(t)
	if err != nil {
		return nil, err
	}
	p := &Profile{
		Candidate: TypeString(t),
		Best:      konzept.Invalid,
		Traits:    tr,
		caps:      treeset.NewWith(capabilityComparator),
	}
	for _, c := range konzept.All() {
		if !p.prereqsMet(c) {
			continue
		}
		satisfied := true
		for _, req := range descriptors[c].Reqs {
			if _, ok := verify(tr, c, req); !ok {
				satisfied = false
				break
			}
		}
		if !satisfied {
			continue
		}
		p.caps.Add(c)
		if c.IsIterator() {
			p.Best = c
		}
	}
	tracer().Infof("classified %s as %s", p.Candidate, p.Tag())
	return p, nil
}

func (p *Profile) prereqsMet(c konzept.Capability) bool {
	for _, pre := range c.Requires() {
		if !p.caps.Contains(pre) {
			return false
		}
	}
	return true
}

// Has returns true if the candidate provides capability c.
func (p *Profile) Has(c konzept.Capability) bool {
	return p.caps.Contains(c)
}

// Capabilities returns every capability the candidate provides, ordered from
// weakest to strongest.
func (p *Profile) Capabilities() []konzept.Capability {
	caps := make([]konzept.Capability, 0, p.caps.Size())
	it := p.caps.Iterator()
	for it.Next() {
		caps = append(caps, it.Value().(konzept.Capability))
	}
	return caps
}

// Tag produces a one-line classification: the strongest iterator category,
// followed by the primitive capabilities not already implied by it.
func (p *Profile) Tag() string {
	if p.Best == konzept.Invalid {
		return "no iterator"
	}
	tag := p.Best.String()
	var extra []string
	for _, c := range []konzept.Capability{konzept.DefaultConstructible, konzept.EqualityComparable} {
		if p.Has(c) && !p.Best.Implies(c) {
			extra = append(extra, c.String())
		}
	}
	if len(extra) > 0 {
		tag += " (" + strings.Join(extra, ", ") + ")"
	}
	return tag
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s: %s", p.Candidate, p.Tag())
}

// We need this for the set of capabilities. It sorts capabilities from
// weakest to strongest.
func capabilityComparator(c1, c2 interface{}) int {
	a := c1.(konzept.Capability)
	b := c2.(konzept.Capability)
	return utils.IntComparator(int(a), int(b))
}
