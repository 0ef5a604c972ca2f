package conform

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/konzept"
)

// === Reports ===============================================================

// Violation is a single unfulfilled requirement, attributed to the capability
// level imposing it.
type Violation struct {
	Cap konzept.Capability // level imposing the requirement
	Req Requirement        // the requirement not fulfilled
	Got string             // offending method signature; empty if missing entirely
}

func (v Violation) String() string {
	want := strings.Join(v.Req.Signatures(), " or ")
	if v.Got == "" {
		return fmt.Sprintf("%s: missing method %s; %s", v.Cap, want, v.Req.Expl)
	}
	return fmt.Sprintf("%s: method %s should be %s; %s", v.Cap, v.Got, want, v.Req.Expl)
}

// Report is the outcome of checking a candidate type for a capability. A
// report with Failed == konzept.Invalid attests the capability; otherwise
// Failed names the weakest capability level with violations.
type Report struct {
	Candidate  string               // candidate type, printed
	Target     konzept.Capability   // the capability checked for
	Failed     konzept.Capability   // weakest failing level; Invalid if none failed
	Satisfied  []konzept.Capability // levels found satisfied, weakest first
	Traits     Traits               // the candidate's associated types
	violations *arraylist.List
}

func newReport(t types.Type, c konzept.Capability, tr Traits) *Report {
	return &Report{
		Candidate:  TypeString(t),
		Target:     c,
		Failed:     konzept.Invalid,
		Traits:     tr,
		violations: arraylist.New(),
	}
}

// OK is true if the candidate provides the target capability.
func (r *Report) OK() bool {
	return r.Failed == konzept.Invalid
}

// Violations returns all recorded requirement violations, ordered from
// weakest to strongest capability level.
func (r *Report) Violations() []Violation {
	vs := make([]Violation, 0, r.violations.Size())
	it := r.violations.Iterator()
	for it.Next() {
		vs = append(vs, it.Value().(Violation))
	}
	return vs
}

func (r *Report) String() string {
	if r.OK() {
		return fmt.Sprintf("%s is a %s", r.Candidate, r.Target)
	}
	return fmt.Sprintf("%s is no %s: %d violations, first at %s",
		r.Candidate, r.Target, r.violations.Size(), r.Failed)
}

// Fingerprint returns a stable hash over the report's outcome, usable for
// detecting capability regressions over recompiles. Two reports fingerprint
// equal iff candidate, target, levels and violations all agree.
func (r *Report) Fingerprint() string {
	type flat struct {
		Candidate  string
		Target     string
		Failed     string
		Satisfied  []string
		Violations []string
	}
	f := flat{
		Candidate: r.Candidate,
		Target:    r.Target.String(),
		Failed:    r.Failed.String(),
	}
	for _, s := range r.Satisfied {
		f.Satisfied = append(f.Satisfied, s.String())
	}
	for _, v := range r.Violations() {
		f.Violations = append(f.Violations, v.String())
	}
	return fmt.Sprintf("%x", structhash.Sha1(f, 1))
}

// --- Type printing ---------------------------------------------------------

// TypeString prints a type with package paths abbreviated to the package
// name, *lists/arraylist.Iterator[int] printing as *arraylist.Iterator[int].
func TypeString(t types.Type) string {
	if t == nil {
		return "<nil>"
	}
	return types.TypeString(t, shortQualifier)
}

func shortQualifier(p *types.Package) string {
	return p.Name()
}
