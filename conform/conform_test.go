package conform

import (
	"errors"
	"go/token"
	"go/types"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/konzept"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var universe struct {
	sync.Once
	u   *Universe
	err error
}

// loadUniverse loads the module's own packages once and shares them between
// tests; package loading is by far the slowest part of this suite.
func loadUniverse(t *testing.T) *Universe {
	t.Helper()
	universe.Do(func() {
		universe.u, universe.err = Load(
			"github.com/npillmayer/konzept",
			"github.com/npillmayer/konzept/lists/...",
			"github.com/npillmayer/konzept/streams",
		)
	})
	if universe.err != nil {
		t.Fatalf("cannot load the module's packages: %v", universe.err)
	}
	return universe.u
}

func resolve(t *testing.T, expr string) types.Type {
	t.Helper()
	T, err := loadUniverse(t).Resolve(expr)
	if err != nil {
		t.Fatalf("cannot resolve %s: %v", expr, err)
	}
	return T
}

func TestRequirementTables(t *testing.T) {
	seen := map[string]konzept.Capability{}
	for _, c := range konzept.All() {
		d, ok := DescriptorFor(c)
		if !ok {
			t.Fatalf("expected a requirement table for %s, have none", c)
		}
		if len(d.Reqs) == 0 {
			t.Errorf("expected requirements for %s, have none", c)
		}
		for _, req := range d.Reqs {
			if other, dup := seen[req.Name]; dup {
				t.Errorf("requirement %q occurs at %s and at %s", req.Name, other, c)
			}
			seen[req.Name] = c
			if req.Kind == ReqImplicit && c != konzept.Basic {
				t.Errorf("implicit requirement %q outside of the base level", req.Name)
			}
			if req.Kind != ReqImplicit && len(req.Signatures()) == 0 {
				t.Errorf("requirement %q has no method signature", req.Name)
			}
		}
	}
}

func TestRefinementAddsRequirements(t *testing.T) {
	for _, c := range konzept.All() {
		have := map[string]bool{}
		for _, req := range RequirementsFor(c) {
			have[req.Name] = true
		}
		for _, p := range c.Requires() {
			for _, req := range RequirementsFor(p) {
				if !have[req.Name] {
					t.Errorf("expected %s to keep requirement %q of %s, doesn't", c, req.Name, p)
				}
			}
		}
	}
}

func TestTraitsOfListIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	T := resolve(t, "*arraylist.Iterator[int]")
	tr, err := ExtractTraits(T)
	if err != nil {
		t.Fatalf("cannot extract traits: %v", err)
	}
	if TypeString(tr.Value) != "int" {
		t.Errorf("expected element type int, is %s", TypeString(tr.Value))
	}
	if tr.Mode() != "read-only" {
		t.Errorf("expected a read-only candidate, is %s", tr.Mode())
	}
	if TypeString(tr.Pointer()) != "*int" {
		t.Errorf("expected pointer type *int, is %s", TypeString(tr.Pointer()))
	}
}

func TestTraitsOfSink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	T := resolve(t, "*streams.Sink[int]")
	tr, err := ExtractTraits(T)
	if err != nil {
		t.Fatalf("cannot extract traits: %v", err)
	}
	if tr.Mode() != "write-only" {
		t.Errorf("expected a write-only candidate, is %s", tr.Mode())
	}
	if TypeString(tr.Value) != "int" {
		t.Errorf("expected the element type to come from Set, is %s", TypeString(tr.Value))
	}
}

func TestTraitsWantPointer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	T := resolve(t, "arraylist.Iterator[int]") // note the missing '*'
	_, err := ExtractTraits(T)
	if err == nil {
		t.Fatalf("expected the value type to be rejected, is accepted")
	}
	if !errors.Is(err, ErrNotIterator) {
		t.Errorf("expected the error to wrap ErrNotIterator, is %v", err)
	}
	if !strings.Contains(err.Error(), "*arraylist.Iterator[int]") {
		t.Errorf("expected the error to point at the pointer type, doesn't: %v", err)
	}
}

func TestCheckRandomAccessList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	T := resolve(t, "*arraylist.Iterator[int]")
	report, err := Check(T, konzept.RandomAccess)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !report.OK() {
		t.Fatalf("expected %s to check out, got %v", report.Candidate, report.Violations())
	}
	if len(report.Satisfied) != 7 {
		t.Errorf("expected all 7 levels satisfied, have %d", len(report.Satisfied))
	}
}

func TestCheckStopsAtWeakestGap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	T := resolve(t, "*streams.RuneIterator")
	report, err := Check(T, konzept.Forward)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if report.OK() {
		t.Fatalf("expected the stream iterator to miss forward capability")
	}
	if report.Failed != konzept.DefaultConstructible {
		t.Errorf("expected the check to stop at %s, stopped at %s",
			konzept.DefaultConstructible, report.Failed)
	}
	vs := report.Violations()
	if len(vs) != 1 {
		t.Fatalf("expected a single violation, have %d: %v", len(vs), vs)
	}
	if !strings.Contains(vs[0].String(), "Begin") {
		t.Errorf("expected the violation to name Begin, is %q", vs[0])
	}
	// the multi-pass gap exists as well, but sits behind the short-circuit
	if strings.Contains(vs[0].String(), "Clone") {
		t.Errorf("expected no Clone violation yet, have %q", vs[0])
	}
	input := false
	for _, s := range report.Satisfied {
		input = input || s == konzept.Input
	}
	if !input {
		t.Errorf("expected the input level to be satisfied, isn't")
	}
}

func TestCheckLinkedListGaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	D := resolve(t, "*doublylinkedlist.Iterator[int]")
	report, err := Check(D, konzept.RandomAccess)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if report.Failed != konzept.RandomAccess {
		t.Errorf("expected the check to stop at %s, stopped at %s",
			konzept.RandomAccess, report.Failed)
	}
	vs := report.Violations()
	if len(vs) != 5 {
		t.Errorf("expected 5 violations, have %d", len(vs))
	}
	if len(vs) > 0 && !strings.Contains(vs[0].String(), "Advance") {
		t.Errorf("expected the first violation to name Advance, is %q", vs[0])
	}
	//
	S := resolve(t, "*singlylinkedlist.Iterator[int]")
	report, err = Check(S, konzept.Bidirectional)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if report.Failed != konzept.Bidirectional {
		t.Errorf("expected the check to stop at %s, stopped at %s",
			konzept.Bidirectional, report.Failed)
	}
	vs = report.Violations()
	if len(vs) != 1 || !strings.Contains(vs[0].String(), "Prev") {
		t.Errorf("expected a single violation naming Prev, have %v", vs)
	}
}

func TestCheckSinkIsNoInputIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	T := resolve(t, "*streams.Sink[int]")
	report, err := Check(T, konzept.Input)
	if err != nil {
		t.Fatalf("expected the sink to have iterator shape, got %v", err)
	}
	if report.Failed != konzept.Input {
		t.Errorf("expected the check to stop at %s, stopped at %s",
			konzept.Input, report.Failed)
	}
	vs := report.Violations()
	if len(vs) != 1 || !strings.Contains(vs[0].String(), "Value") {
		t.Errorf("expected a violation naming Value, have %v", vs)
	}
	if report.Traits.Mode() != "write-only" {
		t.Errorf("expected a write-only candidate, is %s", report.Traits.Mode())
	}
}

func TestPrimitiveChecksAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	pkg := types.NewPackage("example/frozen", "frozen")
	name := types.NewTypeName(token.NoPos, pkg, "Snapshot", nil)
	T := types.NewNamed(name, types.NewStruct(nil, nil), nil)
	//
	restart, err := Check(T, konzept.DefaultConstructible)
	if err != nil {
		t.Fatalf("expected primitive checks to skip iterator shape, got %v", err)
	}
	equal, err := Check(T, konzept.EqualityComparable)
	if err != nil {
		t.Fatalf("expected primitive checks to skip iterator shape, got %v", err)
	}
	if restart.OK() || equal.OK() {
		t.Fatalf("expected both primitive checks to fail")
	}
	if restart.Failed != konzept.DefaultConstructible || equal.Failed != konzept.EqualityComparable {
		t.Errorf("expected failures attributed to their own capability, have %s and %s",
			restart.Failed, equal.Failed)
	}
	if vs := restart.Violations(); len(vs) != 1 || !strings.Contains(vs[0].String(), "Begin") {
		t.Errorf("expected a single violation naming Begin, have %v", vs)
	}
	if vs := equal.Violations(); len(vs) != 1 || !strings.Contains(vs[0].String(), "Equal") {
		t.Errorf("expected a single violation naming Equal, have %v", vs)
	}
	// the iterator chain is out of reach for a methodless type
	if _, err = Check(T, konzept.Forward); !errors.Is(err, ErrNotIterator) {
		t.Errorf("expected ErrNotIterator for the methodless type, got %v", err)
	}
}

func TestWrongSignatureDiagnosed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	// a type with an Equal method of the wrong parameter type
	pkg := types.NewPackage("example/odd", "odd")
	name := types.NewTypeName(token.NoPos, pkg, "Odd", nil)
	T := types.NewNamed(name, types.NewStruct(nil, nil), nil)
	recv := types.NewVar(token.NoPos, pkg, "o", T)
	params := types.NewTuple(types.NewVar(token.NoPos, pkg, "other", types.Typ[types.Int]))
	results := types.NewTuple(types.NewVar(token.NoPos, pkg, "", types.Typ[types.Bool]))
	sig := types.NewSignatureType(recv, nil, nil, params, results, false)
	T.AddMethod(types.NewFunc(token.NoPos, pkg, "Equal", sig))
	//
	report, err := Check(T, konzept.EqualityComparable)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if report.OK() {
		t.Fatalf("expected the misdeclared Equal to be rejected, is accepted")
	}
	vs := report.Violations()
	if len(vs) != 1 {
		t.Fatalf("expected a single violation, have %d", len(vs))
	}
	if vs[0].Got != "Equal(other int) bool" {
		t.Errorf("expected the offending signature to be quoted, is %q", vs[0].Got)
	}
	if !strings.Contains(vs[0].String(), "should be") {
		t.Errorf("expected a should-be diagnostic, is %q", vs[0])
	}
}

func TestAuditListsAllGaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	T := resolve(t, "*streams.RuneIterator")
	report, err := Audit(T, konzept.RandomAccess)
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	if report.Failed != konzept.DefaultConstructible {
		t.Errorf("expected the weakest gap at %s, is %s",
			konzept.DefaultConstructible, report.Failed)
	}
	// Begin, Clone, Prev, and the five random-access methods
	if n := len(report.Violations()); n != 8 {
		t.Errorf("expected 8 violations in total, have %d", n)
	}
}

func TestClassifyProfiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	for _, test := range []struct {
		expr string
		best konzept.Capability
		tag  string
	}{
		{"*arraylist.Iterator[int]", konzept.RandomAccess, "random-access iterator"},
		{"*doublylinkedlist.Iterator[string]", konzept.Bidirectional, "bidirectional iterator"},
		{"*singlylinkedlist.Iterator[int]", konzept.Forward, "forward iterator"},
		{"*streams.RuneIterator", konzept.Input, "input iterator"},
		{"*streams.Sink[rune]", konzept.Basic, "iterator (equality-comparable)"},
	} {
		profile, err := Classify(resolve(t, test.expr))
		if err != nil {
			t.Errorf("cannot classify %s: %v", test.expr, err)
			continue
		}
		if profile.Best != test.best {
			t.Errorf("expected %s to classify as %s, is %s", test.expr, test.best, profile.Best)
		}
		if profile.Tag() != test.tag {
			t.Errorf("expected tag %q for %s, is %q", test.tag, test.expr, profile.Tag())
		}
	}
}

func TestClassifyCapabilitySet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	profile, err := Classify(resolve(t, "*streams.RuneIterator"))
	if err != nil {
		t.Fatalf("cannot classify: %v", err)
	}
	if profile.Has(konzept.DefaultConstructible) {
		t.Errorf("expected the stream iterator to be unable to restart")
	}
	caps := profile.Capabilities()
	if len(caps) != 3 || caps[0] != konzept.EqualityComparable || caps[2] != konzept.Input {
		t.Errorf("expected the capability set to be [equality-comparable iterator input iterator], have %v", caps)
	}
}

func TestResolveRejectsNonsense(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	u := loadUniverse(t)
	for _, expr := range []string{"", "nosuch", "nosuch.Type", "arraylist.Iterator[int", "arraylist.Iterator[int, int]"} {
		if _, err := u.Resolve(expr); err == nil {
			t.Errorf("expected %q to be rejected, is accepted", expr)
		}
	}
	if _, err := u.Resolve("int"); err != nil {
		t.Errorf("expected int to resolve, got %v", err)
	}
}

func TestFingerprintTracksOutcome(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "konzept.conform")
	defer teardown()
	//
	T := resolve(t, "*singlylinkedlist.Iterator[int]")
	first, err := Check(T, konzept.Bidirectional)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	second, err := Check(T, konzept.Bidirectional)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if first.Fingerprint() != second.Fingerprint() {
		t.Errorf("expected identical outcomes to fingerprint equal, don't")
	}
	forward, err := Check(T, konzept.Forward)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if forward.Fingerprint() == first.Fingerprint() {
		t.Errorf("expected different targets to fingerprint differently, don't")
	}
}
