package conform

import (
	"errors"
	"fmt"
	"go/types"
)

// === Associated Types ======================================================

// ErrNotIterator flags candidate types without iterator shape, as opposed to
// iterators merely missing a capability. Errors returned by ExtractTraits,
// Check and Classify wrap it, so clients can tell "not an iterator at all"
// from "no random-access iterator" with errors.Is.
var ErrNotIterator = errors.New("not an iterator")

// Traits describes the associated types of an iterator candidate, extracted
// from its method set. Traits are determined once per candidate and then
// consulted for every requirement signature.
type Traits struct {
	Iter     types.Type // the candidate type itself
	Value    types.Type // element type; nil if the candidate neither reads nor writes
	Diff     types.Type // distance type; int for every candidate
	Readable bool       // has Value() T
	Writable bool       // has Set(T)
}

// ExtractTraits inspects the method set of a candidate type and determines
// its associated types. A candidate without a method named Next does not
// count as an iterator; this is reported as an error wrapping ErrNotIterator.
// Any other shortcoming is left for capability checking to diagnose, so every
// candidate passing extraction gets requirement-level diagnostics.
func ExtractTraits(t types.Type) (Traits, error) {
	tr := extract(t)
	if types.NewMethodSet(t).Lookup(nil, "Next") == nil {
		return tr, notIterator(t)
	}
	tracer().Debugf("extracted %v", tr)
	return tr, nil
}

// extract collects traits without insisting on iterator shape. Used directly
// for checking the primitive capabilities, which apply to non-iterators, too.
func extract(t types.Type) Traits {
	tr := Traits{Iter: t, Diff: types.Typ[types.Int]}
	ms := types.NewMethodSet(t)
	if sel := ms.Lookup(nil, "Value"); sel != nil {
		if sig, ok := sel.Obj().Type().(*types.Signature); ok {
			if sig.Params().Len() == 0 && sig.Results().Len() == 1 {
				tr.Value = sig.Results().At(0).Type()
				tr.Readable = true
			}
		}
	}
	if sel := ms.Lookup(nil, "Set"); sel != nil {
		if sig, ok := sel.Obj().Type().(*types.Signature); ok {
			if sig.Params().Len() == 1 && sig.Results().Len() == 0 {
				tr.Writable = true
				if tr.Value == nil {
					tr.Value = sig.Params().At(0).Type()
				}
			}
		}
	}
	return tr
}

// notIterator builds the error for a candidate without a Next method. If the
// method sits on the pointer type instead, the error says so; forgetting the
// '*' on a candidate is by far the most common way to run into this.
func notIterator(t types.Type) error {
	if _, isptr := t.(*types.Pointer); !isptr {
		if _, isiface := t.Underlying().(*types.Interface); !isiface {
			pms := types.NewMethodSet(types.NewPointer(t))
			if pms.Lookup(nil, "Next") != nil {
				return fmt.Errorf("type %s has no method Next, but *%s has (%w)",
					TypeString(t), TypeString(t), ErrNotIterator)
			}
		}
	}
	return fmt.Errorf("type %s has no method Next (%w)", TypeString(t), ErrNotIterator)
}

// Reference returns the type which dereferencing the candidate yields, or nil
// for candidates without elements.
func (tr Traits) Reference() types.Type {
	return tr.Value
}

// Pointer returns the pointer-to-element type, or nil for candidates without
// elements.
func (tr Traits) Pointer() types.Type {
	if tr.Value == nil {
		return nil
	}
	return types.NewPointer(tr.Value)
}

// Mode spells out the access mode of the candidate: "read-only",
// "write-only", "read-write" or "opaque".
func (tr Traits) Mode() string {
	switch {
	case tr.Readable && tr.Writable:
		return "read-write"
	case tr.Readable:
		return "read-only"
	case tr.Writable:
		return "write-only"
	}
	return "opaque"
}

func (tr Traits) String() string {
	v := "?"
	if tr.Value != nil {
		v = TypeString(tr.Value)
	}
	return fmt.Sprintf("traits(%s, value=%s, diff=%s, %s)",
		TypeString(tr.Iter), v, TypeString(tr.Diff), tr.Mode())
}

// resolve maps a signature placeholder to the concrete type it stands for
// with this candidate. A nil return stands for "any type acceptable".
func (tr Traits) resolve(s sym) types.Type {
	switch s {
	case symIter:
		return tr.Iter
	case symValue:
		return tr.Value
	case symDiff:
		return tr.Diff
	case symBool:
		return types.Typ[types.Bool]
	}
	return nil
}

// matches tests a concrete method signature against a symbolic one, with
// placeholders resolved through the candidate's traits.
func (tr Traits) matches(sig *types.Signature, want methodSig) bool {
	if sig.Params().Len() != len(want.params) || sig.Results().Len() != len(want.results) {
		return false
	}
	for i, s := range want.params {
		if !identical(sig.Params().At(i).Type(), tr.resolve(s)) {
			return false
		}
	}
	for i, s := range want.results {
		if !identical(sig.Results().At(i).Type(), tr.resolve(s)) {
			return false
		}
	}
	return true
}

// identical wraps types.Identical, with a nil want matching any type.
func identical(have, want types.Type) bool {
	if want == nil {
		return true
	}
	return types.Identical(have, want)
}
