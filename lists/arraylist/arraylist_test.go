package arraylist

import "testing"

func TestListAddGet(t *testing.T) {
	l := New("a", "b", "c")
	if l.Size() != 3 {
		t.Errorf("expected size 3, is %d", l.Size())
	}
	if v, ok := l.Get(1); !ok || v != "b" {
		t.Errorf("expected element %q at index 1, have %q", "b", v)
	}
	if _, ok := l.Get(3); ok {
		t.Error("expected out-of-range index to report !ok, doesn't")
	}
}

func TestListRemove(t *testing.T) {
	l := New(1, 2, 3)
	l.Remove(1)
	if l.Size() != 2 {
		t.Errorf("expected size 2 after Remove, is %d", l.Size())
	}
	if v, _ := l.Get(1); v != 3 {
		t.Errorf("expected element 3 at index 1, have %d", v)
	}
	l.Remove(17) // out of range, no-op
	if l.Size() != 2 {
		t.Error("expected out-of-range Remove to be ignored, isn't")
	}
}

func TestListClear(t *testing.T) {
	l := New(1, 2)
	l.Clear()
	if !l.Empty() {
		t.Error("expected cleared list to be empty, isn't")
	}
}

func TestListAll(t *testing.T) {
	l := New(10, 20, 30)
	sum, cnt := 0, 0
	for i, v := range l.All() {
		sum += v
		cnt += i
	}
	if sum != 60 || cnt != 3 {
		t.Errorf("expected range over All to visit every element, sum=%d cnt=%d", sum, cnt)
	}
}

func TestIteratorWalk(t *testing.T) {
	l := New("a", "b", "c")
	it := l.Iterator()
	var walked string
	for it.Next() {
		walked += it.Value()
	}
	if walked != "abc" {
		t.Errorf("expected iterator to walk %q, walked %q", "abc", walked)
	}
	if it.Next() {
		t.Error("expected exhausted iterator to stay exhausted, doesn't")
	}
}

func TestIteratorBackward(t *testing.T) {
	l := New(1, 2, 3)
	it := l.Iterator()
	it.End()
	var walked []int
	for it.Prev() {
		walked = append(walked, it.Value())
	}
	if len(walked) != 3 || walked[0] != 3 || walked[2] != 1 {
		t.Errorf("expected backward walk 3 2 1, have %v", walked)
	}
}

func TestIteratorFirstLast(t *testing.T) {
	l := New(1, 2, 3)
	it := l.Iterator()
	if !it.First() || it.Value() != 1 {
		t.Error("expected First to move onto element 1, doesn't")
	}
	if !it.Last() || it.Value() != 3 {
		t.Error("expected Last to move onto element 3, doesn't")
	}
	empty := New[int]()
	jt := empty.Iterator()
	if jt.First() || jt.Last() {
		t.Error("expected First/Last on empty list to report false, don't")
	}
}

func TestIteratorEqual(t *testing.T) {
	l := New(1, 2, 3)
	it, jt := l.Iterator(), l.Iterator()
	if !it.Equal(jt) {
		t.Error("expected two fresh iterators to be equal, aren't")
	}
	it.Next()
	if it.Equal(jt) {
		t.Error("expected advanced iterator to differ from fresh one, doesn't")
	}
	jt.Next()
	if !it.Equal(jt) {
		t.Error("expected equally advanced iterators to be equal, aren't")
	}
}

func TestIteratorRandomAccess(t *testing.T) {
	l := New(0, 10, 20, 30, 40)
	it := l.Iterator()
	it.Next()
	it.Advance(3)
	if it.Value() != 30 {
		t.Errorf("expected element 30 after Advance(3), have %d", it.Value())
	}
	it.Advance(-2)
	if it.Value() != 10 {
		t.Errorf("expected element 10 after Advance(-2), have %d", it.Value())
	}
	jt := it.Offset(2)
	if jt.Value() != 30 {
		t.Errorf("expected offset iterator at element 30, is at %d", jt.Value())
	}
	if jt.Distance(it) != 2 || it.Distance(jt) != -2 {
		t.Error("expected distances 2 and -2 between the two positions")
	}
	if !it.Less(jt) || jt.Less(it) {
		t.Error("expected position ordering to follow indexes, doesn't")
	}
	if it.At(1) != 20 {
		t.Errorf("expected At(1) to yield 20, have %d", it.At(1))
	}
}

func TestIteratorOutOfRange(t *testing.T) {
	l := New(1, 2, 3)
	it := l.Iterator()
	it.Advance(-5)
	if it.Next() {
		t.Error("expected Next left of the list to report false, doesn't")
	}
	if it.Prev() {
		t.Error("expected Prev left of the list to report false, doesn't")
	}
	if !it.First() || it.Value() != 1 {
		t.Error("expected First to recover onto element 1, doesn't")
	}
	//
	it.End()
	it.Advance(5)
	if it.Prev() {
		t.Error("expected Prev right of the list to report false, doesn't")
	}
	if it.Next() {
		t.Error("expected Next right of the list to report false, doesn't")
	}
	if !it.Last() || it.Value() != 3 {
		t.Error("expected Last to recover onto element 3, doesn't")
	}
	//
	jt := it.Offset(7)
	if jt.Next() || jt.Prev() {
		t.Error("expected position offset outside the list to have no element, has one")
	}
}

func TestIteratorCloneIndependent(t *testing.T) {
	l := New(1, 2, 3)
	it := l.Iterator()
	it.Next()
	clone := it.Clone()
	it.Next()
	//
	if clone.Value() != 1 {
		t.Errorf("expected clone to stay at element 1, is at %d", clone.Value())
	}
	if clone.Equal(it) {
		t.Error("expected moved original to differ from clone, doesn't")
	}
}
