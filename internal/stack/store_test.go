package stack

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func numberItem(n int) Item {
	s := fmt.Sprint(n)
	return NewItem([]string{s}, s, 0, s)
}

func outputs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Output()
	}
	return out
}

func TestStoreAppendPreservesOrder(t *testing.T) {
	var s Store
	var want []string
	for i := range 20 {
		s.Append(numberItem(i))
		want = append(want, fmt.Sprint(i))
	}
	if diff := cmp.Diff(want, outputs(s.Items())); diff != "" {
		t.Errorf("store order (-want +got):\n%s", diff)
	}
	if s.Len() != 20 {
		t.Errorf("Len() = %d, want 20", s.Len())
	}
}

func TestStoreRemoveLast(t *testing.T) {
	var s Store
	a, b, c := numberItem(1), numberItem(2), numberItem(3)
	s.Append(a)
	s.Append(b)
	s.Append(c)

	got, ok := s.RemoveLast()
	if !ok || got.ID() != c.ID() {
		t.Fatalf("RemoveLast() = %v, %v; want item 3", got.Output(), ok)
	}
	if diff := cmp.Diff([]ID{a.ID(), b.ID()}, s.IDs()); diff != "" {
		t.Errorf("remaining IDs (-want +got):\n%s", diff)
	}
}

func TestStoreRemoveLastOnEmptyIsNoop(t *testing.T) {
	var s Store
	if _, ok := s.RemoveLast(); ok {
		t.Error("RemoveLast() on empty store reported an item")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if len(s.IDs()) != 0 {
		t.Errorf("IDs() = %v, want none", s.IDs())
	}
}

func TestStoreClear(t *testing.T) {
	var s Store
	for i := range 5 {
		s.Append(numberItem(i))
	}
	s.Clear()
	if s.Len() != 0 || len(s.IDs()) != 0 {
		t.Fatalf("store not empty after Clear: %d items", s.Len())
	}
	s.Append(numberItem(7))
	if diff := cmp.Diff([]string{"7"}, outputs(s.Items())); diff != "" {
		t.Errorf("after clear and append (-want +got):\n%s", diff)
	}
}

func TestStoreItemsIsACopy(t *testing.T) {
	var s Store
	s.Append(numberItem(1))
	items := s.Items()
	items[0] = numberItem(9)
	if got := s.Items()[0].Output(); got != "1" {
		t.Errorf("store mutated through Items(): first = %q", got)
	}
}
