package stack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuilderAssemblesItem(t *testing.T) {
	b := NewBuilder()
	b.Append("2").Append("2").Append("add")
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}

	it := b.Finish("4", 1, "4")
	if diff := cmp.Diff([]string{"2", "2", "add"}, it.Input()); diff != "" {
		t.Errorf("input (-want +got):\n%s", diff)
	}
	if it.Output() != "4" || it.OutputType() != 1 || it.AccessibilityValue() != "4" {
		t.Errorf("item = %q/%d/%q, want 4/1/4", it.Output(), it.OutputType(), it.AccessibilityValue())
	}
	if it.AccessibilityLabel() != "Stack Value" {
		t.Errorf("AccessibilityLabel() = %q", it.AccessibilityLabel())
	}
	if b.Len() != 0 {
		t.Errorf("builder not reset after Finish: Len() = %d", b.Len())
	}
}

func TestBuilderReuseDoesNotShareInput(t *testing.T) {
	b := NewBuilder()
	first := b.Append("1").Finish("1", 0, "1")
	second := b.Append("2").Finish("2", 0, "2")
	if diff := cmp.Diff([]string{"1"}, first.Input()); diff != "" {
		t.Errorf("first input changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2"}, second.Input()); diff != "" {
		t.Errorf("second input (-want +got):\n%s", diff)
	}
}

func TestItemIdentityIsSeparateFromContent(t *testing.T) {
	a := NewItem([]string{"2", "2", "add"}, "4", 0, "4")
	b := NewItem([]string{"2", "2", "add"}, "4", 0, "4")
	c := NewItem([]string{"2", "2", "mul"}, "4", 0, "4")

	if a.ID() == b.ID() {
		t.Error("separately created items share an ID")
	}
	if !a.Equal(b) {
		t.Error("items with equal content are not Equal")
	}
	if a.Equal(c) {
		t.Error("items with different input compare equal")
	}

	dup := a.Duplicate()
	if dup.ID() == a.ID() || !dup.Equal(a) {
		t.Errorf("Duplicate() = id %s equal %v; want new id with equal content", dup.ID(), dup.Equal(a))
	}
}

func TestItemInputIsACopy(t *testing.T) {
	it := NewItem([]string{"a", "b"}, "c", 0, "")
	in := it.Input()
	in[0] = "z"
	if it.Input()[0] != "a" {
		t.Error("item mutated through Input()")
	}
}
