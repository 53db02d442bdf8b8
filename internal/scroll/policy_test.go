package scroll

import "testing"

func TestObserveScrollsAfterAppend(t *testing.T) {
	var p Policy
	p.Observe(Viewport{ContentHeight: 5, Height: 10})

	p.NoteItemAdded()
	target, ok := p.Observe(Viewport{ContentHeight: 14, Height: 10, Offset: 0})
	if !ok {
		t.Fatal("Observe did not scroll after an append")
	}
	if target.Offset != 4 || !target.Animated {
		t.Errorf("target = %+v, want animated scroll to 4", target)
	}
	if p.Pending() {
		t.Error("flags not cleared after scrolling")
	}
}

func TestObserveIgnoresUnchangedSize(t *testing.T) {
	var p Policy
	v := Viewport{ContentHeight: 20, Height: 10}
	p.Observe(v)

	p.NoteItemAdded()
	if _, ok := p.Observe(v); ok {
		t.Error("Observe scrolled although nothing changed size")
	}
	if !p.Pending() {
		t.Error("append consumed without a size change")
	}
}

func TestObserveWithoutRequestDoesNotScroll(t *testing.T) {
	var p Policy
	p.Observe(Viewport{ContentHeight: 5, Height: 10})
	if _, ok := p.Observe(Viewport{ContentHeight: 30, Height: 10}); ok {
		t.Error("Observe scrolled without an append or pin request")
	}
}

func TestObserveNeverScrollsBackward(t *testing.T) {
	var p Policy
	p.Observe(Viewport{ContentHeight: 40, Height: 10, Offset: 30})

	// Content shrank; the bottom now lies behind the current offset.
	p.RequestPinned()
	if _, ok := p.Observe(Viewport{ContentHeight: 35, Height: 10, Offset: 30}); ok {
		t.Error("Observe scrolled backwards")
	}
	if p.Pending() {
		t.Error("flags not cleared after a pass that changed size")
	}
}

func TestAppendFlagIsConsumedOnce(t *testing.T) {
	var p Policy
	p.Observe(Viewport{ContentHeight: 0, Height: 10})

	p.NoteItemAdded()
	if _, ok := p.Observe(Viewport{ContentHeight: 12, Height: 10}); !ok {
		t.Fatal("first pass after append did not scroll")
	}
	if _, ok := p.Observe(Viewport{ContentHeight: 13, Height: 10}); ok {
		t.Error("second pass scrolled without a new append")
	}
}

func TestRequestPinnedNow(t *testing.T) {
	var p Policy
	target, ok := p.RequestPinnedNow(Viewport{ContentHeight: 25, Height: 10, Offset: 3})
	if !ok || target.Offset != 15 {
		t.Errorf("RequestPinnedNow = %+v, %v; want scroll to 15", target, ok)
	}
	if p.Pending() {
		t.Error("immediate request left a flag set")
	}
}

func TestUserScrollDefersPinning(t *testing.T) {
	var p Policy
	p.Observe(Viewport{ContentHeight: 10, Height: 10})

	p.BeginUserScroll()
	p.NoteItemAdded()
	if _, ok := p.Observe(Viewport{ContentHeight: 20, Height: 10, Offset: 2}); ok {
		t.Fatal("Observe scrolled during a user scroll")
	}
	if !p.Pending() {
		t.Fatal("append dropped during a user scroll")
	}

	target, ok := p.EndUserScroll(Viewport{ContentHeight: 20, Height: 10, Offset: 2})
	if !ok || target.Offset != 10 {
		t.Errorf("EndUserScroll = %+v, %v; want scroll to 10", target, ok)
	}
	if p.UserScrolling() {
		t.Error("still user scrolling after EndUserScroll")
	}
}

func TestViewportGeometry(t *testing.T) {
	tests := []struct {
		name   string
		v      Viewport
		bottom float64
		inset  float64
	}{
		{"short content", Viewport{ContentHeight: 4, Height: 10}, 0, 6},
		{"exact fit", Viewport{ContentHeight: 10, Height: 10}, 0, 0},
		{"overflowing content", Viewport{ContentHeight: 25, Height: 10}, 15, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.BottomOffset(); got != tt.bottom {
				t.Errorf("BottomOffset() = %v, want %v", got, tt.bottom)
			}
			if got := tt.v.TopInset(); got != tt.inset {
				t.Errorf("TopInset() = %v, want %v", got, tt.inset)
			}
		})
	}

	v := Viewport{ContentHeight: 25, Height: 10}
	if got := v.Clamp(-3); got != 0 {
		t.Errorf("Clamp(-3) = %v, want 0", got)
	}
	if got := v.Clamp(99); got != 15 {
		t.Errorf("Clamp(99) = %v, want 15", got)
	}
}

func TestStepConverges(t *testing.T) {
	tests := []struct {
		from, to float64
		steps    int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 2, 2},
		{0, 30, 5},
		{30, 0, 5},
	}
	for _, tt := range tests {
		if got := steps(tt.from, tt.to); got != tt.steps {
			t.Errorf("steps(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.steps)
		}
	}
}
