// Package scroll decides when a growing transcript should follow its
// newest content.
package scroll

import "math"

// Viewport is a snapshot of the scrollable geometry, in rows.
type Viewport struct {
	ContentHeight float64
	Height        float64
	Offset        float64
}

// BottomOffset is the offset that puts the end of the content at the
// bottom of the viewport. It is never negative.
func (v Viewport) BottomOffset() float64 {
	return math.Max(0, v.ContentHeight-v.Height)
}

// MaxOffset is the largest valid offset.
func (v Viewport) MaxOffset() float64 { return v.BottomOffset() }

// Clamp limits offset to the valid range for v.
func (v Viewport) Clamp(offset float64) float64 {
	return math.Min(math.Max(0, offset), v.MaxOffset())
}

// TopInset is the blank space above short content that keeps it flush
// with the bottom of the viewport.
func (v Viewport) TopInset() float64 {
	return math.Max(0, v.Height-v.ContentHeight)
}

// AtBottom reports whether the viewport shows the end of the content.
func (v Viewport) AtBottom() bool {
	return v.Offset >= v.BottomOffset()
}

// Target is a scroll the caller should perform.
type Target struct {
	Offset   float64
	Animated bool
}

// Policy tracks the requests that pin the viewport to the bottom.
//
// An appended item or an explicit request marks the policy; the next
// layout pass that changes the content or viewport size consumes the mark
// and, if the bottom lies ahead of the current offset, yields a Target.
// While the user is scrolling, marks are kept until the user lets go.
type Policy struct {
	pinnedRequested bool
	itemJustAdded   bool
	userScrolling   bool

	observed         bool
	lastContentSize  float64
	lastViewportSize float64
}

// NoteItemAdded records one append to the store.
func (p *Policy) NoteItemAdded() { p.itemJustAdded = true }

// RequestPinned asks for the bottom to be shown after the next layout pass.
func (p *Policy) RequestPinned() { p.pinnedRequested = true }

// RequestPinnedNow asks for the bottom to be shown and evaluates the
// request against v straight away.
func (p *Policy) RequestPinnedNow(v Viewport) (Target, bool) {
	p.pinnedRequested = true
	return p.maybeScrollToBottom(v)
}

// Pending reports whether a scroll to the bottom is waiting for a layout pass.
func (p *Policy) Pending() bool { return p.pinnedRequested || p.itemJustAdded }

// BeginUserScroll suspends automatic scrolling.
func (p *Policy) BeginUserScroll() { p.userScrolling = true }

// EndUserScroll resumes automatic scrolling and applies anything that
// became pending meanwhile.
func (p *Policy) EndUserScroll(v Viewport) (Target, bool) {
	p.userScrolling = false
	return p.maybeScrollToBottom(v)
}

// UserScrolling reports whether a user scroll is in progress.
func (p *Policy) UserScrolling() bool { return p.userScrolling }

// Observe is called after every layout pass. Nothing happens unless the
// content or viewport size differs from the previous pass.
func (p *Policy) Observe(v Viewport) (Target, bool) {
	if p.observed && v.ContentHeight == p.lastContentSize && v.Height == p.lastViewportSize {
		return Target{}, false
	}
	p.observed = true
	p.lastContentSize = v.ContentHeight
	p.lastViewportSize = v.Height
	return p.maybeScrollToBottom(v)
}

func (p *Policy) maybeScrollToBottom(v Viewport) (Target, bool) {
	if !p.Pending() || p.userScrolling {
		return Target{}, false
	}
	p.pinnedRequested = false
	p.itemJustAdded = false

	bottom := v.BottomOffset()
	if bottom > v.Offset {
		return Target{Offset: bottom, Animated: true}, true
	}
	return Target{}, false
}
