// Package banner implements the transient info/error message shown below
// the transcript.
//
// Callers signal what they want to see (ShowInfo, ShowError, Clear) any
// number of times; Reconcile then moves the banner to its next visible
// state once and reports the visual change to make.
package banner

import "fmt"

// State is a banner lifecycle state. The Wants* states are only ever
// desired states; the banner itself is always Hidden, ShowingInfo or
// ShowingError.
type State int

const (
	Hidden State = iota
	WantsToShowInfo
	WantsToShowError
	ShowingInfo
	ShowingError
	WantsToHide
)

var stateNames = [...]string{
	Hidden:           "hidden",
	WantsToShowInfo:  "wantsToShowInfo",
	WantsToShowError: "wantsToShowError",
	ShowingInfo:      "showingInfo",
	ShowingError:     "showingError",
	WantsToHide:      "wantsToHide",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Tone is the color family of the banner text.
type Tone int

const (
	Neutral Tone = iota
	Alert
)

func (t Tone) String() string {
	if t == Alert {
		return "alert"
	}
	return "neutral"
}

// Effect describes what a reconcile step changed.
type Effect struct {
	// Changed is false when the step was a no-op.
	Changed bool
	// Visible is the banner visibility after the step.
	Visible bool
	// Tone is the text color after the step.
	Tone Tone
	// RequestPinned asks the transcript to keep its newest entry in view,
	// since the space left for it just changed.
	RequestPinned bool
}

// Banner is the message banner state machine. The zero value is hidden.
type Banner struct {
	state   State
	desired State
	text    string
	tone    Tone
}

// New returns a hidden banner.
func New() *Banner { return &Banner{} }

// NewShowingInfo returns a banner already showing text as information.
func NewShowingInfo(text string) *Banner {
	return &Banner{state: ShowingInfo, desired: ShowingInfo, text: text}
}

// ShowInfo asks for text to be shown as information.
func (b *Banner) ShowInfo(text string) {
	b.text = text
	switch b.desired {
	case Hidden, WantsToShowError, ShowingError, WantsToHide:
		b.desired = WantsToShowInfo
	}
}

// ShowError asks for text to be shown as an error.
func (b *Banner) ShowError(text string) {
	b.text = text
	switch b.desired {
	case Hidden, WantsToShowInfo, ShowingInfo, WantsToHide:
		b.desired = WantsToShowError
	}
}

// Clear asks for the banner to be hidden. A show request that has not been
// reconciled yet is simply withdrawn.
func (b *Banner) Clear() {
	b.text = ""
	if b.state == Hidden {
		b.desired = Hidden
		return
	}
	switch b.desired {
	case WantsToShowError, ShowingError, WantsToShowInfo, ShowingInfo:
		b.desired = WantsToHide
	}
}

// Reconcile applies the pending request. It panics on a state pair that
// the signal methods can never produce.
func (b *Banner) Reconcile() Effect {
	if b.state == b.desired {
		return b.effect(false, false)
	}

	var pin bool
	switch {
	case b.state == Hidden && b.desired == WantsToShowInfo:
		b.tone = Neutral
		b.state = ShowingInfo
		pin = true
	case b.state == Hidden && b.desired == WantsToShowError:
		b.tone = Alert
		b.state = ShowingError
		pin = true
	case b.state == ShowingError && b.desired == WantsToShowInfo:
		// An error stays up, and stays red, until it is cleared.
		b.tone = Alert
	case b.state == ShowingInfo && b.desired == WantsToShowError:
		b.tone = Alert
		b.state = ShowingError
	case (b.state == ShowingInfo || b.state == ShowingError) && b.desired == WantsToHide:
		b.state = Hidden
		pin = true
	case b.state == ShowingInfo && b.desired == WantsToShowInfo:
	case b.state == ShowingError && b.desired == WantsToShowError:
	default:
		panic(fmt.Sprintf("banner: unexpected transition from %s to %s", b.state, b.desired))
	}

	b.desired = b.state
	return b.effect(true, pin)
}

func (b *Banner) effect(changed, pin bool) Effect {
	return Effect{
		Changed:       changed,
		Visible:       b.Visible(),
		Tone:          b.tone,
		RequestPinned: pin,
	}
}

// State is the current visible state.
func (b *Banner) State() State { return b.state }

// Visible reports whether the banner is on screen.
func (b *Banner) Visible() bool { return b.state != Hidden }

// Text is the latest message text.
func (b *Banner) Text() string { return b.text }

// Tone is the current text color family.
func (b *Banner) Tone() Tone { return b.tone }
