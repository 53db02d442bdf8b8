package transcript

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akashdeep-Patra/rpn-stack/internal/scroll"
)

const (
	frameInterval = time.Second / 60
	// userScrollSettle is how long after the last wheel or key scroll the
	// user is considered done scrolling.
	userScrollSettle = 400 * time.Millisecond
	wheelRows        = 3
)

// KeyMap holds the transcript scrolling keys. Home and End stay with the
// scratchpad, so jumping to either end takes ctrl.
type KeyMap struct {
	PageUp   key.Binding
	PageDown key.Binding
	LineUp   key.Binding
	LineDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap returns the default scrolling keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		LineUp:   key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "scroll up")),
		LineDown: key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "scroll down")),
		Top:      key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "oldest")),
		Bottom:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "newest")),
	}
}

type animTickMsg struct{ seq int }

type scrollSettledMsg struct{ seq int }

// Update handles scrolling input and the transcript's own timers. It
// reports whether msg was consumed.
func (m *Model) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case animTickMsg:
		if msg.seq != m.animSeq || !m.animating {
			return true, nil
		}
		m.offset = scroll.Step(m.offset, m.target)
		if m.offset == m.target {
			m.animating = false
			return true, nil
		}
		return true, m.tick()

	case scrollSettledMsg:
		if msg.seq != m.userSeq {
			return true, nil
		}
		m.log.Trace("user scroll ended", "offset", m.offset)
		if t, ok := m.policy.EndUserScroll(m.viewport()); ok {
			return true, m.scrollTo(t)
		}
		return true, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return true, m.ScrollBy(-wheelRows)
		case tea.MouseButtonWheelDown:
			return true, m.ScrollBy(wheelRows)
		}

	case tea.KeyMsg:
		page := max(1, m.listHeight()-1)
		switch {
		case key.Matches(msg, m.keys.PageUp):
			return true, m.ScrollBy(-page)
		case key.Matches(msg, m.keys.PageDown):
			return true, m.ScrollBy(page)
		case key.Matches(msg, m.keys.LineUp):
			return true, m.ScrollBy(-1)
		case key.Matches(msg, m.keys.LineDown):
			return true, m.ScrollBy(1)
		case key.Matches(msg, m.keys.Top):
			return true, m.ScrollBy(-m.content)
		case key.Matches(msg, m.keys.Bottom):
			return true, m.ScrollBy(m.content)
		}
	}
	return false, nil
}

// ScrollBy moves the viewport by delta rows as a user scroll. Automatic
// scrolling is held off until the user has been idle for a moment.
func (m *Model) ScrollBy(delta int) tea.Cmd {
	m.policy.BeginUserScroll()
	m.animating = false
	m.animSeq++

	v := m.viewport()
	m.offset = v.Clamp(m.offset + float64(delta))
	m.target = m.offset
	m.log.Trace("user scroll", "delta", delta, "offset", m.offset)

	m.userSeq++
	seq := m.userSeq
	return tea.Tick(userScrollSettle, func(time.Time) tea.Msg {
		return scrollSettledMsg{seq: seq}
	})
}

// ScrollToBottom shows the newest entry right away, without animation.
func (m *Model) ScrollToBottom() {
	if t, ok := m.policy.RequestPinnedNow(m.viewport()); ok {
		t.Animated = false
		m.scrollTo(t)
	}
}

func (m *Model) scrollTo(t scroll.Target) tea.Cmd {
	if !t.Animated || !m.animate {
		m.offset = t.Offset
		m.target = t.Offset
		m.animating = false
		return nil
	}
	m.target = t.Offset
	if m.animating {
		return nil
	}
	m.animating = true
	m.animSeq++
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	seq := m.animSeq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return animTickMsg{seq: seq}
	})
}
