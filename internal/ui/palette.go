package ui

import "github.com/charmbracelet/lipgloss"

// StackColor names one color of the stack palette.
type StackColor int

const (
	Red StackColor = iota
	Orange
	Yellow
	Green
	Blue
	Purple
	White
	Pink
	LightBlue
	Brown
	Black
	Gray

	stackColorCount
)

var stackColorNames = [stackColorCount]string{
	"red", "orange", "yellow", "green", "blue", "purple",
	"white", "pink", "light blue", "brown", "black", "gray",
}

func (c StackColor) String() string {
	if c >= 0 && c < stackColorCount {
		return stackColorNames[c]
	}
	return "unknown"
}

// ForegroundColor is the rainbow-theme text color of the entry at index.
// Gray is reserved for backgrounds and never cycles.
func ForegroundColor(index int) StackColor {
	return StackColor(nonNegMod(index, int(Gray)))
}

// BackgroundColor is the backdrop, if any, behind the entry at index: pale
// colors get gray on light terminals, dark ones get gray on dark terminals.
func BackgroundColor(index int, dark bool) (StackColor, bool) {
	c := ForegroundColor(index)
	switch {
	case !dark && (c == Yellow || c == White || c == LightBlue):
		return Gray, true
	case dark && c >= Brown:
		return Gray, true
	}
	return 0, false
}

func nonNegMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// EntryStyles returns the input and output styles for the entry at index.
// With alternate false the standard theme colors are used.
func (s Styles) EntryStyles(index int, alternate bool) (input, output lipgloss.Style) {
	if !alternate {
		return s.EntryInput, s.EntryOutput
	}
	t := s.Theme
	st := lipgloss.NewStyle().Foreground(t.Stack[ForegroundColor(index)])
	if bg, ok := BackgroundColor(index, t.Dark); ok {
		st = st.Background(t.Stack[bg])
	}
	return st, st.Bold(true)
}

// EntryBackground returns the row fill for the entry at index, if any.
func (s Styles) EntryBackground(index int, alternate bool) (lipgloss.Style, bool) {
	if !alternate {
		return lipgloss.Style{}, false
	}
	bg, ok := BackgroundColor(index, s.Theme.Dark)
	if !ok {
		return lipgloss.Style{}, false
	}
	return lipgloss.NewStyle().Background(s.Theme.Stack[bg]), true
}
