package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colours for the application.
type Theme struct {
	Name string
	Dark bool

	Bg         lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	TextSubtle lipgloss.Color

	Primary lipgloss.Color
	Accent  lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Stack is indexed by StackColor.
	Stack [stackColorCount]lipgloss.Color
}

// DarkTheme returns the default dark theme (Catppuccin Mocha).
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		Dark: true,

		Bg:         lipgloss.Color("#1e1e2e"),
		Surface:    lipgloss.Color("#282840"),
		Border:     lipgloss.Color("#3b3b5c"),
		Text:       lipgloss.Color("#cdd6f4"),
		TextMuted:  lipgloss.Color("#9399b2"),
		TextSubtle: lipgloss.Color("#6c7086"),

		Primary: lipgloss.Color("#89b4fa"),
		Accent:  lipgloss.Color("#f5c2e7"),

		Success: lipgloss.Color("#a6e3a1"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),

		Stack: [stackColorCount]lipgloss.Color{
			Red:       "#f38ba8",
			Orange:    "#fab387",
			Yellow:    "#f9e2af",
			Green:     "#a6e3a1",
			Blue:      "#89b4fa",
			Purple:    "#cba6f7",
			White:     "#f5f5f5",
			Pink:      "#f5c2e7",
			LightBlue: "#89dceb",
			Brown:     "#a0785a",
			Black:     "#11111b",
			Gray:      "#7f849c",
		},
	}
}

// LightTheme returns the light theme (Catppuccin Latte).
func LightTheme() Theme {
	return Theme{
		Name: "light",

		Bg:         lipgloss.Color("#eff1f5"),
		Surface:    lipgloss.Color("#e6e9ef"),
		Border:     lipgloss.Color("#bcc0cc"),
		Text:       lipgloss.Color("#4c4f69"),
		TextMuted:  lipgloss.Color("#6c6f85"),
		TextSubtle: lipgloss.Color("#9ca0b0"),

		Primary: lipgloss.Color("#1e66f5"),
		Accent:  lipgloss.Color("#ea76cb"),

		Success: lipgloss.Color("#40a02b"),
		Error:   lipgloss.Color("#d20f39"),
		Info:    lipgloss.Color("#1e66f5"),

		Stack: [stackColorCount]lipgloss.Color{
			Red:       "#d20f39",
			Orange:    "#fe640b",
			Yellow:    "#df8e1d",
			Green:     "#40a02b",
			Blue:      "#1e66f5",
			Purple:    "#8839ef",
			White:     "#ffffff",
			Pink:      "#ea76cb",
			LightBlue: "#04a5e5",
			Brown:     "#8b5a2b",
			Black:     "#000000",
			Gray:      "#8c8fa1",
		},
	}
}

// ThemeByName resolves the theme config value. "auto" asks the terminal.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	}
	if lipgloss.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Screen regions
	HintBar lipgloss.Style
	Banner  lipgloss.Style
	Prompt  lipgloss.Style
	Input   lipgloss.Style

	// Text
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	KeyBind lipgloss.Style
	KeyDesc lipgloss.Style

	// Stack entries in the standard color theme
	EntryInput  lipgloss.Style
	EntryOutput lipgloss.Style

	// Operator column
	Palette      lipgloss.Style
	PaletteTitle lipgloss.Style
	PaletteItem  lipgloss.Style

	// Help overlay
	Dialog  lipgloss.Style
	Section lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.HintBar = lipgloss.NewStyle().Foreground(t.TextSubtle).Padding(0, 1)
	s.Banner = lipgloss.NewStyle().Background(t.Surface).Padding(0, 1)
	s.Prompt = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.Input = lipgloss.NewStyle().Foreground(t.Text)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Body = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Subtle = lipgloss.NewStyle().Foreground(t.TextSubtle)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.EntryInput = lipgloss.NewStyle().Foreground(t.Text)
	s.EntryOutput = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)

	s.Palette = lipgloss.NewStyle().BorderLeft(true).BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).PaddingLeft(1)
	s.PaletteTitle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	s.PaletteItem = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.Dialog = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(t.Primary).Padding(1, 3)
	s.Section = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
