package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
)

// HelpEntry is one line of the help overlay. Example, when present, is a
// pre-rendered preview shown under the description.
type HelpEntry struct {
	Key     string
	Desc    string
	Detail  string
	Example []string
}

// HelpSection is a titled group of entries. Sections render in slice order.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

const helpKeyWidth = 14

// HelpFrame returns the inner size available to help content for a
// screen of the given size.
func HelpFrame(width, height int) (w, h int) {
	// Border (2) and horizontal padding (6) around the content; the title
	// and footer rows take two more.
	w = max(10, min(76, width-4)-8)
	h = max(1, height-2-2-2-2)
	return w, h
}

// HelpBody renders every section as plain rows for a scrolling viewport.
func HelpBody(styles ui.Styles, sections []HelpSection, width int) string {
	t := styles.Theme
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(helpKeyWidth).Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	indent := strings.Repeat(" ", helpKeyWidth+4)
	descWidth := max(1, width-helpKeyWidth-4)

	var body strings.Builder
	for i, section := range sections {
		if len(section.Entries) == 0 {
			continue
		}
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(styles.Section.Render(section.Title) + "\n")
		for _, e := range section.Entries {
			desc := ui.Truncate(e.Desc, descWidth)
			body.WriteString("  " + keyStyle.Render(ui.Truncate(e.Key, helpKeyWidth)) + "  " + descStyle.Render(desc) + "\n")
			if e.Detail != "" {
				body.WriteString(indent + detailStyle.Render(ui.Truncate(e.Detail, descWidth)) + "\n")
			}
			for _, row := range e.Example {
				body.WriteString(indent + row + "\n")
			}
		}
	}
	return strings.TrimRight(body.String(), "\n")
}

// RenderHelp renders the help overlay centred on the screen around body,
// which is already cut to the frame returned by HelpFrame.
func RenderHelp(styles ui.Styles, title, body, footer string, width, height int) string {
	t := styles.Theme
	innerW, _ := HelpFrame(width, height)

	titleStr := lipgloss.NewStyle().
		Foreground(t.Primary).Bold(true).
		Align(lipgloss.Center).
		Width(innerW).
		Render(title)
	footerStr := lipgloss.NewStyle().
		Foreground(t.TextSubtle).
		Align(lipgloss.Center).
		Width(innerW).
		Render(footer)

	content := titleStr + "\n\n" + body + "\n" + footerStr
	overlay := styles.Dialog.
		Width(innerW + 6).
		MaxHeight(max(1, height-2)).
		Render(content)

	return ui.PlaceCentre(width, height, overlay)
}
