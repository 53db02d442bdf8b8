package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
)

// BannerData carries what the message banner shows.
type BannerData struct {
	Text  string
	Alert bool
}

// RenderBanner renders the one-row message banner. Long messages are cut
// to fit; info text uses the info color and errors the error color.
//
//	 ● Not enough arguments for add (needs 2, have 1)
func RenderBanner(styles ui.Styles, data BannerData, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.Theme

	fg := t.Info
	marker := "●"
	if data.Alert {
		fg = t.Error
		marker = "✗"
	}
	text := strings.ReplaceAll(data.Text, "\n", " ")

	// Banner style pads one cell on each side.
	inner := max(0, width-2)
	markerStr := lipgloss.NewStyle().Foreground(fg).Bold(true).Render(marker)
	body := ui.Truncate(text, max(0, inner-2))
	content := markerStr + " " + lipgloss.NewStyle().Foreground(fg).Render(body)

	return styles.Banner.Width(width).MaxWidth(width).Render(content)
}
