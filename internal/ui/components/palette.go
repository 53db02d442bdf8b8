package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
)

// PaletteWidth is the width of the operator column, border included.
const PaletteWidth = 14

// PaletteGroup is a titled list of operator names.
type PaletteGroup struct {
	Title string
	Items []string
}

// RenderPalette renders the operator column height rows tall. Groups that
// do not fit are cut off at the bottom.
func RenderPalette(styles ui.Styles, groups []PaletteGroup, height int) string {
	if height <= 0 {
		return ""
	}
	inner := PaletteWidth - 2 // border and left padding
	var rows []string
	for _, g := range groups {
		if len(rows) > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, styles.PaletteTitle.Render(ui.Truncate(g.Title, inner)))
		for _, it := range g.Items {
			rows = append(rows, styles.PaletteItem.Render(ui.Truncate(it, inner)))
		}
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return styles.Palette.
		Width(PaletteWidth - 1).
		Height(height).
		MaxHeight(height).
		Render(lipgloss.NewStyle().Width(inner).Render(strings.Join(rows, "\n")))
}
