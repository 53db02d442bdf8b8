package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
)

// Hint is one key hint in the bottom bar.
type Hint struct {
	Key  string
	Desc string
}

// RenderHintBar renders as many hints as fit in width, in order.
func RenderHintBar(styles ui.Styles, hints []Hint, width int) string {
	if width <= 0 {
		return ""
	}
	const sep = "  "
	avail := width - 2 // HintBar padding
	var parts []string
	used := 0
	for _, h := range hints {
		part := ui.RenderKeyValue(styles, h.Key, h.Desc)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += len(sep)
		}
		if used+w > avail {
			break
		}
		parts = append(parts, part)
		used += w
	}
	return styles.HintBar.Width(width).MaxWidth(width).Render(ui.JoinHorizontal(sep, parts...))
}
