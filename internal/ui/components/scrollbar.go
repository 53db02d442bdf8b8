package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
)

// ThumbSpan returns the first row and length of the scrollbar thumb. The
// thumb is proportional to the visible share of the content and at least
// one row long. ok is false when everything fits.
func ThumbSpan(height, contentH, visibleH, offset int) (start, size int, ok bool) {
	if contentH <= visibleH || height < 1 || visibleH < 1 {
		return 0, 0, false
	}
	size = min(max(height*visibleH/contentH, 1), height)

	maxOffset := contentH - visibleH
	free := height - size
	offset = min(max(offset, 0), maxOffset)
	start = (offset*free + maxOffset/2) / maxOffset
	return min(start, free), size, true
}

// RenderScrollbar returns a one-column track exactly height rows tall. The
// track is blank when all content fits, so the column never jumps.
//
//	Parameters:
//	  styles   – application styles (for theming)
//	  height   – rows of the track
//	  contentH – total content rows
//	  visibleH – rows visible at once
//	  offset   – first visible content row
func RenderScrollbar(styles ui.Styles, height, contentH, visibleH, offset int) string {
	if height < 1 {
		return ""
	}
	start, size, ok := ThumbSpan(height, contentH, visibleH, offset)

	t := styles.Theme
	thumb := lipgloss.NewStyle().Foreground(t.Primary).Render("┃")
	track := lipgloss.NewStyle().Foreground(t.Border).Render("│")

	var b strings.Builder
	b.Grow(height * 8)
	for i := range height {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch {
		case !ok:
			b.WriteByte(' ')
		case i >= start && i < start+size:
			b.WriteString(thumb)
		default:
			b.WriteString(track)
		}
	}
	return b.String()
}
