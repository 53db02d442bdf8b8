package transcript

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/rpn-stack/internal/banner"
	"github.com/Akashdeep-Patra/rpn-stack/internal/layout"
	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui/components"
)

// View draws the visible rows, the scrollbar and, when shown, the banner.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	listH := m.listHeight()
	listW := m.width - 1

	list := strings.Join(m.visibleRows(listW, listH), "\n")
	bar := components.RenderScrollbar(m.styles, listH, m.content, listH, int(m.offset))
	out := lipgloss.JoinHorizontal(lipgloss.Top, list, bar)
	if listH == 0 {
		out = ""
	}

	if m.banner.Visible() {
		data := components.BannerData{
			Text:  m.banner.Text(),
			Alert: m.banner.Tone() == banner.Alert,
		}
		b := components.RenderBanner(m.styles, data, m.width)
		if out == "" {
			return b
		}
		out += "\n" + b
	}
	return out
}

// visibleRows returns exactly height rows of width cells: a blank top
// inset when the content is short, then the entries intersecting the
// viewport. Entries outside it are never drawn.
func (m *Model) visibleRows(width, height int) []string {
	rows := make([]string, 0, height)
	blank := strings.Repeat(" ", max(0, width))
	inset := max(0, height-m.content)
	for range inset {
		rows = append(rows, blank)
	}

	lead := max(0, (width-m.entryWidth)/2)
	pad := strings.Repeat(" ", lead)
	top := int(m.offset)
	bottom := top + height - inset

	y := 0
	for i, id := range m.rendered {
		if i > 0 {
			for range m.spacing {
				if y >= top && y < bottom {
					rows = append(rows, blank)
				}
				y++
			}
		}
		h := 0
		if i < len(m.heights) {
			h = m.heights[i]
		}
		if y+h <= top {
			y += h
			continue
		}
		if y >= bottom {
			break
		}
		cell := m.cellRows(i, id)
		for r := range h {
			if y+r >= top && y+r < bottom && r < len(cell) {
				rows = append(rows, ui.PadRight(pad+cell[r], width))
			}
		}
		y += h
	}

	for len(rows) < height {
		rows = append(rows, blank)
	}
	return rows[:height]
}

// cellRows returns the drawn rows of the entry at index, cached per
// identity, width and color.
func (m *Model) cellRows(index int, id stack.ID) []string {
	g := m.geometry(id)
	key := cellKey{index: index, alternate: m.alternate}
	if rows, ok := g.rows[key]; ok {
		return rows
	}
	in, out := m.styles.EntryStyles(index, m.alternate)
	fill, hasFill := m.styles.EntryBackground(index, m.alternate)
	rows := components.RenderStackCell(components.StackCell{
		Entry:   g.entry,
		Font:    m.ts.Metrics().Font,
		Width:   g.width,
		Height:  g.height,
		Input:   in,
		Output:  out,
		Fill:    fill,
		HasFill: hasFill,
	})
	g.rows[key] = rows
	return rows
}

// Plain renders items without color, one entry after another with spacing
// blank rows between them. A width of zero or less lays every entry out
// unbounded and sizes each to its own content.
func Plain(items []stack.Item, metrics layout.Metrics, width, spacing int) []string {
	ts := layout.NewTypesetter(metrics)
	font := ts.Metrics().Font
	hp := ts.Metrics().HorizontalPadding

	var rows []string
	for i, it := range items {
		if i > 0 {
			for range spacing {
				rows = append(rows, "")
			}
		}
		maxW := float64(width)
		if width <= 0 {
			maxW = layout.Unbounded
		}
		e := ts.Entry(it, maxW, false)
		w := width
		if width <= 0 {
			adv := font.Advance
			if adv <= 0 {
				adv = 1
			}
			w = int(math.Ceil((e.Bounds().MaxX() + hp) / adv))
		}
		cell := components.RenderStackCell(components.StackCell{
			Entry:  e,
			Font:   font,
			Width:  w,
			Height: rowsFor(e, font),
			Input:  lipgloss.NewStyle(),
			Output: lipgloss.NewStyle(),
		})
		for _, r := range cell {
			rows = append(rows, strings.TrimRight(r, " "))
		}
	}
	return rows
}
