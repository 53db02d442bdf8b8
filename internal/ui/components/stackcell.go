package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Akashdeep-Patra/rpn-stack/internal/layout"
)

// StackCell is everything needed to draw one stack entry. It is built per
// entry by the transcript and not modified afterwards.
type StackCell struct {
	Entry layout.Entry
	Font  layout.Font
	// Width and Height are the block size in cells and rows.
	Width  int
	Height int

	Input  lipgloss.Style
	Output lipgloss.Style
	// Fill, when set, paints the cells no text covers.
	Fill    lipgloss.Style
	HasFill bool
}

type inkKind uint8

const (
	inkBlank inkKind = iota
	inkInput
	inkOutput
)

type cell struct {
	text string
	kind inkKind
	// cont marks the second column of a wide glyph.
	cont bool
}

// RenderStackCell draws the entry's chunks at their layout positions and
// returns exactly Height rows, each Width cells wide. Text that falls
// outside the block is clipped.
func RenderStackCell(c StackCell) []string {
	if c.Width <= 0 || c.Height <= 0 {
		return nil
	}
	adv, lh := c.Font.Advance, c.Font.LineHeight
	if adv <= 0 {
		adv = 1
	}
	if lh <= 0 {
		lh = 1
	}

	grid := make([][]cell, c.Height)
	for y := range grid {
		grid[y] = make([]cell, c.Width)
	}

	put := func(ch layout.Chunk, kind inkKind) {
		x0 := int(math.Round(ch.Frame.Origin.X / adv))
		y0 := int(math.Floor(ch.Frame.Origin.Y/lh + 1e-9))
		for i, row := range ch.Rows {
			y := y0 + i
			if y < 0 || y >= c.Height {
				continue
			}
			drawRow(grid[y], x0, row, kind)
		}
	}
	for _, ch := range c.Entry.Input.Chunks {
		put(ch, inkInput)
	}
	put(c.Entry.Output, inkOutput)

	out := make([]string, c.Height)
	for y, row := range grid {
		out[y] = c.paint(row)
	}
	return out
}

func drawRow(row []cell, x int, text string, kind inkKind) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			// Combining mark: attach to the glyph on its left.
			if x > 0 && x-1 < len(row) {
				row[x-1].text += string(r)
			}
			continue
		}
		if x < 0 {
			x += w
			continue
		}
		if x+w > len(row) {
			return
		}
		// Never leave half of a wide glyph behind.
		if row[x].cont && x > 0 {
			row[x-1] = cell{kind: row[x-1].kind}
		}
		if end := x + w; end < len(row) && row[end].cont {
			row[end] = cell{kind: row[end].kind}
		}
		row[x] = cell{text: string(r), kind: kind}
		if w == 2 {
			row[x+1] = cell{kind: kind, cont: true}
		}
		x += w
	}
}

// paint renders one row, styling each run of equally inked cells once.
func (c StackCell) paint(row []cell) string {
	var (
		out strings.Builder
		run strings.Builder
		cur inkKind
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(c.style(cur).Render(run.String()))
		run.Reset()
	}
	for i, cl := range row {
		if i == 0 || cl.kind != cur {
			flush()
			cur = cl.kind
		}
		switch {
		case cl.cont:
		case cl.text == "":
			run.WriteByte(' ')
		default:
			run.WriteString(cl.text)
		}
	}
	flush()
	return out.String()
}

func (c StackCell) style(k inkKind) lipgloss.Style {
	switch k {
	case inkInput:
		return c.Input
	case inkOutput:
		return c.Output
	}
	if c.HasFill {
		return c.Fill
	}
	return lipgloss.NewStyle()
}
