package layout

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Chunk is one measured text fragment. Rows holds the text broken into the
// visual rows the measurement produced; Frame.Origin is filled in by the
// line and entry layout passes.
type Chunk struct {
	Text  string
	Rows  []string
	Frame Rect
}

// Typesetter measures and arranges text for a fixed set of metrics.
type Typesetter struct {
	metrics Metrics
}

// NewTypesetter returns a Typesetter for m.
func NewTypesetter(m Metrics) *Typesetter {
	return &Typesetter{metrics: m.normalized()}
}

// Metrics returns the metrics the typesetter lays out with.
func (t *Typesetter) Metrics() Metrics { return t.metrics }

// Measure returns the footprint of text when constrained to maxWidth.
// Pass Unbounded for the natural single-row size. Both dimensions are
// rounded up to whole layout units; empty text measures as zero.
func (t *Typesetter) Measure(text string, maxWidth float64) Size {
	return t.Chunk(text, maxWidth).Frame.Size
}

// Chunk measures text against maxWidth and returns it positioned at the origin.
func (t *Typesetter) Chunk(text string, maxWidth float64) Chunk {
	rows := t.breakRows(text, maxWidth)
	cells := 0
	for _, r := range rows {
		cells = max(cells, CellWidth(r))
	}
	f := t.metrics.Font
	return Chunk{
		Text: text,
		Rows: rows,
		Frame: Rect{Size: Size{
			Width:  math.Ceil(float64(cells) * f.Advance),
			Height: math.Ceil(float64(len(rows)) * f.LineHeight),
		}},
	}
}

// columns converts a width in layout units to a whole number of cells,
// returning 0 for an unbounded width. A bounded width always allows at
// least one cell so that every glyph can be placed somewhere.
func (t *Typesetter) columns(maxWidth float64) int {
	if IsUnbounded(maxWidth) {
		return 0
	}
	cols := int(math.Floor(maxWidth/t.metrics.Font.Advance + 1e-9))
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (t *Typesetter) breakRows(text string, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	cols := t.columns(maxWidth)
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		rows = append(rows, wrapCells(line, cols)...)
	}
	return rows
}

// wrapCells hard-wraps s so no row is wider than cols cells. A glyph wider
// than cols still gets a row of its own. cols <= 0 disables wrapping.
func wrapCells(s string, cols int) []string {
	if cols <= 0 || CellWidth(s) <= cols {
		return []string{s}
	}
	var (
		rows []string
		b    strings.Builder
		w    int
	)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w > 0 && w+rw > cols {
			rows = append(rows, b.String())
			b.Reset()
			w = 0
		}
		b.WriteRune(r)
		w += rw
	}
	return append(rows, b.String())
}

// CellWidth is the number of terminal cells s occupies.
func CellWidth(s string) int {
	w := 0
	for _, r := range s {
		w += runewidth.RuneWidth(r)
	}
	return w
}
