package layout

// Font describes a fixed-pitch font: every terminal cell is Advance wide and
// every text row is LineHeight tall.
type Font struct {
	Advance    float64
	LineHeight float64
}

// Metrics holds the font and the spacing constants of entry layout.
type Metrics struct {
	Font Font

	// HorizontalPadding separates the input from the output and both from
	// the edges of the entry.
	HorizontalPadding float64

	// VerticalPadding separates input and output in stacked mode.
	VerticalPadding float64

	// ShortChunkWidth is the width below which a fragment is kept together
	// with its right neighbour when the pair would not fit on the current line.
	// It is a tunable heuristic, not an invariant of the wrap.
	ShortChunkWidth float64
}

// DefaultMetrics returns metrics in typographic points for a 17pt
// monospaced body font.
func DefaultMetrics() Metrics {
	return Metrics{
		Font:              Font{Advance: 10.2, LineHeight: 20.3},
		HorizontalPadding: 16,
		VerticalPadding:   6,
		ShortChunkWidth:   10,
	}
}

// TerminalMetrics returns metrics where one layout unit is one terminal cell.
func TerminalMetrics() Metrics {
	return Metrics{
		Font:              Font{Advance: 1, LineHeight: 1},
		HorizontalPadding: 2,
		VerticalPadding:   0,
		ShortChunkWidth:   4,
	}
}

// normalized replaces unusable font values so measurement never divides by
// zero or produces negative geometry.
func (m Metrics) normalized() Metrics {
	if m.Font.Advance <= 0 {
		m.Font.Advance = 1
	}
	if m.Font.LineHeight <= 0 {
		m.Font.LineHeight = 1
	}
	if m.HorizontalPadding < 0 {
		m.HorizontalPadding = 0
	}
	if m.VerticalPadding < 0 {
		m.VerticalPadding = 0
	}
	return m
}
