package components

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/Akashdeep-Patra/rpn-stack/internal/layout"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
)

type item struct {
	in  []string
	out string
}

func (i item) Input() []string { return i.in }
func (i item) Output() string  { return i.out }

func cellFor(t *testing.T, src layout.Source, width int) StackCell {
	t.Helper()
	ts := layout.NewTypesetter(layout.TerminalMetrics())
	e := ts.Entry(src, float64(width), false)
	return StackCell{
		Entry:  e,
		Font:   ts.Metrics().Font,
		Width:  width,
		Height: int(math.Ceil(e.Height)),
		Input:  lipgloss.NewStyle(),
		Output: lipgloss.NewStyle(),
	}
}

func TestRenderStackCellSideBySide(t *testing.T) {
	c := cellFor(t, item{in: []string{"2", " + ", "3"}, out: "5"}, 20)
	got := RenderStackCell(c)
	want := []string{"  2 + 3          5  "}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
}

func TestRenderStackCellStacked(t *testing.T) {
	c := cellFor(t, item{in: []string{"123456", " + ", "654321"}, out: "777777"}, 14)
	got := RenderStackCell(c)
	if len(got) != c.Height {
		t.Fatalf("got %d rows, want %d", len(got), c.Height)
	}
	for i, row := range got {
		if w := lipgloss.Width(row); w != 14 {
			t.Errorf("row %d width = %d, want 14", i, w)
		}
	}
	last := got[len(got)-1]
	if !strings.Contains(last, "777777") {
		t.Errorf("output not on last row: %q", got)
	}
	if strings.Contains(got[0], "777777") {
		t.Errorf("stacked output drawn on the first row: %q", got)
	}
}

func TestRenderStackCellClipsWideGlyphs(t *testing.T) {
	c := StackCell{
		Entry: layout.Entry{Output: layout.Chunk{
			Rows:  []string{"数字"},
			Frame: layout.Rect{Origin: layout.Point{X: 1}, Size: layout.Size{Width: 4, Height: 1}},
		}},
		Font:   layout.Font{Advance: 1, LineHeight: 1},
		Width:  4,
		Height: 1,
	}
	got := RenderStackCell(c)
	if diff := cmp.Diff([]string{" 数 "}, got); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
}

func TestRenderStackCellOverlapKeepsWidth(t *testing.T) {
	chunk := func(text string, x float64) layout.Chunk {
		return layout.Chunk{
			Rows:  []string{text},
			Frame: layout.Rect{Origin: layout.Point{X: x}, Size: layout.Size{Width: 4, Height: 1}},
		}
	}
	tests := []struct {
		name   string
		input  layout.Chunk
		output layout.Chunk
		want   string
	}{
		{"narrow over second half", chunk("数字", 0), chunk("x", 1), " x字"},
		{"narrow over first half", chunk("数字", 0), chunk("y", 2), "数y "},
		{"wide straddling two wide", chunk("数字", 0), chunk("文", 1), " 文 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := StackCell{
				Entry: layout.Entry{
					Input:  layout.Line{Chunks: []layout.Chunk{tt.input}},
					Output: tt.output,
				},
				Font:   layout.Font{Advance: 1, LineHeight: 1},
				Width:  4,
				Height: 1,
			}
			got := RenderStackCell(c)
			if diff := cmp.Diff([]string{tt.want}, got); diff != "" {
				t.Errorf("rows (-want +got):\n%s", diff)
			}
			if w := lipgloss.Width(got[0]); w != 4 {
				t.Errorf("row is %d cells wide, want 4", w)
			}
		})
	}
}

func TestRenderStackCellEmpty(t *testing.T) {
	if got := RenderStackCell(StackCell{Width: 0, Height: 3}); got != nil {
		t.Errorf("zero width rendered %q", got)
	}
}

func TestThumbSpan(t *testing.T) {
	tests := []struct {
		name                       string
		height, content, vis, off  int
		wantStart, wantSize        int
		wantOK                     bool
	}{
		{"fits", 10, 8, 10, 0, 0, 0, false},
		{"top", 10, 40, 10, 0, 0, 2, true},
		{"bottom", 10, 40, 10, 30, 8, 2, true},
		{"middle", 10, 40, 10, 15, 4, 2, true},
		{"offset clamped", 10, 40, 10, 99, 8, 2, true},
		{"tiny thumb", 4, 1000, 4, 0, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, size, ok := ThumbSpan(tt.height, tt.content, tt.vis, tt.off)
			if start != tt.wantStart || size != tt.wantSize || ok != tt.wantOK {
				t.Errorf("ThumbSpan = (%d, %d, %v), want (%d, %d, %v)",
					start, size, ok, tt.wantStart, tt.wantSize, tt.wantOK)
			}
		})
	}
}

func TestRenderScrollbarHeight(t *testing.T) {
	styles := ui.DefaultStyles()
	for _, content := range []int{5, 50} {
		bar := RenderScrollbar(styles, 7, content, 7, 0)
		if n := strings.Count(bar, "\n") + 1; n != 7 {
			t.Errorf("content %d: %d rows, want 7", content, n)
		}
	}
	if RenderScrollbar(styles, 0, 10, 5, 0) != "" {
		t.Error("zero height scrollbar not empty")
	}
}

func TestRenderBannerFitsWidth(t *testing.T) {
	styles := ui.DefaultStyles()
	long := strings.Repeat("overflow ", 20)
	for _, alert := range []bool{false, true} {
		got := RenderBanner(styles, BannerData{Text: long, Alert: alert}, 30)
		if w := lipgloss.Width(got); w != 30 {
			t.Errorf("alert=%v width = %d, want 30", alert, w)
		}
		if strings.Contains(got, "\n") {
			t.Errorf("alert=%v banner wrapped: %q", alert, got)
		}
	}
}

func TestRenderHintBarDropsWhatDoesNotFit(t *testing.T) {
	styles := ui.DefaultStyles()
	hints := []Hint{{"enter", "submit"}, {"?", "help"}, {"ctrl+c", "quit"}}
	got := RenderHintBar(styles, hints, 20)
	if !strings.Contains(got, "submit") {
		t.Errorf("first hint missing: %q", got)
	}
	if strings.Contains(got, "quit") {
		t.Errorf("overflowing hint rendered: %q", got)
	}
	if w := lipgloss.Width(got); w != 20 {
		t.Errorf("width = %d, want 20", w)
	}
}

func TestRenderPaletteHeight(t *testing.T) {
	styles := ui.DefaultStyles()
	groups := []PaletteGroup{{Title: "Arithmetic", Items: []string{"add +", "sub -"}}}
	got := RenderPalette(styles, groups, 6)
	if n := lipgloss.Height(got); n != 6 {
		t.Errorf("height = %d, want 6", n)
	}
	if w := lipgloss.Width(got); w != PaletteWidth {
		t.Errorf("width = %d, want %d", w, PaletteWidth)
	}
}

func TestHelpBodyListsSectionsInOrder(t *testing.T) {
	styles := ui.DefaultStyles()
	sections := []HelpSection{
		{Title: "Keys", Entries: []HelpEntry{{Key: "enter", Desc: "Submit"}}},
		{Title: "Empty"},
		{Title: "Operators", Entries: []HelpEntry{{Key: "add", Desc: "Adds", Example: []string{"2 + 3  5"}}}},
	}
	body := HelpBody(styles, sections, 60)
	keys := strings.Index(body, "Keys")
	ops := strings.Index(body, "Operators")
	if keys < 0 || ops < 0 || keys > ops {
		t.Errorf("sections out of order:\n%s", body)
	}
	if strings.Contains(body, "Empty") {
		t.Errorf("empty section rendered:\n%s", body)
	}
	if !strings.Contains(body, "2 + 3  5") {
		t.Errorf("example missing:\n%s", body)
	}
}
