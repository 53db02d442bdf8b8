package layout

// Line is a sequence of chunks wrapped onto one or more display rows.
// LineNumbers[i] is the line chunk i was assigned to; the numbers never
// decrease along the sequence.
type Line struct {
	Chunks      []Chunk
	LineNumbers []int
	Size        Size
}

// Lines returns the number of display lines, zero for an empty Line.
func (l Line) Lines() int {
	if len(l.LineNumbers) == 0 {
		return 0
	}
	return l.LineNumbers[len(l.LineNumbers)-1] + 1
}

// Bounds is the union of every chunk frame.
func (l Line) Bounds() Rect {
	var r Rect
	for _, c := range l.Chunks {
		r = r.Union(c.Frame)
	}
	return r
}

// Wrap lays fragments out left to right, breaking onto a new line whenever
// a fragment does not fit in what is left of the current one. A short
// fragment that would fit, but whose right neighbour would not, moves to
// the next line as well so it is not stranded at the end of a line.
func (t *Typesetter) Wrap(fragments []string, maxWidth float64) Line {
	chunks := make([]Chunk, len(fragments))
	for i, f := range fragments {
		chunks[i] = t.Chunk(f, maxWidth)
	}
	numbers := make([]int, len(chunks))

	if !IsUnbounded(maxWidth) {
		available := maxWidth
		line, onLine := 0, 0
		for i := range chunks {
			w := chunks[i].Frame.Size.Width
			overflows := w > available
			strands := w < t.metrics.ShortChunkWidth &&
				i+1 < len(chunks) &&
				w+chunks[i+1].Frame.Size.Width > available
			// A fragment that starts a line stays there even if it is too
			// wide; breaking again would only leave an empty line behind.
			if (overflows || strands) && onLine > 0 {
				line++
				onLine = 0
				available = maxWidth
			}
			chunks[i] = t.Chunk(fragments[i], available)
			numbers[i] = line
			available -= chunks[i].Frame.Size.Width
			onLine++
		}
	}

	return Line{
		Chunks:      chunks,
		LineNumbers: numbers,
		Size:        position(chunks, numbers),
	}
}

// position places chunks line by line and returns the overall size. Each
// chunk is centred vertically on the tallest chunk of its line.
func position(chunks []Chunk, numbers []int) Size {
	var size Size
	for start := 0; start < len(chunks); {
		end := start
		for end < len(chunks) && numbers[end] == numbers[start] {
			end++
		}

		var lineW, lineH float64
		for _, c := range chunks[start:end] {
			lineW += c.Frame.Size.Width
			lineH = max(lineH, c.Frame.Size.Height)
		}

		x := 0.0
		for i := start; i < end; i++ {
			fs := chunks[i].Frame.Size
			chunks[i].Frame.Origin = Point{X: x, Y: size.Height + (lineH-fs.Height)/2}
			x += fs.Width
		}

		size.Width = max(size.Width, lineW)
		size.Height += lineH
		start = end
	}
	return size
}
