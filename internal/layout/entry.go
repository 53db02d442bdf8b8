package layout

// Source is anything with input fragments and an output value.
type Source interface {
	Input() []string
	Output() string
}

// Mode says where the output sits relative to the input.
type Mode int

const (
	SideBySide Mode = iota
	Stacked
)

func (m Mode) String() string {
	switch m {
	case SideBySide:
		return "side-by-side"
	case Stacked:
		return "stacked"
	default:
		return "unknown"
	}
}

// Entry is the laid-out form of one stack item.
type Entry struct {
	Input  Line
	Output Chunk
	Height float64
	Mode   Mode
}

// Bounds is the union of the input and output frames.
func (e Entry) Bounds() Rect {
	return e.Input.Bounds().Union(e.Output.Frame)
}

// Entry lays out src for a row maxWidth wide. With an unbounded width the
// output follows the input directly. Example entries, used for compact
// previews, place the output right after the input and center the
// shorter side on half the height difference.
func (t *Typesetter) Entry(src Source, maxWidth float64, example bool) Entry {
	hp := t.metrics.HorizontalPadding
	vp := t.metrics.VerticalPadding
	fragments := src.Input()

	in := t.Wrap(fragments, Unbounded)
	out := t.Chunk(src.Output(), Unbounded)

	unbounded := IsUnbounded(maxWidth)
	mode := SideBySide
	var available float64
	if unbounded {
		available = out.Frame.Size.Width
	} else {
		available = max(0, maxWidth-2*hp)
		if in.Size.Width+out.Frame.Size.Width+hp > available {
			mode = Stacked
			in = t.Wrap(fragments, available-hp)
			out = t.Chunk(src.Output(), available-hp)
		} else {
			out = t.Chunk(src.Output(), available/2-hp)
			in = t.Wrap(fragments, available-out.Frame.Size.Width-hp)
		}
	}

	var height float64
	switch mode {
	case Stacked:
		height = in.Size.Height + vp + out.Frame.Size.Height
		out.Frame.Origin.Y += in.Size.Height + vp
	default:
		height = max(in.Size.Height, out.Frame.Size.Height)
		if in.Size.Height < height {
			diff := height - in.Size.Height
			if example {
				diff /= 2
			}
			for i := range in.Chunks {
				in.Chunks[i].Frame.Origin.Y += diff
			}
		} else {
			diff := height - out.Frame.Size.Height
			if example {
				diff /= 2
			}
			out.Frame.Origin.Y += diff
		}
	}

	for i := range in.Chunks {
		in.Chunks[i].Frame.Origin.X += hp
	}

	switch {
	case example && mode == Stacked:
		out.Frame.Origin.X = 3 * hp
	case example || unbounded:
		out.Frame.Origin.X = hp
		if n := len(in.Chunks); n > 0 {
			out.Frame.Origin.X = in.Chunks[n-1].Frame.MaxX()
		}
	default:
		out.Frame.Origin.X = max(0, available-out.Frame.Size.Width+hp)
	}

	return Entry{Input: in, Output: out, Height: height, Mode: mode}
}
