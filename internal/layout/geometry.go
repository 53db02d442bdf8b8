// Package layout measures, wraps and positions the text of stack entries.
//
// Geometry is expressed in layout units. A Font maps terminal cells to
// layout units, so the same code lays out a transcript in terminal cells
// (TerminalMetrics) or in typographic points (DefaultMetrics).
//
// Every function in this package is pure: the same text, width and
// metrics always produce the same geometry.
package layout

import "math"

// Unbounded is the maximum width used when text may grow without limit.
var Unbounded = math.Inf(1)

// IsUnbounded reports whether w places no limit on width.
func IsUnbounded(w float64) bool {
	return math.IsInf(w, 1) || math.IsNaN(w)
}

// Size is a width and height in layout units.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in layout units, relative to the enclosing entry.
type Point struct {
	X float64
	Y float64
}

// Rect is an origin plus a size.
type Rect struct {
	Origin Point
	Size   Size
}

// MaxX is the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY is the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Union returns the smallest rectangle containing both r and o. An empty
// rectangle (zero size at the origin) is treated as absent.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	minX := math.Min(r.Origin.X, o.Origin.X)
	minY := math.Min(r.Origin.Y, o.Origin.Y)
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{
		Origin: Point{X: minX, Y: minY},
		Size:   Size{Width: maxX - minX, Height: maxY - minY},
	}
}
