package glyph

import (
	"iter"
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

var _ Shape = Circle{}

// PathElements returns the circle as a closed contour of four cubic Béziers,
// starting at the rightmost point and running with increasing angle.
func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		r := math.Abs(c.Radius)
		if !yield(MoveTo(Pt(c.Center.X+r, c.Center.Y))) {
			return
		}
		for el := range arcSegments(c.Center, Vec(r, r), 0, 0, 2*math.Pi) {
			if !yield(el) {
				return
			}
		}
		yield(ClosePath())
	}
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{c.Center.X - r, c.Center.Y - r, c.Center.X + r, c.Center.Y + r}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
