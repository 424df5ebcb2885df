package glyph

import "iter"

// Line represents a line segment.
type Line struct {
	P0 Point
	P1 Point
}

var _ Shape = Line{}

func (l Line) BoundingBox() Rect {
	return Rect{
		X0: min(l.P0.X, l.P1.X),
		Y0: min(l.P0.Y, l.P1.Y),
		X1: max(l.P0.X, l.P1.X),
		Y1: max(l.P0.Y, l.P1.Y),
	}
}

func (l Line) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) &&
			yield(LineTo(l.P1))
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{P0: l.P0.Transform(aff), P1: l.P1.Transform(aff)}
}
