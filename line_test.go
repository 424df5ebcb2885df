package glyph

import (
	"slices"
	"testing"
)

func TestLineBoundingBox(t *testing.T) {
	l := Line{Pt(4, -1), Pt(-2, 3)}
	diff(t, Rect{-2, -1, 4, 3}, l.BoundingBox())
}

func TestLinePathElements(t *testing.T) {
	l := Line{Pt(1, 2), Pt(3, 4)}
	got := Path(slices.Collect(l.PathElements(0.1)))
	diff(t, Path{MoveTo(Pt(1, 2)), LineTo(Pt(3, 4))}, got)
	diff(t, Line{Pt(2, 4), Pt(6, 8)}, l.Transform(Scale(2, 2)))
}
