package glyph

import (
	"fmt"
	"iter"
	"math"
)

// Rect is an axis-aligned rectangle spanning (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

var _ Shape = Rect{}

// NewRectFromOrigin returns the rectangle at origin with the given size.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return Rect{origin.X, origin.Y, origin.X + size.Width, origin.Y + size.Height}
}

// XYWH returns the rectangle at (x, y) with width w and height h.
func XYWH(x, y, w, h float64) Rect {
	return Rect{x, y, x + w, y + h}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{(%g, %g), (%g, %g)}", r.X0, r.Y0, r.X1, r.Y1)
}

func (r Rect) Origin() Point { return Point{r.X0, r.Y0} }

func (r Rect) Width() float64 { return r.X1 - r.X0 }

func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Size() Size { return Size{r.Width(), r.Height()} }

func (r Rect) Center() Point {
	return Point{0.5 * (r.X0 + r.X1), 0.5 * (r.Y0 + r.Y1)}
}

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing both r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{r.X0 - d, r.Y0 - d, r.X1 + d, r.Y1 + d}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{r.X0 + v.X, r.Y0 + v.Y, r.X1 + v.X, r.Y1 + v.Y}
}

func (r Rect) BoundingBox() Rect { return r }

func (r Rect) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}

// RoundedRect returns r with all four corners rounded by radius.
func (r Rect) RoundedRect(radius float64) RoundedRect {
	return RoundedRect{Rect: r, Radius: radius}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) || math.IsInf(r.Y0, 0) || math.IsInf(r.X1, 0) || math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}

// RoundedRect is a rectangle whose corners are quarter circles of the same
// radius. The radius is clamped to half the shorter side when drawn.
type RoundedRect struct {
	Rect
	Radius float64
}

var _ Shape = RoundedRect{}

func (rr RoundedRect) PathElements(tolerance float64) iter.Seq[PathElement] {
	r := rr.Rect
	rad := min(math.Abs(rr.Radius), 0.5*math.Abs(r.Width()), 0.5*math.Abs(r.Height()))
	if rad == 0 {
		return r.PathElements(tolerance)
	}
	// Corners clockwise from the top left; each arc sweeps a quarter turn
	// starting from the angle that points away from the preceding edge.
	corners := [4]struct {
		center Point
		start  float64
	}{
		{Pt(r.X0+rad, r.Y0+rad), math.Pi},
		{Pt(r.X1-rad, r.Y0+rad), 1.5 * math.Pi},
		{Pt(r.X1-rad, r.Y1-rad), 0},
		{Pt(r.X0+rad, r.Y1-rad), 0.5 * math.Pi},
	}
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(Pt(r.X0, r.Y0+rad))) {
			return
		}
		for i, c := range corners {
			if i > 0 {
				start := c.center.Translate(VecFromAngle(c.start).Mul(rad))
				if !yield(LineTo(start)) {
					return
				}
			}
			for el := range arcSegments(c.center, Vec(rad, rad), 0, c.start, math.Pi/2) {
				if !yield(el) {
					return
				}
			}
		}
		yield(ClosePath())
	}
}

func (rr RoundedRect) BoundingBox() Rect { return rr.Rect }
