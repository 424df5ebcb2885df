package glyph

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
}

// PathElement is one operation of a path. Only the points used by Kind are
// meaningful; the end point of the operation is always the last used one.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s%s", el.Kind, el.P0)
	case QuadToKind:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
	default:
		return el.Kind.String()
	}
}

// End returns the point the element ends on. ClosePath has no end point of its
// own and returns false.
func (el PathElement) End() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() || el.P1.IsInf() || el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN() || el.P2.IsNaN()
}

// Shape is anything that can describe its outline as path elements.
type Shape interface {
	// PathElements returns the outline of the shape. Curved shapes use
	// tolerance to decide how many Bézier segments to emit.
	PathElements(tolerance float64) iter.Seq[PathElement]
	BoundingBox() Rect
}

// Path is an ordered sequence of path elements forming one or more contours.
type Path []PathElement

var _ Shape = Path(nil)

func (p Path) PathElements(tolerance float64) iter.Seq[PathElement] {
	return slices.Values(p)
}

// BoundingBox returns the box spanned by all points of the path, including
// Bézier control points.
func (p Path) BoundingBox() Rect {
	first := true
	var bbox Rect
	add := func(pt Point) {
		if first {
			bbox = Rect{pt.X, pt.Y, pt.X, pt.Y}
			first = false
			return
		}
		bbox = bbox.UnionPoint(pt)
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(el.P0)
		case QuadToKind:
			add(el.P0)
			add(el.P1)
		case CubicToKind:
			add(el.P0)
			add(el.P1)
			add(el.P2)
		}
	}
	return bbox
}

// Transform returns a new path with every point transformed by aff.
func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// Vertices returns the end points of all MoveTo and LineTo elements, in
// order.
func (p Path) Vertices() []Point {
	var pts []Point
	for _, el := range p {
		if el.Kind == MoveToKind || el.Kind == LineToKind {
			pts = append(pts, el.P0)
		}
	}
	return pts
}

// IsClosed reports whether the path ends with ClosePath.
func (p Path) IsClosed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == ClosePathKind
}

func (p Path) IsInf() bool {
	return slices.ContainsFunc(p, PathElement.IsInf)
}

func (p Path) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}

// PathBuilder assembles a path one element at a time.
type PathBuilder struct {
	path Path
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

func (b *PathBuilder) MoveTo(pt Point) *PathBuilder {
	b.path = append(b.path, MoveTo(pt))
	return b
}

func (b *PathBuilder) LineTo(pt Point) *PathBuilder {
	b.path = append(b.path, LineTo(pt))
	return b
}

func (b *PathBuilder) QuadTo(p0, p1 Point) *PathBuilder {
	b.path = append(b.path, QuadTo(p0, p1))
	return b
}

func (b *PathBuilder) CubicTo(p0, p1, p2 Point) *PathBuilder {
	b.path = append(b.path, CubicTo(p0, p1, p2))
	return b
}

func (b *PathBuilder) Close() *PathBuilder {
	b.path = append(b.path, ClosePath())
	return b
}

// Polyline starts a new open contour through pts.
func (b *PathBuilder) Polyline(pts ...Point) *PathBuilder {
	for i, pt := range pts {
		if i == 0 {
			b.MoveTo(pt)
		} else {
			b.LineTo(pt)
		}
	}
	return b
}

// Polygon starts a new closed contour through pts.
func (b *PathBuilder) Polygon(pts ...Point) *PathBuilder {
	if len(pts) == 0 {
		return b
	}
	return b.Polyline(pts...).Close()
}

// Shape appends the outline of s.
func (b *PathBuilder) Shape(s Shape, tolerance float64) *PathBuilder {
	for el := range s.PathElements(tolerance) {
		b.path = append(b.path, el)
	}
	return b
}

// Path returns a copy of the path built so far.
func (b *PathBuilder) Path() Path {
	return slices.Clone(b.path)
}

// Flatten approximates every curve of seq with line segments deviating from
// it by about tolerance at most. MoveTo, LineTo and ClosePath pass through
// unchanged. Subdivision points are spread by curvature, so tight bends get
// more segments than gentle ones; cubics are first split into quadratics.
func Flatten(seq iter.Seq[PathElement], tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		// Share of the tolerance spent on the cubic to quadratic step.
		const toQuadTol = 0.1

		sqrtTol := math.Sqrt(tolerance)
		var last, start Point
		type quad struct {
			q      QuadBez
			params flattenParams
		}
		var quads []quad
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				last, start = el.P0, el.P0
				if !yield(el) {
					return
				}
			case LineToKind:
				last = el.P0
				if !yield(el) {
					return
				}
			case QuadToKind:
				q := QuadBez{last, el.P0, el.P1}
				params := q.flattenParams(sqrtTol)
				n := subdivisions(params.val, sqrtTol)
				for i := 1; i < n; i++ {
					t := params.subdivT(float64(i) / float64(n))
					if !yield(LineTo(q.Eval(t))) {
						return
					}
				}
				if !yield(LineTo(q.P2)) {
					return
				}
				last = q.P2
			case CubicToKind:
				c := CubicBez{last, el.P0, el.P1, el.P2}
				sqrtRemainTol := sqrtTol * math.Sqrt(1-toQuadTol)
				quads = quads[:0]
				sum := 0.0
				for q := range c.Quadratics(tolerance * toQuadTol) {
					params := q.flattenParams(sqrtRemainTol)
					sum += params.val
					quads = append(quads, quad{q, params})
				}
				n := subdivisions(sum, sqrtRemainTol)

				// Emit the evenly spaced targets falling inside each quadratic.
				step := sum / float64(n)
				i := 1
				acc := 0.0
				for _, qp := range quads {
					target := float64(i) * step
					for i < n && target < acc+qp.params.val {
						t := qp.params.subdivT((target - acc) / qp.params.val)
						if !yield(LineTo(qp.q.Eval(t))) {
							return
						}
						i++
						target = float64(i) * step
					}
					acc += qp.params.val
				}
				if !yield(LineTo(c.P3)) {
					return
				}
				last = c.P3
			case ClosePathKind:
				last = start
				if !yield(el) {
					return
				}
			}
		}
	}
}

// subdivisions returns the number of segments for a curve whose flattening
// estimate is val.
func subdivisions(val, sqrtTol float64) int {
	if v := math.Ceil(0.5 * val / sqrtTol); v > 1 {
		return min(int(v), 1000)
	}
	return 1
}
