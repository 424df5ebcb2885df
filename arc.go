package glyph

import (
	"iter"
	"math"
)

// arcSegments yields cubic Bézier elements approximating the elliptical arc
// around center. It yields no leading MoveTo; the caller is expected to be at
// the arc's start point already. Each cubic spans at most a quarter turn.
func arcSegments(center Point, radii Vec2, xRotation, startAngle, sweepAngle float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		// Sweeps that are a whole number of quarter turns up to rounding
		// error don't get an extra sliver segment.
		n := math.Ceil(math.Abs(sweepAngle)/(math.Pi/2) - 1e-9)
		if n <= 0 {
			return
		}
		step := sweepAngle / n
		armLen := (4.0 / 3.0) * math.Tan(step/4)
		angle0 := startAngle
		p0 := sampleEllipse(radii, xRotation, angle0)
		for range int(n) {
			angle1 := angle0 + step
			p1 := p0.Add(sampleEllipse(radii, xRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(radii, xRotation, angle1)
			p2 := p3.Sub(sampleEllipse(radii, xRotation, angle1+math.Pi/2).Mul(armLen))
			if !yield(CubicTo(
				center.Translate(p1),
				center.Translate(p2),
				center.Translate(p3),
			)) {
				return
			}
			angle0, p0 = angle1, p3
		}
	}
}

// sampleEllipse returns the offset from the ellipse's center of the point at
// angle, for an ellipse with the given radii rotated by xRotation.
func sampleEllipse(radii Vec2, xRotation, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	rs, rc := math.Sincos(xRotation)
	return Vec2{
		X: u*rc - v*rs,
		Y: u*rs + v*rc,
	}
}

// SvgArc is an elliptical arc in SVG's endpoint parameterization, as used by
// the A command of path data.
type SvgArc struct {
	From      Point
	To        Point
	Radii     Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

// PathElements yields the arc as cubic Béziers without a leading MoveTo.
// Out-of-range radii are scaled up as required by SVG; an arc with a zero
// radius degenerates to a straight line, and one whose end points coincide
// yields nothing.
func (a SvgArc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if a.From == a.To {
			return
		}
		rx, ry := math.Abs(a.Radii.X), math.Abs(a.Radii.Y)
		if rx == 0 || ry == 0 {
			yield(LineTo(a.To))
			return
		}

		sinPhi, cosPhi := math.Sincos(a.XRotation)
		hd := a.From.Sub(a.To).Mul(0.5)
		x1 := cosPhi*hd.X + sinPhi*hd.Y
		y1 := -sinPhi*hd.X + cosPhi*hd.Y

		if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
			s := math.Sqrt(lambda)
			rx *= s
			ry *= s
		}

		num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
		den := rx*rx*y1*y1 + ry*ry*x1*x1
		coef := 0.0
		if den != 0 {
			coef = math.Sqrt(max(0, num/den))
		}
		if a.LargeArc == a.Sweep {
			coef = -coef
		}
		cx1 := coef * rx * y1 / ry
		cy1 := -coef * ry * x1 / rx

		mid := a.From.Midpoint(a.To)
		center := Pt(
			cosPhi*cx1-sinPhi*cy1+mid.X,
			sinPhi*cx1+cosPhi*cy1+mid.Y,
		)

		u := Vec((x1-cx1)/rx, (y1-cy1)/ry)
		v := Vec((-x1-cx1)/rx, (-y1-cy1)/ry)
		start := u.Angle()
		sweep := math.Atan2(u.Cross(v), u.Dot(v))
		if !a.Sweep && sweep > 0 {
			sweep -= 2 * math.Pi
		} else if a.Sweep && sweep < 0 {
			sweep += 2 * math.Pi
		}

		var last PathElement
		pending := false
		for el := range arcSegments(center, Vec(rx, ry), a.XRotation, start, sweep) {
			if pending && !yield(last) {
				return
			}
			last, pending = el, true
		}
		if pending {
			// Land exactly on the requested end point.
			last.P2 = a.To
			yield(last)
		}
	}
}

func (a SvgArc) BoundingBox() Rect {
	p := Path{MoveTo(a.From)}
	for el := range a.PathElements(0.1) {
		p = append(p, el)
	}
	return p.BoundingBox()
}
