package glyph

import (
	"iter"
	"math"
)

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(3 * mt * mt * t)
	d := Vec2(c.P2).Mul(3 * mt * t * t)
	e := Vec2(c.P3).Mul(t * t * t)
	return Point(a.Add(b).Add(d).Add(e))
}

// Deriv returns the derivative, a quadratic Bézier whose points are vectors.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Subsegment returns the part of c between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Deriv()
	scale := (t1 - t0) / 3
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Quadratics approximates c by quadratic segments within accuracy. The
// cubic is split evenly in t; the error of each piece is bounded by the
// constant third derivative.
func (c CubicBez) Quadratics(accuracy float64) iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		// 432 is (36/√3)².
		maxHypot2 := 432 * accuracy * accuracy
		err := c.quadControl2().Sub(c.quadControl1()).Hypot2()
		n := 1
		if v := math.Ceil(math.Sqrt(math.Cbrt(err / maxHypot2))); v > 1 {
			n = int(v)
		}
		for i := range n {
			seg := c.Subsegment(float64(i)/float64(n), float64(i+1)/float64(n))
			mid := seg.quadControl1().Add(seg.quadControl2()).Mul(0.25)
			if !yield(QuadBez{seg.P0, Point(mid), seg.P3}) {
				return
			}
		}
	}
}

func (c CubicBez) quadControl1() Vec2 { return Vec2(c.P1).Mul(3).Sub(Vec2(c.P0)) }
func (c CubicBez) quadControl2() Vec2 { return Vec2(c.P2).Mul(3).Sub(Vec2(c.P3)) }
