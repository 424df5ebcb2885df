package glyph

import (
	"slices"
	"testing"
)

// elevated is the quadratic (0, 0), (3, 6), (6, 0) written as a cubic.
var elevated = CubicBez{Pt(0, 0), Pt(2, 4), Pt(4, 4), Pt(6, 0)}

func TestCubicEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	diff(t, Pt(0, 0), c.Eval(0), approx)
	diff(t, Pt(10, 0), c.Eval(1), approx)
	diff(t, Pt(5, 7.5), c.Eval(0.5), approx)

	q := QuadBez{Pt(0, 0), Pt(3, 6), Pt(6, 0)}
	for _, tt := range []float64{0, 0.25, 0.5, 0.9, 1} {
		diff(t, q.Eval(tt), elevated.Eval(tt), approx)
	}
}

func TestCubicSubsegment(t *testing.T) {
	c := CubicBez{Pt(1, 2), Pt(4, 9), Pt(7, -3), Pt(12, 5)}
	diff(t, c, c.Subsegment(0, 1), approx)

	seg := c.Subsegment(0.2, 0.6)
	for _, tt := range []float64{0, 0.3, 0.5, 1} {
		diff(t, c.Eval(0.2+0.4*tt), seg.Eval(tt), approx)
	}
}

func TestCubicQuadratics(t *testing.T) {
	got := slices.Collect(elevated.Quadratics(0.1))
	diff(t, []QuadBez{{Pt(0, 0), Pt(3, 6), Pt(6, 0)}}, got, approx)

	c := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, -100), Pt(100, 0)}
	quads := slices.Collect(c.Quadratics(0.1))
	if len(quads) < 2 {
		t.Fatalf("got %d quadratics for an S-curve", len(quads))
	}
	diff(t, c.P0, quads[0].P0)
	diff(t, c.P3, quads[len(quads)-1].P2, approx)
	for i, q := range quads {
		if i > 0 {
			diff(t, quads[i-1].P2, q.P0, approx)
		}
		// Each piece stays close to the cubic at its midpoint.
		tt := (float64(i) + 0.5) / float64(len(quads))
		if d := q.Eval(0.5).Distance(c.Eval(tt)); d > 0.1 {
			t.Errorf("quadratic %d deviates by %g", i, d)
		}
	}
}

func TestQuadFlattenParamsStraight(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
	if val := q.flattenParams(0.1).val; val != 0 {
		t.Errorf("got val %g for a straight segment, want 0", val)
	}
}
