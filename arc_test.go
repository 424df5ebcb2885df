package glyph

import (
	"math"
	"slices"
	"testing"
)

func TestSvgArc(t *testing.T) {
	const epsilon = 1e-9
	arc := SvgArc{
		From:  Pt(0, 0),
		To:    Pt(2, 0),
		Radii: Vec(1, 1),
		Sweep: true,
	}
	els := slices.Collect(arc.PathElements(0.1))
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	for _, el := range els {
		if el.Kind != CubicToKind {
			t.Fatalf("got %s, want CubicTo", el.Kind)
		}
	}
	// With positive sweep the half circle passes above the chord on screen.
	assertNear(t, els[0].P2, Pt(1, -1), epsilon)
	diff(t, Pt(2, 0), els[1].P2)

	// Flipping the sweep flag mirrors the arc across the chord.
	arc.Sweep = false
	els = slices.Collect(arc.PathElements(0.1))
	assertNear(t, els[0].P2, Pt(1, 1), epsilon)
}

func TestSvgArcLargeArc(t *testing.T) {
	const epsilon = 1e-6
	// Quarter circle of radius 10 around (10, 10), and its three-quarter
	// complement.
	small := SvgArc{From: Pt(0, 10), To: Pt(10, 0), Radii: Vec(10, 10), Sweep: true}
	large := small
	large.LargeArc = true

	smallPath := Path(slices.Collect(small.PathElements(0.1)))
	largePath := Path(slices.Collect(large.PathElements(0.1)))
	if len(smallPath) != 1 || len(largePath) != 3 {
		t.Fatalf("got %d and %d cubics, want 1 and 3", len(smallPath), len(largePath))
	}
	diff(t, Rect{0, 0, 10, 10}, small.BoundingBox(), approx)

	// Every flattened point lies on a circle of radius 10.
	for name, arc := range map[string]SvgArc{"small": small, "large": large} {
		center := Pt(10, 10)
		if name == "large" {
			center = Pt(0, 0)
		}
		p := append(Path{MoveTo(arc.From)}, slices.Collect(arc.PathElements(0.1))...)
		for el := range Flatten(p.PathElements(0.1), 1e-3) {
			if d := math.Abs(el.P0.Distance(center) - 10); d > 10*3e-4+epsilon {
				t.Errorf("%s: %v is %g off the circle", name, el.P0, d)
			}
		}
	}
}

func TestSvgArcDegenerate(t *testing.T) {
	same := SvgArc{From: Pt(1, 1), To: Pt(1, 1), Radii: Vec(5, 5)}
	if els := slices.Collect(same.PathElements(0.1)); len(els) != 0 {
		t.Errorf("coincident end points produced %v", els)
	}

	flat := SvgArc{From: Pt(0, 0), To: Pt(4, 3), Radii: Vec(0, 5)}
	diff(t, []PathElement{LineTo(Pt(4, 3))}, slices.Collect(flat.PathElements(0.1)))

	// Radii too small to span the chord are scaled up to a half ellipse.
	tiny := SvgArc{From: Pt(0, 0), To: Pt(10, 0), Radii: Vec(1, 1), Sweep: true}
	els := slices.Collect(tiny.PathElements(0.1))
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	assertNear(t, els[0].P2, Pt(5, -5), 1e-9)
	diff(t, Pt(10, 0), els[1].P2)
}
