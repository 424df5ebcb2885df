package glyph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// signedArea returns the area enclosed by the flattened contours of p,
// positive for contours running clockwise on screen.
func signedArea(p Path) float64 {
	var area float64
	var start, last Point
	for el := range Flatten(p.PathElements(1e-4), 1e-4) {
		switch el.Kind {
		case MoveToKind:
			area += last.X*start.Y - start.X*last.Y
			start, last = el.P0, el.P0
		case LineToKind:
			area += last.X*el.P0.Y - el.P0.X*last.Y
			last = el.P0
		case ClosePathKind:
			area += last.X*start.Y - start.X*last.Y
			last = start
		}
	}
	area += last.X*start.Y - start.X*last.Y
	return area / 2
}
