package svg

import (
	"errors"
	"slices"
	"testing"

	"github.com/calllogviewer/glyph"
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

func pt(x, y float64) glyph.Point { return glyph.Pt(x, y) }

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want glyph.Path
	}{
		{"", nil},
		{"M10 20 L30 40 Z", glyph.Path{
			glyph.MoveTo(pt(10, 20)), glyph.LineTo(pt(30, 40)), glyph.ClosePath(),
		}},
		{"m10 20 l5 5 h10 v-5 z", glyph.Path{
			glyph.MoveTo(pt(10, 20)), glyph.LineTo(pt(15, 25)), glyph.LineTo(pt(25, 25)),
			glyph.LineTo(pt(25, 20)), glyph.ClosePath(),
		}},
		{"M0,0 10,10 20,0", glyph.Path{
			glyph.MoveTo(pt(0, 0)), glyph.LineTo(pt(10, 10)), glyph.LineTo(pt(20, 0)),
		}},
		{"m1 1 2 2", glyph.Path{glyph.MoveTo(pt(1, 1)), glyph.LineTo(pt(3, 3))}},
		{"M0 0H5V6h-1v1", glyph.Path{
			glyph.MoveTo(pt(0, 0)), glyph.LineTo(pt(5, 0)), glyph.LineTo(pt(5, 6)),
			glyph.LineTo(pt(4, 6)), glyph.LineTo(pt(4, 7)),
		}},
		{"M0 0C1 1 2 2 3 3S5 5 6 6", glyph.Path{
			glyph.MoveTo(pt(0, 0)),
			glyph.CubicTo(pt(1, 1), pt(2, 2), pt(3, 3)),
			glyph.CubicTo(pt(4, 4), pt(5, 5), pt(6, 6)),
		}},
		{"M0 0S1 1 2 2", glyph.Path{
			glyph.MoveTo(pt(0, 0)), glyph.CubicTo(pt(0, 0), pt(1, 1), pt(2, 2)),
		}},
		{"M0 0Q1 1 2 0T4 0", glyph.Path{
			glyph.MoveTo(pt(0, 0)),
			glyph.QuadTo(pt(1, 1), pt(2, 0)),
			glyph.QuadTo(pt(3, -1), pt(4, 0)),
		}},
		{"M1 1q1 1 2 0t2 0", glyph.Path{
			glyph.MoveTo(pt(1, 1)),
			glyph.QuadTo(pt(2, 2), pt(3, 1)),
			glyph.QuadTo(pt(4, 0), pt(5, 1)),
		}},
		{"M0 0Z L5 5", glyph.Path{
			glyph.MoveTo(pt(0, 0)), glyph.ClosePath(),
			glyph.MoveTo(pt(0, 0)), glyph.LineTo(pt(5, 5)),
		}},
		{"M0 0L1 0ZZ", glyph.Path{
			glyph.MoveTo(pt(0, 0)), glyph.LineTo(pt(1, 0)), glyph.ClosePath(),
		}},
		{"M2 2L3 3z m1 1 l1 0", glyph.Path{
			glyph.MoveTo(pt(2, 2)), glyph.LineTo(pt(3, 3)), glyph.ClosePath(),
			glyph.MoveTo(pt(3, 3)), glyph.LineTo(pt(4, 3)),
		}},
		{"M-1.5.5 L1e1-2", glyph.Path{glyph.MoveTo(pt(-1.5, 0.5)), glyph.LineTo(pt(10, -2))}},
		{"\n\tM 1 , 2\r\n", glyph.Path{glyph.MoveTo(pt(1, 2))}},
	}
	for _, tt := range tests {
		got, err := ParsePath(tt.in)
		if err != nil {
			t.Errorf("ParsePath(%q): %v", tt.in, err)
			continue
		}
		if d := cmp.Diff(tt.want, got, approx); d != "" {
			t.Errorf("ParsePath(%q):\n%s", tt.in, d)
		}
	}
}

func TestParsePathArc(t *testing.T) {
	got, err := ParsePath("M0 0A1 1 0 0 1 2 0")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d elements, want MoveTo and 2 cubics", len(got))
	}
	arc := glyph.SvgArc{From: pt(0, 0), To: pt(2, 0), Radii: glyph.Vec(1, 1), Sweep: true}
	want := append(glyph.Path{glyph.MoveTo(pt(0, 0))}, slices.Collect(arc.PathElements(0.1))...)
	diff(t, want, got)

	// Flags may be written without separators.
	compact, err := ParsePath("M0 0a1 1 0 012 0")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, compact)

	// Zero radii degrade to a line.
	line, err := ParsePath("M0 0A0 0 0 0 0 3 4")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, glyph.Path{glyph.MoveTo(pt(0, 0)), glyph.LineTo(pt(3, 4))}, line)
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"L1 1", 0},
		{"  x", 2},
		{"M1", 2},
		{"M1 1 X2 2", 5},
		{"M0 0 A1 1 0 2 1 1 1", 12},
		{"M0 0 Z 1 1", 7},
		{"M0 0 L1 a", 8},
	}
	for _, tt := range tests {
		_, err := ParsePath(tt.in)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("ParsePath(%q): got %v, want *SyntaxError", tt.in, err)
			continue
		}
		if serr.Offset != tt.offset {
			t.Errorf("ParsePath(%q): got offset %d, want %d (%s)", tt.in, serr.Offset, tt.offset, serr.Msg)
		}
	}
}

func TestFormatPath(t *testing.T) {
	p := glyph.Path{
		glyph.MoveTo(pt(1, 2)),
		glyph.LineTo(pt(3.5, -4)),
		glyph.QuadTo(pt(0, 0), pt(1, 1)),
		glyph.CubicTo(pt(1, 2), pt(3, 4), pt(5, 6)),
		glyph.ClosePath(),
	}
	if got, want := FormatPath(p), "M1 2 L3.5 -4 Q0 0 1 1 C1 2 3 4 5 6Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	rounded := glyph.Path{glyph.MoveTo(pt(2.1999999999999993, -0.0001)), glyph.LineTo(pt(10, 0.126))}
	if got, want := string(AppendPath(nil, rounded, 2)), "M2.2 0 L10 0.13"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, kind := range glyph.IconKinds {
		ic, err := glyph.Generate(glyph.IconSpec{Kind: kind, Size: 23, Color: glyph.Black, Outgoing: true})
		if err != nil {
			t.Fatal(err)
		}
		for i, l := range ic.Layers {
			if l.IsAsset() {
				continue
			}
			got, err := ParsePath(FormatPath(l.Path))
			if err != nil {
				t.Fatalf("%s layer %d: %v", kind, i, err)
			}
			if d := cmp.Diff(l.Path, got, approx); d != "" {
				t.Errorf("%s layer %d:\n%s", kind, i, d)
			}
		}
	}
}
