package ebitendraw

import (
	"image/color"
	"testing"

	"github.com/calllogviewer/glyph"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func TestPaint(t *testing.T) {
	vs := make([]ebiten.Vertex, 2)
	paint(vs, color.NRGBA{R: 0xff, G: 0x00, B: 0x66, A: 0x80})
	a := float32(0x80) / 0xff
	want := []float32{1, 1, a, 0, 0.4 * a, a}
	for _, v := range vs {
		got := []float32{v.SrcX, v.SrcY, v.ColorR, v.ColorG, v.ColorB, v.ColorA}
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); d != "" {
			t.Error(d)
		}
	}
}

func TestAppendPath(t *testing.T) {
	tri, err := glyph.EquilateralTriangleDown(12)
	if err != nil {
		t.Fatal(err)
	}
	var path vector.Path
	appendPath(&path, glyph.NewPathBuilder().Polygon(tri[:]...).Path().PathElements(0))
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(vs) < 3 || len(is) < 3 || len(is)%3 != 0 {
		t.Fatalf("got %d vertices and %d indices", len(vs), len(is))
	}
	for _, v := range vs {
		if v.DstX < -1e-3 || v.DstX > 12+1e-3 || v.DstY < 0 || v.DstY > 12 {
			t.Errorf("vertex (%g, %g) outside the triangle's box", v.DstX, v.DstY)
		}
	}
}

func TestAppendStrokeOutline(t *testing.T) {
	line := glyph.NewPathBuilder().MoveTo(glyph.Pt(2, 5)).LineTo(glyph.Pt(10, 5)).Path()
	var path vector.Path
	appendPath(&path, glyph.StrokeOutline(line.PathElements(0), glyph.Stroke(2, glyph.Black), 0.1))
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(is) == 0 {
		t.Fatal("stroke outline produced no triangles")
	}
	for _, v := range vs {
		if v.DstX < 2-1e-3 || v.DstX > 10+1e-3 || v.DstY < 4-1e-3 || v.DstY > 6+1e-3 {
			t.Errorf("vertex (%g, %g) outside the stroke's box", v.DstX, v.DstY)
		}
	}
}
