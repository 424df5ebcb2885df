package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/calllogviewer/glyph"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type document struct {
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	ViewBox string `xml:"viewBox,attr"`
	Rects   []struct {
		Fill string `xml:"fill,attr"`
	} `xml:"rect"`
	Paths []struct {
		D             string `xml:"d,attr"`
		Fill          string `xml:"fill,attr"`
		Stroke        string `xml:"stroke,attr"`
		StrokeWidth   string `xml:"stroke-width,attr"`
		StrokeOpacity string `xml:"stroke-opacity,attr"`
		LineCap       string `xml:"stroke-linecap,attr"`
		LineJoin      string `xml:"stroke-linejoin,attr"`
	} `xml:"path"`
}

func decode(t *testing.T, b []byte) document {
	t.Helper()
	var doc document
	if err := xml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("invalid SVG: %v\n%s", err, b)
	}
	return doc
}

func TestEncodeCaret(t *testing.T) {
	ic, err := glyph.DropdownCaret(12, glyph.DropdownGrey)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, ic.Canvas, ic.Layers, nil); err != nil {
		t.Fatal(err)
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" width="12" height="12" viewBox="0 0 12 12">
<path d="M6 11.196 L0 0.804 L12 0.804Z" fill="#999999"/>
</svg>
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeStrokes(t *testing.T) {
	ic, err := glyph.Calendar(24, glyph.CalendarInk, glyph.CalendarPaper)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, ic.Canvas, ic.Layers, nil); err != nil {
		t.Fatal(err)
	}
	doc := decode(t, buf.Bytes())
	if doc.ViewBox != "0 0 24 24" {
		t.Errorf("got viewBox %q", doc.ViewBox)
	}
	if len(doc.Paths) != len(ic.Layers) {
		t.Fatalf("got %d paths, want %d", len(doc.Paths), len(ic.Layers))
	}
	if p := doc.Paths[0]; p.Fill != "#ffdee3" || p.Stroke != "" {
		t.Errorf("body: got fill %q stroke %q", p.Fill, p.Stroke)
	}
	if p := doc.Paths[1]; p.Fill != "none" || p.Stroke != "#e57d80" || p.StrokeWidth != "1.5" {
		t.Errorf("border: got %+v", p)
	}
	if p := doc.Paths[3]; p.StrokeWidth != "2.2" || p.LineCap != "round" {
		t.Errorf("text line: got %+v", p)
	}
	for i, p := range doc.Paths {
		got, err := ParsePath(p.D)
		if err != nil {
			t.Fatalf("path %d: %v", i, err)
		}
		opt := cmpopts.EquateApprox(0, 0.001)
		if d := cmp.Diff(ic.Layers[i].Path, got, opt); d != "" {
			t.Errorf("path %d:\n%s", i, d)
		}
	}
}

type squareAssets struct{}

func (squareAssets) Asset(name string) (glyph.Path, glyph.Rect, error) {
	p := glyph.NewPathBuilder().Polygon(pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)).Path()
	return p, glyph.Rect{X1: 10, Y1: 10}, nil
}

func TestEncodeAsset(t *testing.T) {
	ic, err := glyph.PhoneHandset(24, glyph.OutgoingGreen, true)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	err = Encode(&buf, ic.Canvas, ic.Layers, nil)
	var aerr *glyph.AssetError
	if !errors.As(err, &aerr) {
		t.Fatalf("got %v, want *glyph.AssetError", err)
	}

	buf.Reset()
	if err := Encode(&buf, ic.Canvas, ic.Layers, squareAssets{}); err != nil {
		t.Fatal(err)
	}
	doc := decode(t, buf.Bytes())
	if len(doc.Paths) != 3 {
		t.Fatalf("got %d paths, want 3", len(doc.Paths))
	}
	if p := doc.Paths[0]; p.D != "M0 0 L24 0 L24 24 L0 24Z" || p.Fill != "#0bb415" {
		t.Errorf("asset: got %+v", p)
	}
}

func TestEncodePattern(t *testing.T) {
	pat, err := glyph.CurveField(350, 100)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodePattern(&buf, pat, glyph.HeaderRed); err != nil {
		t.Fatal(err)
	}
	doc := decode(t, buf.Bytes())
	if len(doc.Rects) != 1 || doc.Rects[0].Fill != "#ef625e" {
		t.Errorf("got background %+v", doc.Rects)
	}
	if len(doc.Paths) != len(pat.Layers) {
		t.Fatalf("got %d paths, want %d", len(doc.Paths), len(pat.Layers))
	}
	first := doc.Paths[0]
	if first.Stroke != "#ffffff" || first.StrokeOpacity != "0.03" || first.LineJoin != "round" {
		t.Errorf("got %+v", first)
	}
	// Neighbouring layers differ by less than one 8-bit alpha step.
	var prev float64
	for i, p := range doc.Paths {
		op, err := strconv.ParseFloat(p.StrokeOpacity, 64)
		if err != nil {
			t.Fatalf("path %d: %v", i, err)
		}
		if op <= prev {
			t.Errorf("path %d: opacity %g not above %g", i, op, prev)
		}
		prev = op
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestEncodeWriteError(t *testing.T) {
	ic, err := glyph.Star(24, glyph.Black)
	if err != nil {
		t.Fatal(err)
	}
	err = Encode(&failWriter{n: 1}, ic.Canvas, ic.Layers, nil)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("got %v, want write error", err)
	}
}
