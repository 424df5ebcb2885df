package svg

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/calllogviewer/glyph"
)

// Precision is the number of decimal places written for coordinates and
// widths by Writer.
const Precision = 3

// Writer serializes primitives as an SVG document.
//
// Write errors are sticky: after the first failure all further output is
// dropped and End reports the error.
type Writer struct {
	w      io.Writer
	assets glyph.Assets
	buf    []byte
	err    error
}

// NewWriter returns a Writer writing to w. Asset primitives are resolved
// through assets, which may be nil if none are drawn.
func NewWriter(w io.Writer, assets glyph.Assets) *Writer {
	return &Writer{w: w, assets: assets}
}

func (w *Writer) printf(format string, a ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, a...)
}

// Start writes the document header for a canvas of the given size.
func (w *Writer) Start(canvas glyph.Size) {
	wd, ht := num(canvas.Width), num(canvas.Height)
	w.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		wd, ht, wd, ht)
}

// End closes the document and returns the first error encountered.
func (w *Writer) End() error {
	w.printf("</svg>\n")
	return w.err
}

// Rect writes a filled rectangle, typically a background.
func (w *Writer) Rect(r glyph.Rect, c color.NRGBA) {
	w.printf(`<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(r.X0), num(r.Y0), num(r.Width()), num(r.Height()), paint("fill", glyph.Fill(c)))
}

// Group opens a group translated by v. Each Group must be matched by
// EndGroup.
func (w *Writer) Group(v glyph.Vec2) {
	w.printf(`<g transform="translate(%s %s)">`+"\n", num(v.X), num(v.Y))
}

func (w *Writer) EndGroup() {
	w.printf("</g>\n")
}

// Primitive writes p as a path element.
func (w *Writer) Primitive(p glyph.Primitive) error {
	if w.err != nil {
		return w.err
	}
	path, err := p.Outline(w.assets)
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	if len(path) == 0 {
		return nil
	}
	w.buf = AppendPath(w.buf[:0], path, Precision)
	w.printf(`<path d="%s"%s/>`+"\n", w.buf, attrs(p.Style))
	return w.err
}

// Layers writes every primitive of layers in paint order.
func (w *Writer) Layers(layers []glyph.Primitive) error {
	for _, p := range layers {
		if err := w.Primitive(p); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes a complete SVG document of the given canvas size containing
// layers.
func Encode(out io.Writer, canvas glyph.Size, layers []glyph.Primitive, assets glyph.Assets) error {
	w := NewWriter(out, assets)
	w.Start(canvas)
	if err := w.Layers(layers); err != nil {
		return err
	}
	return w.End()
}

// EncodePattern writes a curve pattern over a background color.
func EncodePattern(out io.Writer, pat glyph.Pattern, background color.NRGBA) error {
	w := NewWriter(out, nil)
	w.Start(pat.Viewport)
	w.Rect(pat.Viewport.Rect(), background)
	if err := w.Layers(pat.Primitives()); err != nil {
		return err
	}
	return w.End()
}

func num(v float64) string {
	s := string(trimZeros(strconv.AppendFloat(nil, v, 'f', Precision, 64)))
	if s == "-0" {
		return "0"
	}
	return s
}

// paint returns the attributes setting property (fill or stroke) to the color
// of s, including a separate opacity attribute for translucent styles.
func paint(property string, s glyph.Style) string {
	opaque := s.Color
	opaque.A = 0xff
	a := fmt.Sprintf(` %s="%s"`, property, glyph.HexColor(opaque))
	if op := s.Opacity(); op != 1 {
		a += fmt.Sprintf(` %s-opacity="%s"`, property, num(op))
	}
	return a
}

func attrs(s glyph.Style) string {
	if s.Mode == glyph.ModeFill {
		return paint("fill", s)
	}
	a := ` fill="none"` + paint("stroke", s) + fmt.Sprintf(` stroke-width="%s"`, num(s.Width))
	if s.Cap == glyph.CapRound {
		a += ` stroke-linecap="round"`
	}
	if s.Join == glyph.JoinRound {
		a += ` stroke-linejoin="round"`
	}
	return a
}
