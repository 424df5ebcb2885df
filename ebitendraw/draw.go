// Package ebitendraw paints glyph primitives onto ebiten images.
//
// Paths are handed to ebiten's vector package, which flattens and
// triangulates them; the triangles are then drawn with
// [ebiten.Image.DrawTriangles]. Strokes are first expanded with
// [glyph.StrokeOutline]. Everything is filled with the nonzero rule, so holes
// in assets stay open and translucent strokes are painted once.
package ebitendraw

import (
	"fmt"
	"image"
	"image/color"
	"iter"
	"sync"

	"github.com/calllogviewer/glyph"
	"github.com/calllogviewer/glyph/raster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Options controls how layers are placed on the destination image.
type Options struct {
	// Scale is the number of pixels per unit. Zero means 1.
	Scale float64
	// At is the pixel position of the layers' origin.
	At glyph.Point
	// Assets resolves asset primitives.
	Assets glyph.Assets
}

var whiteSubImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// Drawer paints primitives, reusing its vertex buffers between calls. The
// zero value is ready to use. A Drawer is not safe for concurrent use.
type Drawer struct {
	vs []ebiten.Vertex
	is []uint16
}

// Draw paints layers onto dst in order. opts may be nil.
func (d *Drawer) Draw(dst *ebiten.Image, layers []glyph.Primitive, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	s := opts.Scale
	if s <= 0 {
		s = 1
	}
	aff := glyph.Scale(s, s).ThenTranslate(opts.At.Sub(glyph.Point{}))
	for i, p := range layers {
		outline, err := p.Outline(opts.Assets)
		if err != nil {
			return fmt.Errorf("ebitendraw: layer %d: %w", i, err)
		}
		seq := outline.Transform(aff).PathElements(0)
		if p.Style.Mode == glyph.ModeStroke {
			style := p.Style
			style.Width *= s
			seq = glyph.StrokeOutline(seq, style, raster.DefaultTolerance)
		}
		var path vector.Path
		appendPath(&path, seq)

		d.vs, d.is = path.AppendVerticesAndIndicesForFilling(d.vs[:0], d.is[:0])
		if len(d.is) == 0 {
			continue
		}
		paint(d.vs, p.Style.Color)
		dst.DrawTriangles(d.vs, d.is, whiteSubImage(), &ebiten.DrawTrianglesOptions{
			AntiAlias:      true,
			ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
			FillRule:       ebiten.FillRuleNonZero,
		})
	}
	return nil
}

// Draw paints layers onto dst using a temporary Drawer.
func Draw(dst *ebiten.Image, layers []glyph.Primitive, opts *Options) error {
	var d Drawer
	return d.Draw(dst, layers, opts)
}

// appendPath adds the elements of seq to path.
func appendPath(path *vector.Path, seq iter.Seq[glyph.PathElement]) {
	for el := range seq {
		switch el.Kind {
		case glyph.MoveToKind:
			path.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case glyph.LineToKind:
			path.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case glyph.QuadToKind:
			path.QuadTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y))
		case glyph.CubicToKind:
			path.CubicTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y),
			)
		case glyph.ClosePathKind:
			path.Close()
		}
	}
}

// paint points every vertex at the white source pixel and sets its color to
// c, premultiplied.
func paint(vs []ebiten.Vertex, c color.NRGBA) {
	a := float32(c.A) / 0xff
	r := float32(c.R) / 0xff * a
	g := float32(c.G) / 0xff * a
	b := float32(c.B) / 0xff * a
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}
