// Package raster renders glyph primitives into images using
// golang.org/x/image/vector.
//
// Fills use the nonzero winding rule. Strokes are expanded with
// [glyph.StrokeOutline] and filled in one pass, so a translucent stroke is
// painted at uniform opacity even where it overlaps itself.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"iter"

	"github.com/calllogviewer/glyph"
	"golang.org/x/image/vector"
)

// DefaultTolerance is the flattening tolerance, in pixels, used when
// Renderer.Tolerance is zero.
const DefaultTolerance = 0.1

// Renderer paints primitives into images. The zero value renders at scale 1
// without assets.
//
// A Renderer reuses scratch buffers between calls and is not safe for
// concurrent use.
type Renderer struct {
	// Scale is the number of pixels per unit. Zero means 1.
	Scale float64
	// Tolerance is the maximum deviation, in pixels, of flattened curves.
	Tolerance float64
	// Assets resolves asset primitives.
	Assets glyph.Assets

	ras vector.Rasterizer
}

func (r *Renderer) scale() float64 {
	if r.Scale > 0 {
		return r.Scale
	}
	return 1
}

func (r *Renderer) tolerance() float64 {
	if r.Tolerance > 0 {
		return r.Tolerance
	}
	return DefaultTolerance
}

// Render returns a transparent image covering canvas at the renderer's scale,
// with layers painted onto it.
func (r *Renderer) Render(canvas glyph.Size, layers []glyph.Primitive) (*image.RGBA, error) {
	sz := canvas.Scale(r.scale()).Ceil()
	if sz.IsNaN() || sz.IsInf() || sz.Width < 1 || sz.Height < 1 {
		return nil, fmt.Errorf("raster: cannot render canvas of size %s", canvas)
	}
	img := image.NewRGBA(image.Rect(0, 0, int(sz.Width), int(sz.Height)))
	if err := r.Draw(img, layers, glyph.Point{}); err != nil {
		return nil, err
	}
	return img, nil
}

// Draw paints layers over dst, in order. The layers' origin is placed at the
// pixel position at; coordinates are multiplied by the renderer's scale.
func (r *Renderer) Draw(dst draw.Image, layers []glyph.Primitive, at glyph.Point) error {
	bounds := dst.Bounds()
	if bounds.Empty() {
		return nil
	}
	s := r.scale()
	// Rasterizer coordinates are relative to the destination's bounds.
	aff := glyph.Scale(s, s).ThenTranslate(at.Sub(glyph.Pt(float64(bounds.Min.X), float64(bounds.Min.Y))))
	for i, p := range layers {
		path, err := p.Outline(r.Assets)
		if err != nil {
			return fmt.Errorf("raster: layer %d: %w", i, err)
		}
		path = path.Transform(aff)
		r.ras.Reset(bounds.Dx(), bounds.Dy())
		switch p.Style.Mode {
		case glyph.ModeFill:
			if !r.addPath(path.PathElements(0)) {
				continue
			}
		case glyph.ModeStroke:
			style := p.Style
			style.Width *= s
			if !r.addPath(glyph.StrokeOutline(path.PathElements(0), style, r.tolerance())) {
				continue
			}
		}
		r.ras.Draw(dst, bounds, image.NewUniform(p.Style.Color), image.Point{})
	}
	return nil
}

// addPath adds the elements of seq to the rasterizer, closing every subpath.
// It reports whether anything was added.
func (r *Renderer) addPath(seq iter.Seq[glyph.PathElement]) bool {
	added, open := false, false
	for el := range seq {
		switch el.Kind {
		case glyph.MoveToKind:
			if open {
				r.ras.ClosePath()
			}
			r.ras.MoveTo(float32(el.P0.X), float32(el.P0.Y))
			added, open = true, true
		case glyph.LineToKind:
			r.ras.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case glyph.QuadToKind:
			r.ras.QuadTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y))
		case glyph.CubicToKind:
			r.ras.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y),
			)
		case glyph.ClosePathKind:
			if open {
				r.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.ras.ClosePath()
	}
	return added
}
