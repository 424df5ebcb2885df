package glyph

import (
	"math"
	"slices"
)

// Asset names understood by renderers.
const (
	// AssetPhoneHandset is the hollow handset silhouette drawn under the
	// call direction arrow.
	AssetPhoneHandset = "phone-handset"
)

// Primitive is one paint operation: either a path painted with Style, or,
// when Asset is set, a host-owned image named Asset placed in Bounds and
// tinted with Style.Color.
//
// Primitives are values; generators never retain or reuse the slices they
// return.
type Primitive struct {
	Path   Path
	Style  Style
	Asset  string
	Bounds Rect
}

// PathPrimitive returns a primitive painting path with style.
func PathPrimitive(path Path, style Style) Primitive {
	return Primitive{Path: path, Style: style}
}

// AssetPrimitive returns a primitive placing the named asset in bounds.
func AssetPrimitive(name string, bounds Rect, tint Style) Primitive {
	return Primitive{Asset: name, Bounds: bounds, Style: tint}
}

// IsAsset reports whether p refers to a host-owned asset.
func (p Primitive) IsAsset() bool { return p.Asset != "" }

// BoundingBox returns the area p may paint. For strokes the path's box is
// grown by half the stroke width.
func (p Primitive) BoundingBox() Rect {
	if p.IsAsset() {
		return p.Bounds
	}
	b := p.Path.BoundingBox()
	if p.Style.Mode == ModeStroke {
		b = b.Inflate(p.Style.Width / 2)
	}
	return b
}

// Assets supplies the outlines of named assets. The returned path is in the
// asset's own coordinate space, described by viewBox.
type Assets interface {
	Asset(name string) (path Path, viewBox Rect, err error)
}

// Outline returns the path to paint for p. Asset primitives are looked up in
// assets and mapped from their view box into p.Bounds.
func (p Primitive) Outline(assets Assets) (Path, error) {
	if !p.IsAsset() {
		return p.Path, nil
	}
	if assets == nil {
		return nil, &AssetError{Name: p.Asset}
	}
	path, viewBox, err := assets.Asset(p.Asset)
	if err != nil {
		return nil, err
	}
	return path.Transform(FitRect(viewBox, p.Bounds)), nil
}

// AssetError is returned by Primitive.Outline when no asset source was
// supplied for an asset primitive.
type AssetError struct {
	Name string
}

func (e *AssetError) Error() string {
	return "glyph: no asset source for " + e.Name
}

// Layers is an ordered list of primitives. Order is paint order: later
// entries are drawn on top of earlier ones.
type Layers []Primitive

// Compose concatenates parts into a new list, in order.
func Compose(parts ...[]Primitive) Layers {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(Layers, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Append returns a new list with ps painted after l. l is not modified.
func (l Layers) Append(ps ...Primitive) Layers {
	out := make(Layers, 0, len(l)+len(ps))
	out = append(out, l...)
	return append(out, ps...)
}

// Translate returns a copy of l moved by v.
func (l Layers) Translate(v Vec2) Layers {
	return l.Transform(Translate(v))
}

// Transform returns a copy of l with every path and asset bounds transformed
// by aff. Stroke widths are scaled by the square root of the determinant.
func (l Layers) Transform(aff Affine) Layers {
	out := slices.Clone(l)
	scale := math.Sqrt(math.Abs(aff.Determinant()))
	for i, p := range out {
		if p.IsAsset() {
			a, b := p.Bounds.Origin().Transform(aff), Pt(p.Bounds.X1, p.Bounds.Y1).Transform(aff)
			out[i].Bounds = Rect{min(a.X, b.X), min(a.Y, b.Y), max(a.X, b.X), max(a.Y, b.Y)}
			continue
		}
		out[i].Path = p.Path.Transform(aff)
		out[i].Style.Width *= scale
	}
	return out
}

// Bounds returns the union of the bounding boxes of all primitives.
func (l Layers) Bounds() Rect {
	var b Rect
	for i, p := range l {
		if i == 0 {
			b = p.BoundingBox()
		} else {
			b = b.Union(p.BoundingBox())
		}
	}
	return b
}
