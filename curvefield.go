package glyph

import (
	"image/color"
	"math"
)

// CurveLayer is one curve of a decorative pattern: samples of y = K/x mapped
// into screen space, together with the stroke it is drawn with.
type CurveLayer struct {
	K           float64
	Opacity     float64
	StrokeWidth float64
	Points      []Point
}

// Path returns the layer as a single open contour through its points.
func (l CurveLayer) Path() Path {
	return NewPathBuilder().Polyline(l.Points...).Path()
}

// Pattern is a family of hyperbola curves covering a viewport, ordered from
// the innermost (largest K, faintest) to the outermost curve.
type Pattern struct {
	Viewport Size
	Color    color.NRGBA
	Layers   []CurveLayer
}

// Primitives returns the pattern as round-capped stroke primitives, one per
// layer, in paint order. Each layer's opacity replaces the alpha of the
// pattern color.
func (p Pattern) Primitives() Layers {
	out := make(Layers, len(p.Layers))
	for i, l := range p.Layers {
		out[i] = PathPrimitive(l.Path(), Stroke(l.StrokeWidth, p.Color).Rounded().WithOpacity(l.Opacity))
	}
	return out
}

// CurveFieldOptions tunes CurveFieldWith. The zero value draws
// DefaultLayerCount white curves anchored at the viewport's bottom edge.
type CurveFieldOptions struct {
	// LayerCount is the number of curves to attempt; at least 2. Zero means
	// DefaultLayerCount.
	LayerCount int
	// Offset moves the hyperbolas' origin below the viewport's bottom edge.
	// Zero anchors them at the edge itself; see DefaultOffset.
	Offset float64
	// Color of the curves. Its alpha is replaced per layer. The zero color
	// means White.
	Color color.NRGBA
}

// DefaultCurveFieldOptions returns 22 white layers anchored 10 units below
// the viewport.
func DefaultCurveFieldOptions() CurveFieldOptions {
	return CurveFieldOptions{
		LayerCount: DefaultLayerCount,
		Offset:     DefaultOffset,
		Color:      White,
	}
}

// CurveField returns the default decorative pattern for a viewport of the
// given size.
func CurveField(width, height float64) (Pattern, error) {
	return CurveFieldWith(width, height, DefaultCurveFieldOptions())
}

// CurveFieldN is like CurveField but attempts layerCount curves.
func CurveFieldN(width, height float64, layerCount int) (Pattern, error) {
	if layerCount < 2 {
		return Pattern{}, &ParameterError{Op: "CurveField", Name: "layer count", Value: float64(layerCount)}
	}
	opts := DefaultCurveFieldOptions()
	opts.LayerCount = layerCount
	return CurveFieldWith(width, height, opts)
}

// CurveFieldWith returns a family of curves y = k/x drawn with their origin at
// the bottom left of the viewport, offset downwards.
//
// For layer i of n, with progress p = i/(n−1):
//
//	k       = 1500 + (52000−1500)·(1−p)^1.3
//	opacity = 0.03 + 0.03·p
//	width   = 0.6 + 0.1·(1−p)
//
// Each curve is sampled at 61 evenly spaced x between max(0, k/originY) and
// width+80. Samples whose screen y falls outside [−50, height+50] are dropped.
// The screen y of a curve grows with x, so only samples at the ends are lost
// and the rest form a single polyline. Curves with fewer than two retained
// samples are omitted.
func CurveFieldWith(width, height float64, opts CurveFieldOptions) (Pattern, error) {
	const op = "CurveField"
	if err := positive(op, "viewport width", width); err != nil {
		return Pattern{}, err
	}
	if err := positive(op, "viewport height", height); err != nil {
		return Pattern{}, err
	}
	n := opts.LayerCount
	if n == 0 {
		n = DefaultLayerCount
	}
	if n < 2 {
		return Pattern{}, &ParameterError{Op: op, Name: "layer count", Value: float64(n)}
	}
	if err := finite(op, "offset", opts.Offset); err != nil {
		return Pattern{}, err
	}

	originY := height + opts.Offset
	endX := width + curveOverscanX
	pat := Pattern{
		Viewport: Sz(width, height),
		Color:    opts.Color,
	}
	if pat.Color == (color.NRGBA{}) {
		pat.Color = White
	}
	for i := range n {
		progress := float64(i) / float64(n-1)
		k := curveMinK + (curveMaxK-curveMinK)*math.Pow(1-progress, curveKExponent)
		pts := hyperbolaSamples(k, originY, endX, height)
		if len(pts) < 2 {
			continue
		}
		pat.Layers = append(pat.Layers, CurveLayer{
			K:           k,
			Opacity:     curveBaseOpacity + curveOpacityRange*progress,
			StrokeWidth: curveBaseWidth + curveWidthRange*(1-progress),
			Points:      pts,
		})
	}
	return pat, nil
}

// hyperbolaSamples samples y = k/x between the x where the curve crosses the
// top of the viewport and endX, keeping the samples within the clip band.
func hyperbolaSamples(k, originY, endX, height float64) []Point {
	startX := max(0, k/originY)
	pts := make([]Point, 0, CurveSamples)
	for j := range CurveSamples {
		x := startX + (endX-startX)*(float64(j)/(CurveSamples-1))
		if x <= 0 {
			continue
		}
		y := originY - k/x
		if y < -curveClipMargin || y > height+curveClipMargin {
			continue
		}
		pts = append(pts, Pt(x, y))
	}
	return pts
}
