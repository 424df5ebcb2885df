package glyph

import "math"

// Affine describes an affine transform via coefficients (a, b, c, d, e, f),
// representing the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// so that (A.Mul(B)) applied to p equals A applied to (B applied to p).
type Affine [6]float64

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform scaling x and y independently.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Mul returns the composition aff∘o: o is applied first.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff[0]*o[0] + aff[2]*o[1],
		aff[1]*o[0] + aff[3]*o[1],
		aff[0]*o[2] + aff[2]*o[3],
		aff[1]*o[2] + aff[3]*o[3],
		aff[0]*o[4] + aff[2]*o[5] + aff[4],
		aff[1]*o[4] + aff[3]*o[5] + aff[5],
	}
}

// ThenScale returns a transform that applies aff and then scales.
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate returns a transform that applies aff and then translates by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff[4] += v.X
	aff[5] += v.Y
	return aff
}

// FitRect returns the transform mapping src onto dst, preserving the aspect
// ratio of src and centering it in dst. This is the SVG
// preserveAspectRatio="xMidYMid meet" mapping of a viewBox.
func FitRect(src, dst Rect) Affine {
	sw, sh := src.Width(), src.Height()
	if sw == 0 || sh == 0 {
		return Translate(dst.Origin().Sub(Point{}))
	}
	s := math.Min(dst.Width()/sw, dst.Height()/sh)
	dx := dst.X0 + (dst.Width()-sw*s)/2 - src.X0*s
	dy := dst.Y0 + (dst.Height()-sh*s)/2 - src.Y0*s
	return Affine{s, 0, 0, s, dx, dy}
}

// Determinant returns the determinant of the linear part of the transform.
func (aff Affine) Determinant() float64 {
	return aff[0]*aff[3] - aff[1]*aff[2]
}

func (aff Affine) IsInf() bool {
	for _, n := range aff {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}
