package glyph

import (
	"fmt"
	"math"
)

// Size is the extent of an icon canvas or a pattern viewport.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Square returns the size s×s.
func Square(s float64) Size {
	return Size{Width: s, Height: s}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) Scale(f float64) Size {
	return Size{Width: sz.Width * f, Height: sz.Height * f}
}

// Ceil returns a new size with width and height rounded up to the nearest integers.
func (sz Size) Ceil() Size {
	return Size{Width: math.Ceil(sz.Width), Height: math.Ceil(sz.Height)}
}

// Rect returns the rectangle of this size anchored at the origin.
func (sz Size) Rect() Rect {
	return Rect{X1: sz.Width, Y1: sz.Height}
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}
