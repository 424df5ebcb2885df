package glyph

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Cap is the shape drawn at the open ends of a stroked contour.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
)

func (c Cap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	default:
		panic(fmt.Sprintf("invalid cap %d", c))
	}
}

// Join is the shape drawn where two stroked segments meet.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
)

func (j Join) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	default:
		panic(fmt.Sprintf("invalid join %d", j))
	}
}

// PaintMode selects whether a path is outlined or filled.
type PaintMode uint8

const (
	ModeStroke PaintMode = iota
	ModeFill
)

func (m PaintMode) String() string {
	switch m {
	case ModeStroke:
		return "stroke"
	case ModeFill:
		return "fill"
	default:
		panic(fmt.Sprintf("invalid paint mode %d", m))
	}
}

// Style describes how a path is painted. Width, Cap and Join only apply to
// ModeStroke. Color is non-premultiplied; its alpha carries the opacity.
type Style struct {
	Width float64
	Color color.NRGBA
	Cap   Cap
	Join  Join
	Mode  PaintMode
	// Alpha is the opacity Color's alpha was rounded from by WithOpacity.
	// Zero means Color's alpha is exact.
	Alpha float64
}

// Stroke returns a stroke style with butt caps and miter joins.
func Stroke(width float64, c color.NRGBA) Style {
	return Style{Width: width, Color: c, Mode: ModeStroke}
}

// Fill returns a fill style.
func Fill(c color.NRGBA) Style {
	return Style{Color: c, Mode: ModeFill}
}

func (s Style) WithCap(c Cap) Style {
	s.Cap = c
	return s
}

func (s Style) WithJoin(j Join) Style {
	s.Join = j
	return s
}

// Rounded returns s with round caps and round joins.
func (s Style) Rounded() Style {
	s.Cap = CapRound
	s.Join = JoinRound
	return s
}

// WithOpacity returns s with the color's alpha replaced by opacity, clamped to
// [0, 1]. The unrounded opacity is kept in Alpha.
func (s Style) WithOpacity(opacity float64) Style {
	opacity = min(max(opacity, 0), 1)
	s.Color.A = uint8(opacity*255 + 0.5)
	s.Alpha = opacity
	return s
}

// Opacity returns Alpha if set and the color's alpha as a fraction otherwise.
func (s Style) Opacity() float64 {
	if s.Alpha > 0 {
		return s.Alpha
	}
	return float64(s.Color.A) / 255
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#aarrggbb". The leading '#' is
// optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		fallthrough
	case 6:
		h = "ff" + h
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("glyph: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("glyph: invalid color %q", s)
	}
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustParseHexColor is like ParseHexColor but panics on malformed input. It
// is meant for package-level color tables.
func MustParseHexColor(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexColor formats c as "#rrggbb", or "#aarrggbb" when it is not opaque.
func HexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}
