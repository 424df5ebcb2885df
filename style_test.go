package glyph

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#0bb415", color.NRGBA{0x0b, 0xb4, 0x15, 0xff}},
		{"5fa8f2", color.NRGBA{0x5f, 0xa8, 0xf2, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#a3c", color.NRGBA{0xaa, 0x33, 0xcc, 0xff}},
		{"#80ef625e", color.NRGBA{0xef, 0x62, 0x5e, 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "#", "#12345", "#gggggg", "#1234567890"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", in)
		}
	}
}

func TestHexColor(t *testing.T) {
	if s := HexColor(OutgoingGreen); s != "#0bb415" {
		t.Errorf("got %q, want #0bb415", s)
	}
	c := White
	c.A = 0x08
	if s := HexColor(c); s != "#08ffffff" {
		t.Errorf("got %q, want #08ffffff", s)
	}
	for _, c := range []color.NRGBA{HeaderRed, CalendarPaper, c} {
		if got := MustParseHexColor(HexColor(c)); got != c {
			t.Errorf("got %v, want %v", got, c)
		}
	}
}

func TestStyle(t *testing.T) {
	s := Stroke(2, Black)
	if s.Cap != CapButt || s.Join != JoinMiter || s.Mode != ModeStroke {
		t.Errorf("unexpected defaults %+v", s)
	}
	r := s.Rounded()
	if r.Cap != CapRound || r.Join != JoinRound {
		t.Errorf("Rounded: got %+v", r)
	}
	if s.Cap != CapButt {
		t.Error("Rounded modified its receiver")
	}

	tests := []struct {
		opacity float64
		alpha   uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{0.03, 8},
		{0.06, 15},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		if a := s.WithOpacity(tt.opacity).Color.A; a != tt.alpha {
			t.Errorf("WithOpacity(%g): got alpha %d, want %d", tt.opacity, a, tt.alpha)
		}
	}
	if op := Fill(White).Opacity(); op != 1 {
		t.Errorf("got opacity %g, want 1", op)
	}
	// 0.0314 and 0.0329 share an 8-bit alpha but keep their own opacity.
	a, b := s.WithOpacity(0.0314), s.WithOpacity(0.0329)
	if a.Color.A != b.Color.A {
		t.Errorf("got alphas %d and %d, want equal", a.Color.A, b.Color.A)
	}
	diff(t, []float64{0.0314, 0.0329}, []float64{a.Opacity(), b.Opacity()})
	if op := s.WithOpacity(2).Opacity(); op != 1 {
		t.Errorf("got clamped opacity %g, want 1", op)
	}

	for _, name := range []string{CapRound.String(), JoinMiter.String(), ModeFill.String()} {
		if name == "" {
			t.Error("empty enum name")
		}
	}
}
