package main

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
)

func TestWriteIconSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := write(&buf, "svg", "dropdown-caret", 12, 1, false); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "<svg ") || !strings.Contains(buf.String(), `fill="#999999"`) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestWritePNG(t *testing.T) {
	tests := []struct {
		kind         string
		wantW, wantH int
	}{
		{"header", 700, 200},
		{"phone-handset", 48, 48},
		{"all", 700, 392},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := write(&buf, "png", tt.kind, 24, 2, true); err != nil {
			t.Fatalf("%s: %v", tt.kind, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("%s: %v", tt.kind, err)
		}
		if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("%s: got %v, want %dx%d", tt.kind, b, tt.wantW, tt.wantH)
		}
	}
}

func TestWriteUnknownKind(t *testing.T) {
	if err := write(new(bytes.Buffer), "svg", "kettle", 24, 1, false); err == nil {
		t.Error("expected error")
	}
}
