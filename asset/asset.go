// Package asset provides the image assets that generated icons refer to by
// name, as vector outlines.
//
// The only asset is the phone handset silhouette ([glyph.AssetPhoneHandset]),
// embedded as SVG and parsed on first use.
package asset

import (
	_ "embed"
	"encoding/xml"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/calllogviewer/glyph"
	"github.com/calllogviewer/glyph/svg"
	parse "github.com/tdewolff/parse/v2/strconv"
)

// ErrUnknownAsset is returned for asset names that have no outline.
var ErrUnknownAsset = errors.New("asset: unknown asset")

//go:embed handset.svg
var handsetSVG []byte

type outline struct {
	path    glyph.Path
	viewBox glyph.Rect
}

var handset = sync.OnceValues(func() (outline, error) {
	p, vb, err := Decode(handsetSVG)
	return outline{p, vb}, err
})

// Handset returns the outline of the phone handset in its 1024×1024 view
// box. The returned path is a fresh copy.
func Handset() (glyph.Path, glyph.Rect, error) {
	o, err := handset()
	if err != nil {
		return nil, glyph.Rect{}, err
	}
	return slices.Clone(o.path), o.viewBox, nil
}

// Resolve returns the outline and view box of the named asset.
func Resolve(name string) (glyph.Path, glyph.Rect, error) {
	switch name {
	case glyph.AssetPhoneHandset:
		return Handset()
	default:
		return nil, glyph.Rect{}, fmt.Errorf("%w %q", ErrUnknownAsset, name)
	}
}

// Embedded resolves assets from the outlines built into this package.
type Embedded struct{}

var _ glyph.Assets = Embedded{}

func (Embedded) Asset(name string) (glyph.Path, glyph.Rect, error) {
	return Resolve(name)
}

type document struct {
	ViewBox string `xml:"viewBox,attr"`
	Paths   []struct {
		D string `xml:"d,attr"`
	} `xml:"path"`
}

// Decode reads a single-color SVG document and returns the concatenation of
// its top-level path elements together with its view box. Fill, stroke and
// transform attributes are ignored.
func Decode(data []byte) (glyph.Path, glyph.Rect, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, glyph.Rect{}, fmt.Errorf("asset: %w", err)
	}
	vb, err := parseViewBox(doc.ViewBox)
	if err != nil {
		return nil, glyph.Rect{}, err
	}
	var out glyph.Path
	for _, p := range doc.Paths {
		path, err := svg.ParsePath(p.D)
		if err != nil {
			return nil, glyph.Rect{}, fmt.Errorf("asset: %w", err)
		}
		out = append(out, path...)
	}
	if len(out) == 0 {
		return nil, glyph.Rect{}, errors.New("asset: document has no paths")
	}
	return out, vb, nil
}

func parseViewBox(s string) (glyph.Rect, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return glyph.Rect{}, fmt.Errorf("asset: malformed viewBox %q", s)
	}
	var v [4]float64
	for i, f := range fields {
		n := 0
		v[i], n = parse.ParseFloat([]byte(f))
		if n != len(f) {
			return glyph.Rect{}, fmt.Errorf("asset: malformed viewBox %q", s)
		}
	}
	if v[2] <= 0 || v[3] <= 0 {
		return glyph.Rect{}, fmt.Errorf("asset: empty viewBox %q", s)
	}
	return glyph.XYWH(v[0], v[1], v[2], v[3]), nil
}
