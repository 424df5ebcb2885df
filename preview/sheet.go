// Package preview composes a contact sheet of the generated artwork: the
// call-log header band with its curve field, followed by a labelled grid of
// every icon.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/calllogviewer/glyph"
	"github.com/calllogviewer/glyph/asset"
	"github.com/calllogviewer/glyph/raster"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Sheet geometry, in units.
const (
	Width        = 350.0
	HeaderHeight = 100.0
	Columns      = 4

	headerInset = 12.0
	cellPadding = 8.0
	labelHeight = 8.0
)

// Options configures Sheet. The zero value is usable.
type Options struct {
	// IconSize is the icon size in units. Zero means 24.
	IconSize float64
	// Scale is the number of pixels per unit. Zero means 1.
	Scale float64
	// Outgoing selects the outgoing arrow for the phone handset.
	Outgoing bool
	// Kinds lists the icons in the grid. Nil means glyph.IconKinds.
	Kinds []glyph.IconKind
	// Assets resolves asset primitives. Nil means the embedded assets.
	Assets glyph.Assets
}

func (o *Options) iconSize() float64 {
	if o.IconSize != 0 {
		return o.IconSize
	}
	return 24
}

func (o *Options) scale() float64 {
	if o.Scale > 0 {
		return o.Scale
	}
	return 1
}

func (o *Options) kinds() []glyph.IconKind {
	if o.Kinds != nil {
		return o.Kinds
	}
	return glyph.IconKinds
}

func (o *Options) assets() glyph.Assets {
	if o.Assets != nil {
		return o.Assets
	}
	return asset.Embedded{}
}

// IconSpec returns the spec of kind in the colors of the call-log screen.
func IconSpec(kind glyph.IconKind, size float64, outgoing bool) glyph.IconSpec {
	spec := glyph.IconSpec{Kind: kind, Size: size, Color: glyph.Black, Outgoing: outgoing}
	switch kind {
	case glyph.IconCalendar:
		spec.Color, spec.Secondary = glyph.CalendarInk, glyph.CalendarPaper
	case glyph.IconMagnifier:
		spec.Color = glyph.MagnifierGrey
	case glyph.IconPhoneHandset:
		spec.Color = glyph.IncomingBlue
		if outgoing {
			spec.Color = glyph.OutgoingGreen
		}
	case glyph.IconSortArrows:
		spec.Color, spec.Secondary = glyph.SortEmphasis, glyph.SortMuted
	case glyph.IconDropdownCaret:
		spec.Color = glyph.DropdownGrey
	}
	return spec
}

// Header returns the layers of the header band: a red background, the curve
// field and the white back arrow and star.
func Header(iconSize float64) (glyph.Layers, error) {
	pat, err := glyph.CurveField(Width, HeaderHeight)
	if err != nil {
		return nil, err
	}
	back, err := glyph.BackArrow(iconSize, glyph.White)
	if err != nil {
		return nil, err
	}
	star, err := glyph.Star(iconSize, glyph.White)
	if err != nil {
		return nil, err
	}
	return glyph.Compose(
		[]glyph.Primitive{fillRect(glyph.XYWH(0, 0, Width, HeaderHeight), glyph.HeaderRed)},
		pat.Primitives(),
		back.Layers.Translate(glyph.Vec(headerInset, headerInset)),
		star.Layers.Translate(glyph.Vec(Width-headerInset-star.Canvas.Width, headerInset)),
	), nil
}

type cell struct {
	label string
	frame glyph.Rect
}

// grid lays out the icon cells below the header band. It returns the sheet's
// canvas and the layers of the white background and the icons.
func grid(opts *Options) (glyph.Size, glyph.Layers, []cell, error) {
	size := opts.iconSize()
	kinds := opts.kinds()
	cellW := Width / Columns
	cellH := size + 2*cellPadding + labelHeight
	rows := (len(kinds) + Columns - 1) / Columns
	canvas := glyph.Sz(Width, HeaderHeight+float64(rows)*cellH)

	layers := glyph.Layers{fillRect(canvas.Rect(), glyph.White)}
	cells := make([]cell, len(kinds))
	for i, kind := range kinds {
		ic, err := glyph.Generate(IconSpec(kind, size, opts.Outgoing))
		if err != nil {
			return glyph.Size{}, nil, nil, fmt.Errorf("%s: %w", kind, err)
		}
		frame := glyph.XYWH(
			float64(i%Columns)*cellW,
			HeaderHeight+float64(i/Columns)*cellH,
			cellW, cellH,
		)
		at := glyph.Vec(frame.X0+(cellW-ic.Canvas.Width)/2, frame.Y0+cellPadding)
		layers = layers.Append(ic.Layers.Translate(at)...)
		cells[i] = cell{label: kind.String(), frame: frame}
	}
	return canvas, layers, cells, nil
}

// Layers returns the sheet's canvas and all of its layers, without labels.
// The curve field is not clipped to the header band.
func Layers(opts Options) (glyph.Size, glyph.Layers, error) {
	header, err := Header(opts.iconSize())
	if err != nil {
		return glyph.Size{}, nil, fmt.Errorf("preview: %w", err)
	}
	canvas, layers, _, err := grid(&opts)
	if err != nil {
		return glyph.Size{}, nil, fmt.Errorf("preview: %w", err)
	}
	return canvas, glyph.Compose(layers, header), nil
}

// Sheet renders the contact sheet described by opts.
func Sheet(opts Options) (*image.RGBA, error) {
	header, err := Header(opts.iconSize())
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	canvas, layers, cells, err := grid(&opts)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	s := opts.scale()
	r := raster.Renderer{Scale: s, Assets: opts.assets()}
	img, err := r.Render(canvas, layers)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	// The curves overshoot the band; drawing into a sub-image clips them.
	band := image.Rect(0, 0, int(math.Ceil(Width*s)), int(math.Ceil(HeaderHeight*s)))
	if err := r.Draw(img.SubImage(band).(*image.RGBA), header, glyph.Point{}); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	d := display{img}
	ink := color.RGBA(glyph.SortEmphasis)
	for _, c := range cells {
		drawLabel(d, c, s, ink)
	}
	return img, nil
}

func fillRect(r glyph.Rect, c color.NRGBA) glyph.Primitive {
	return glyph.PathPrimitive(glyph.NewPathBuilder().Shape(r, 0).Path(), glyph.Fill(c))
}

// drawLabel writes the cell's label centred under its icon. Text is not
// scaled; the baseline sits cellPadding units above the cell's bottom.
func drawLabel(d drivers.Displayer, c cell, scale float64, ink color.RGBA) {
	font := &proggy.TinySZ8pt7b
	_, w := tinyfont.LineWidth(font, c.label)
	x := int16(math.Round(c.frame.Center().X*scale)) - int16(w/2)
	y := int16(math.Round((c.frame.Y1 - cellPadding) * scale))
	tinyfont.WriteLine(d, font, x, y, c.label, ink)
}

// display lets tinyfont draw into an image.
type display struct {
	img *image.RGBA
}

var _ drivers.Displayer = display{}

func (d display) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(min(b.Dx(), math.MaxInt16)), int16(min(b.Dy(), math.MaxInt16))
}

func (d display) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d display) Display() error { return nil }
