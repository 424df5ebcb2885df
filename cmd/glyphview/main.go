// Glyphview shows the call-log screen's header band and a few call entries
// in a window, drawn live from the generated primitives.
//
// Space toggles the call direction of the entries; Escape or Q quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"math"

	"github.com/calllogviewer/glyph"
	"github.com/calllogviewer/glyph/asset"
	"github.com/calllogviewer/glyph/ebitendraw"
	"github.com/calllogviewer/glyph/preview"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	headerHeight = 100.0
	iconSize     = 24.0
	inset        = 12.0
	toolbarH     = 40.0
	rowH         = 36.0
)

var entries = []struct {
	name, when string
	outgoing   bool
}{
	{"Alice", "09:12", false},
	{"Bob", "Yesterday", true},
	{"Carol", "Monday", false},
}

type game struct {
	width, height float64
	scale         float64

	header  glyph.Layers
	toolbar glyph.Layers
	rows    glyph.Layers

	outgoing bool
	drawer   ebitendraw.Drawer
	lastErr  error
}

func newGame(width, height, scale float64) (*game, error) {
	g := &game{width: width, height: height, scale: scale}
	pat, err := glyph.CurveField(width, headerHeight)
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
	band := glyph.PathPrimitive(glyph.NewPathBuilder().Shape(glyph.XYWH(0, 0, width, headerHeight), 0).Path(), glyph.Fill(glyph.HeaderRed))
	g.header = glyph.Compose(
		[]glyph.Primitive{band},
		pat.Primitives(),
		back.Layers.Translate(glyph.Vec(inset, inset)),
		star.Layers.Translate(glyph.Vec(width-inset-star.Canvas.Width, inset)),
	)

	x := inset
	for _, kind := range []glyph.IconKind{glyph.IconCalendar, glyph.IconDropdownCaret, glyph.IconSortArrows, glyph.IconMagnifier} {
		size := iconSize
		if kind == glyph.IconDropdownCaret {
			size = iconSize / 2
		}
		ic, err := glyph.Generate(preview.IconSpec(kind, size, false))
		if err != nil {
			return nil, err
		}
		y := headerHeight + (toolbarH-ic.Canvas.Height)/2
		g.toolbar = g.toolbar.Append(ic.Layers.Translate(glyph.Vec(x, y))...)
		x += ic.Canvas.Width + inset
	}
	if err := g.buildRows(); err != nil {
		return nil, err
	}
	return g, nil
}

// buildRows lays out one handset per entry, flipping the direction when
// g.outgoing is set.
func (g *game) buildRows() error {
	g.rows = nil
	for i, e := range entries {
		ic, err := glyph.Generate(preview.IconSpec(glyph.IconPhoneHandset, iconSize, e.outgoing != g.outgoing))
		if err != nil {
			return err
		}
		y := headerHeight + toolbarH + float64(i)*rowH + (rowH-iconSize)/2
		g.rows = g.rows.Append(ic.Layers.Translate(glyph.Vec(inset, y))...)
	}
	return nil
}

func (g *game) Update() error {
	if g.lastErr != nil {
		return g.lastErr
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.outgoing = !g.outgoing
		if err := g.buildRows(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(glyph.White)
	s := g.scale
	opts := &ebitendraw.Options{Scale: s, Assets: asset.Embedded{}}

	// The curves overshoot the band; the sub-image clips them.
	band := image.Rect(0, 0, int(math.Ceil(g.width*s)), int(math.Ceil(headerHeight*s)))
	if err := g.drawer.Draw(screen.SubImage(band).(*ebiten.Image), g.header, opts); err != nil {
		g.lastErr = err
		return
	}
	for _, layers := range []glyph.Layers{g.toolbar, g.rows} {
		if err := g.drawer.Draw(screen, layers, opts); err != nil {
			g.lastErr = err
			return
		}
	}

	for i, e := range entries {
		y := float32((headerHeight + toolbarH + float64(i+1)*rowH) * s)
		vector.StrokeLine(screen, 0, y, float32(g.width*s), y, 1, glyph.SortMuted, false)
		ty := int((headerHeight + toolbarH + float64(i)*rowH + rowH/2) * s)
		dir := "incoming"
		if e.outgoing != g.outgoing {
			dir = "outgoing"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %s  (%s)", e.name, e.when, dir), int((2*inset+iconSize)*s), ty-8)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(math.Ceil(g.width * g.scale)), int(math.Ceil(g.height * g.scale))
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("glyphview: ")

	width := flag.Float64("width", 350, "Screen width in units.")
	height := flag.Float64("height", 260, "Screen height in units.")
	scale := flag.Float64("scale", 2, "Pixels per unit.")
	flag.Parse()

	g, err := newGame(*width, *height, *scale)
	if err != nil {
		log.Fatal(err)
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Call log")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
