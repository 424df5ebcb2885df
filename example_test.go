package glyph_test

import (
	"fmt"

	"github.com/calllogviewer/glyph"
)

func ExampleStarVertices() {
	pts, err := glyph.StarVertices(24)
	if err != nil {
		panic(err)
	}
	for _, pt := range pts[:4] {
		fmt.Printf("(%.2f, %.2f)\n", pt.X, pt.Y)
	}
	// Output:
	// (12.00, 2.40)
	// (14.54, 8.51)
	// (21.13, 9.03)
	// (16.11, 13.33)
}

func ExampleBackArrow() {
	ic, err := glyph.BackArrow(22, glyph.Black)
	if err != nil {
		panic(err)
	}
	for _, el := range ic.Layers[0].Path {
		fmt.Printf("%s (%.1f, %.1f)\n", el.Kind, el.P0.X, el.P0.Y)
	}
	fmt.Println(ic.Layers[0].Style.Width, ic.Layers[0].Style.Cap)
	// Output:
	// MoveTo (13.2, 2.2)
	// LineTo (6.6, 11.0)
	// LineTo (13.2, 19.8)
	// 2.5 round
}

func ExampleCurveField() {
	pat, err := glyph.CurveField(350, 100)
	if err != nil {
		panic(err)
	}
	first, last := pat.Layers[0], pat.Layers[len(pat.Layers)-1]
	fmt.Println(len(pat.Layers), "layers")
	fmt.Printf("innermost: k=%.0f opacity=%.2f width=%.2f\n", first.K, first.Opacity, first.StrokeWidth)
	fmt.Printf("outermost: k=%.0f opacity=%.2f width=%.2f\n", last.K, last.Opacity, last.StrokeWidth)
	// Output:
	// 22 layers
	// innermost: k=52000 opacity=0.03 width=0.70
	// outermost: k=1500 opacity=0.06 width=0.60
}

func ExampleGenerate() {
	for _, kind := range glyph.IconKinds {
		ic, err := glyph.Generate(glyph.IconSpec{Kind: kind, Size: 24, Color: glyph.Black, Secondary: glyph.SortMuted})
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s: %d layers\n", kind, len(ic.Layers))
	}
	// Output:
	// star: 1 layers
	// back-arrow: 1 layers
	// calendar: 5 layers
	// magnifier: 2 layers
	// phone-handset: 3 layers
	// sort-arrows: 2 layers
	// dropdown-caret: 1 layers
}
