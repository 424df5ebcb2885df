// Glyphsheet writes the generated call-log artwork to a file.
//
// Usage:
//
//	glyphsheet [-o sheet.png] [-format png|svg] [-kind all|header|star|...] [-size 24] [-scale 2] [-outgoing]
//
// With -kind all it writes the contact sheet, with -kind header the header
// band, and otherwise the single named icon. An output of "-" means
// standard output.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/calllogviewer/glyph"
	"github.com/calllogviewer/glyph/asset"
	"github.com/calllogviewer/glyph/preview"
	"github.com/calllogviewer/glyph/raster"
	"github.com/calllogviewer/glyph/svg"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("glyphsheet: ")

	var (
		out      = flag.String("o", "sheet.png", "Output file, or - for standard output.")
		format   = flag.String("format", "png", "Output format: png or svg.")
		kind     = flag.String("kind", "all", "What to draw: all, header, or an icon name.")
		size     = flag.Float64("size", 24, "Icon size in units.")
		scale    = flag.Float64("scale", 2, "Pixels per unit (png only).")
		outgoing = flag.Bool("outgoing", false, "Draw the outgoing-call handset.")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *format != "png" && *format != "svg" {
		log.Fatalf("unknown format %q", *format)
	}

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		w = f
	}
	bw := bufio.NewWriter(w)
	err := write(bw, *format, *kind, *size, *scale, *outgoing)
	if err == nil {
		err = bw.Flush()
	}
	if w != os.Stdout {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func write(w io.Writer, format, kind string, size, scale float64, outgoing bool) error {
	var (
		canvas glyph.Size
		layers glyph.Layers
	)
	switch kind {
	case "all":
		opts := preview.Options{IconSize: size, Scale: scale, Outgoing: outgoing}
		if format == "png" {
			img, err := preview.Sheet(opts)
			if err != nil {
				return err
			}
			return encodePNG(w, img)
		}
		var err error
		canvas, layers, err = preview.Layers(opts)
		if err != nil {
			return err
		}
	case "header":
		var err error
		layers, err = preview.Header(size)
		if err != nil {
			return err
		}
		canvas = glyph.Sz(preview.Width, preview.HeaderHeight)
	default:
		k, err := glyph.ParseIconKind(kind)
		if err != nil {
			return err
		}
		ic, err := glyph.Generate(preview.IconSpec(k, size, outgoing))
		if err != nil {
			return err
		}
		canvas, layers = ic.Canvas, ic.Layers
	}

	if format == "svg" {
		return svg.Encode(w, canvas, layers, asset.Embedded{})
	}
	r := raster.Renderer{Scale: scale, Assets: asset.Embedded{}}
	img, err := r.Render(canvas, layers)
	if err != nil {
		return err
	}
	return encodePNG(w, img)
}

func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
