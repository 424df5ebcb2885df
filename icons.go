package glyph

import (
	"image/color"
	"slices"
)

// Star returns a stroked five-pointed star with round caps and joins.
func Star(size float64, c color.NRGBA) (Icon, error) {
	return star(size, c, starStrokeWidth)
}

func star(size float64, c color.NRGBA, width float64) (Icon, error) {
	if err := positive("Star", "stroke width", width); err != nil {
		return Icon{}, err
	}
	pts, err := StarVertices(size)
	if err != nil {
		return Icon{}, err
	}
	path := NewPathBuilder().Polygon(pts[:]...).Path()
	return Icon{
		Kind:   IconStar,
		Canvas: Square(size),
		Layers: Layers{PathPrimitive(path, Stroke(width, c).Rounded())},
	}, nil
}

// BackArrow returns an open chevron pointing left.
func BackArrow(size float64, c color.NRGBA) (Icon, error) {
	return backArrow(size, c, backStrokeWidth)
}

func backArrow(size float64, c color.NRGBA, width float64) (Icon, error) {
	const op = "BackArrow"
	if err := positive(op, "size", size); err != nil {
		return Icon{}, err
	}
	if err := positive(op, "stroke width", width); err != nil {
		return Icon{}, err
	}
	cy := size / 2
	outer := size * backArrowOuterX
	arm := size * backArrowHalfArm
	path := NewPathBuilder().Polyline(
		Pt(outer, cy-arm),
		Pt(size*backArrowTipX, cy),
		Pt(outer, cy+arm),
	).Path()
	return Icon{
		Kind:   IconBackArrow,
		Canvas: Square(size),
		Layers: Layers{PathPrimitive(path, Stroke(width, c).Rounded())},
	}, nil
}

// Calendar returns a calendar page in five layers: a rounded body filled
// with paper, its ink outline, the two binder ticks as one primitive, and a
// long and a short text line.
func Calendar(size float64, ink, paper color.NRGBA) (Icon, error) {
	return calendar(size, ink, paper, calendarContentWidth)
}

func calendar(size float64, ink, paper color.NRGBA, contentWidth float64) (Icon, error) {
	const op = "Calendar"
	if err := positive(op, "size", size); err != nil {
		return Icon{}, err
	}
	if err := positive(op, "stroke width", contentWidth); err != nil {
		return Icon{}, err
	}
	borderWidth := calendarBorderWidth * (contentWidth / calendarContentWidth)

	body := XYWH(
		size*calendarBodyX,
		size*calendarBodyY,
		size*calendarBodyW,
		size*calendarBodyH,
	).RoundedRect(calendarCornerRadius)
	bodyPath := NewPathBuilder().Shape(body, 0.1).Path()

	content := Stroke(contentWidth, ink).WithCap(CapRound)
	top := size * calendarEarTop
	bottom := top + size*calendarEarLength
	ticks := NewPathBuilder()
	for _, x := range [...]float64{size * calendarEarLeftX, size * calendarEarRightX} {
		ticks.Polyline(Pt(x, top), Pt(x, bottom))
	}
	line := func(frac, right float64) Primitive {
		y := body.Y0 + body.Height()*frac
		return PathPrimitive(
			NewPathBuilder().Polyline(Pt(size*calendarLineLeft, y), Pt(size*right, y)).Path(),
			content,
		)
	}

	return Icon{
		Kind:   IconCalendar,
		Canvas: Square(size),
		Layers: Layers{
			PathPrimitive(bodyPath, Fill(paper)),
			PathPrimitive(slices.Clone(bodyPath), Stroke(borderWidth, ink)),
			PathPrimitive(ticks.Path(), content),
			line(calendarLine1Y, calendarLine1Right),
			line(calendarLine2Y, calendarLine2Right),
		},
	}, nil
}

// Magnifier returns a search glass: a stroked ring and a short handle
// leaving it towards the bottom right at 45°.
func Magnifier(size float64, c color.NRGBA) (Icon, error) {
	return magnifier(size, c, magnifierStrokeWidth)
}

func magnifier(size float64, c color.NRGBA, width float64) (Icon, error) {
	const op = "Magnifier"
	if err := positive(op, "size", size); err != nil {
		return Icon{}, err
	}
	if err := positive(op, "stroke width", width); err != nil {
		return Icon{}, err
	}
	ring := Circle{
		Center: Pt(size*magnifierCenter, size*magnifierCenter),
		Radius: size * magnifierRadius,
	}
	off := ring.Radius * magnifierHandleOffset
	start := ring.Center.Translate(Vec(off, off))
	length := size * magnifierHandleLength
	handle := Line{P0: start, P1: start.Translate(Vec(length, length))}

	return Icon{
		Kind:   IconMagnifier,
		Canvas: Square(size),
		Layers: Layers{
			PathPrimitive(NewPathBuilder().Shape(ring, 0.1).Path(), Stroke(width, c)),
			PathPrimitive(NewPathBuilder().Shape(handle, 0.1).Path(), Stroke(width, c).WithCap(CapRound)),
		},
	}, nil
}

// PhoneHandset returns the call direction icon: the handset silhouette asset
// tinted with c, overlaid with an arrow. Outgoing calls get a horizontal arrow
// leaving the earpiece to the right, incoming calls a diagonal arrow pointing
// into it.
func PhoneHandset(size float64, c color.NRGBA, outgoing bool) (Icon, error) {
	return phoneHandset(size, c, outgoing, phoneStrokeWidth)
}

func phoneHandset(size float64, c color.NRGBA, outgoing bool, width float64) (Icon, error) {
	const op = "PhoneHandset"
	if err := positive(op, "size", size); err != nil {
		return Icon{}, err
	}
	if err := positive(op, "stroke width", width); err != nil {
		return Icon{}, err
	}
	shaft, head := phoneIncomingShaft, phoneIncomingHead
	if outgoing {
		shaft, head = phoneOutgoingShaft, phoneOutgoingHead
	}

	scale := size / phoneGrid
	grid := Scale(scale, scale)
	arrow := Stroke(width*scale, c).Rounded()
	return Icon{
		Kind:   IconPhoneHandset,
		Canvas: Square(size),
		Layers: Layers{
			AssetPrimitive(AssetPhoneHandset, Square(size).Rect(), Fill(c)),
			PathPrimitive(NewPathBuilder().Polyline(shaft[:]...).Path().Transform(grid), arrow),
			PathPrimitive(NewPathBuilder().Polyline(head[:]...).Path().Transform(grid), arrow),
		},
	}, nil
}

// SortArrows returns two filled triangles sharing a vertical axis: one
// pointing up filled with up, and below a gap one pointing down filled with
// down. The canvas is 0.6·size wide and size tall.
func SortArrows(size float64, up, down color.NRGBA) (Icon, error) {
	if err := positive("SortArrows", "size", size); err != nil {
		return Icon{}, err
	}
	canvas := Sz(size*sortCanvasWidth, size)
	cx, cy := canvas.Width/2, canvas.Height/2
	halfW := canvas.Width * sortTriangleWidth / 2
	h := size * sortTriangleHeight
	halfGap := size * sortGap / 2

	upper := NewPathBuilder().Polygon(
		Pt(cx, cy-halfGap-h),
		Pt(cx-halfW, cy-halfGap),
		Pt(cx+halfW, cy-halfGap),
	).Path()
	lower := NewPathBuilder().Polygon(
		Pt(cx, cy+halfGap+h),
		Pt(cx-halfW, cy+halfGap),
		Pt(cx+halfW, cy+halfGap),
	).Path()
	return Icon{
		Kind:   IconSortArrows,
		Canvas: canvas,
		Layers: Layers{
			PathPrimitive(upper, Fill(up)),
			PathPrimitive(lower, Fill(down)),
		},
	}, nil
}

// DropdownCaret returns a filled equilateral triangle pointing down.
func DropdownCaret(size float64, c color.NRGBA) (Icon, error) {
	pts, err := EquilateralTriangleDown(size)
	if err != nil {
		return Icon{}, err
	}
	return Icon{
		Kind:   IconDropdownCaret,
		Canvas: Square(size),
		Layers: Layers{PathPrimitive(NewPathBuilder().Polygon(pts[:]...).Path(), Fill(c))},
	}, nil
}

// Contours returns the vertices of every contour of the icon's path
// layers, one slice per contour. It is meant for inspecting generated
// polygons; curves contribute only their end points.
func (ic Icon) Contours() [][]Point {
	var out [][]Point
	for _, l := range ic.Layers {
		if l.IsAsset() {
			continue
		}
		var cur []Point
		for _, el := range l.Path {
			switch el.Kind {
			case MoveToKind:
				if len(cur) > 0 {
					out = append(out, cur)
				}
				cur = []Point{el.P0}
			case ClosePathKind:
				if len(cur) > 0 {
					out = append(out, cur)
				}
				cur = nil
			default:
				if pt, ok := el.End(); ok {
					cur = append(cur, pt)
				}
			}
		}
		if len(cur) > 0 {
			out = append(out, cur)
		}
	}
	return out
}

// Bounds returns the area the icon's layers paint. Strokes may extend past
// the canvas.
func (ic Icon) Bounds() Rect {
	return ic.Layers.Bounds()
}
