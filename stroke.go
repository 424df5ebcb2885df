package glyph

import (
	"iter"
	"math"
)

// StrokeOutline expands the stroke of seq drawn with style into an outline.
// Filling the outline with the nonzero winding rule covers exactly the
// stroke; overlapping parts of the stroke wind the same way, so a
// translucent stroke is painted at uniform opacity.
//
// Curves are flattened to tolerance first. Miter joins longer than
// [MiterLimit] times the width become bevels. Subpaths without length are
// not drawn.
func StrokeOutline(seq iter.Seq[PathElement], style Style, tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		hw := 0.5 * style.Width
		if !(hw > 0) {
			return
		}
		s := stroker{
			yield:      yield,
			style:      style,
			hw:         hw,
			joinThresh: tolerance / hw,
		}
		for el := range Flatten(seq, tolerance) {
			if s.dead {
				return
			}
			switch el.Kind {
			case MoveToKind:
				s.finish()
				s.startPt, s.lastPt = el.P0, el.P0
			case LineToKind:
				if el.P0 != s.lastPt {
					tan := el.P0.Sub(s.lastPt)
					s.join(tan)
					s.lastTan = tan
					s.line(tan, el.P0)
				}
			case ClosePathKind:
				if s.lastPt != s.startPt {
					tan := s.startPt.Sub(s.lastPt)
					s.join(tan)
					s.lastTan = tan
					s.line(tan, s.startPt)
				}
				s.finishClosed()
			}
		}
		s.finish()
	}
}

// stroker builds the outline of one subpath at a time. The side at −normal
// is emitted as it is computed; the side at +normal is collected in backward
// and emitted reversed when the subpath ends.
type stroker struct {
	yield func(PathElement) bool
	dead  bool
	style Style
	hw    float64
	// Joins between segments whose directions differ by less than about
	// joinThresh radians are left out.
	joinThresh float64

	emitted   bool
	backward  Path
	startPt   Point
	startTan  Vec2
	startNorm Vec2
	lastPt    Point
	lastTan   Vec2
}

func (s *stroker) emit(el PathElement) {
	if s.dead {
		return
	}
	s.dead = !s.yield(el)
	s.emitted = true
}

// norm returns the normal of tan with half the stroke width as length.
func (s *stroker) norm(tan Vec2) Vec2 {
	return Vec(-tan.Y, tan.X).Mul(s.hw / tan.Hypot())
}

// arc emits a round join or cap around center, starting at center+from and
// turning by sweep.
func (s *stroker) arc(center Point, from Vec2, sweep float64) {
	for el := range arcSegments(center, Vec(s.hw, s.hw), 0, from.Angle(), sweep) {
		s.emit(el)
	}
}

func (s *stroker) join(tan Vec2) {
	norm := s.norm(tan)
	p0 := s.lastPt
	if !s.emitted {
		s.emit(MoveTo(p0.Translate(norm.Negate())))
		s.backward = append(s.backward, MoveTo(p0.Translate(norm)))
		s.startTan, s.startNorm = tan, norm
		return
	}

	ab, cd := s.lastTan, tan
	cross, dot := ab.Cross(cd), ab.Dot(cd)
	hypot := math.Hypot(cross, dot)
	if dot > 0 && math.Abs(cross) < hypot*s.joinThresh {
		return
	}
	lastNorm := s.norm(ab)
	switch s.style.Join {
	case JoinRound:
		angle := math.Atan2(cross, dot)
		if angle > 0 {
			s.backward = append(s.backward, LineTo(p0.Translate(norm)))
			s.arc(p0, lastNorm.Negate(), angle)
		} else {
			s.emit(LineTo(p0.Translate(norm.Negate())))
			for el := range arcSegments(p0, Vec(s.hw, s.hw), 0, lastNorm.Angle(), angle) {
				s.backward = append(s.backward, el)
			}
		}
	default:
		// Within the limit the offset lines are extended to their
		// intersection on the outer side.
		if 2*hypot < (hypot+dot)*MiterLimit*MiterLimit {
			if cross > 0 {
				fpLast := p0.Translate(lastNorm.Negate())
				fpThis := p0.Translate(norm.Negate())
				h := ab.Cross(fpThis.Sub(fpLast)) / cross
				s.emit(LineTo(fpThis.Translate(cd.Mul(h).Negate())))
			} else if cross < 0 {
				fpLast := p0.Translate(lastNorm)
				fpThis := p0.Translate(norm)
				h := ab.Cross(fpThis.Sub(fpLast)) / cross
				s.backward = append(s.backward, LineTo(fpThis.Translate(cd.Mul(h).Negate())))
			}
		}
		s.emit(LineTo(p0.Translate(norm.Negate())))
		s.backward = append(s.backward, LineTo(p0.Translate(norm)))
	}
}

func (s *stroker) line(tan Vec2, p1 Point) {
	norm := s.norm(tan)
	s.emit(LineTo(p1.Translate(norm.Negate())))
	s.backward = append(s.backward, LineTo(p1.Translate(norm)))
	s.lastPt = p1
}

// finish caps an open subpath and closes its outline.
func (s *stroker) finish() {
	if !s.emitted {
		return
	}
	returnPt, _ := s.backward[len(s.backward)-1].End()
	if s.style.Cap == CapRound {
		s.arc(s.lastPt, s.lastPt.Sub(returnPt), math.Pi)
	} else {
		s.emit(LineTo(returnPt))
	}
	s.emitReversed()
	if s.style.Cap == CapRound {
		s.arc(s.startPt, s.startNorm, math.Pi)
	}
	s.emit(ClosePath())
	s.reset()
}

// finishClosed joins the end of a closed subpath to its start and emits the
// inner side as a second contour.
func (s *stroker) finishClosed() {
	if !s.emitted {
		return
	}
	s.join(s.startTan)
	s.emit(ClosePath())
	last, _ := s.backward[len(s.backward)-1].End()
	s.emit(MoveTo(last))
	s.emitReversed()
	s.emit(ClosePath())
	s.reset()
}

// emitReversed emits the backward side from its end to its start.
func (s *stroker) emitReversed() {
	els := s.backward
	for i := len(els) - 1; i >= 1; i-- {
		end, _ := els[i-1].End()
		el := els[i]
		switch el.Kind {
		case LineToKind:
			s.emit(LineTo(end))
		case CubicToKind:
			s.emit(CubicTo(el.P1, el.P0, end))
		}
	}
}

func (s *stroker) reset() {
	s.emitted = false
	s.backward = s.backward[:0]
}
