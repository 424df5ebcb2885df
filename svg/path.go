package svg

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/calllogviewer/glyph"
	parse "github.com/tdewolff/parse/v2/strconv"
)

// SyntaxError describes malformed path data.
type SyntaxError struct {
	// Offset is the byte offset into the path data at which the error was
	// detected.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svg: bad path data at offset %d: %s", e.Offset, e.Msg)
}

// FormatPath returns p as SVG path data, using the shortest number
// representation that parses back to the same value.
func FormatPath(p glyph.Path) string {
	return string(AppendPath(nil, p, -1))
}

// AppendPath appends p as SVG path data to dst. Numbers are formatted with at
// most prec digits after the decimal point; prec -1 selects the shortest exact
// representation. Only absolute M, L, Q, C and Z commands are emitted.
func AppendPath(dst []byte, p glyph.Path, prec int) []byte {
	num := func(v float64) {
		var buf [32]byte
		b := strconv.AppendFloat(buf[:0], v, 'f', prec, 64)
		if prec > 0 {
			b = trimZeros(b)
		}
		if string(b) == "-0" {
			b = b[1:]
		}
		dst = append(dst, b...)
	}
	pt := func(q glyph.Point) {
		num(q.X)
		dst = append(dst, ' ')
		num(q.Y)
	}
	for i, el := range p {
		if i > 0 && el.Kind != glyph.ClosePathKind {
			dst = append(dst, ' ')
		}
		switch el.Kind {
		case glyph.MoveToKind:
			dst = append(dst, 'M')
			pt(el.P0)
		case glyph.LineToKind:
			dst = append(dst, 'L')
			pt(el.P0)
		case glyph.QuadToKind:
			dst = append(dst, 'Q')
			pt(el.P0)
			dst = append(dst, ' ')
			pt(el.P1)
		case glyph.CubicToKind:
			dst = append(dst, 'C')
			pt(el.P0)
			dst = append(dst, ' ')
			pt(el.P1)
			dst = append(dst, ' ')
			pt(el.P2)
		case glyph.ClosePathKind:
			dst = append(dst, 'Z')
		}
	}
	return dst
}

// trimZeros removes trailing zeros, and then a trailing decimal point, from
// a formatted number.
func trimZeros(b []byte) []byte {
	if !bytes.ContainsRune(b, '.') {
		return b
	}
	b = bytes.TrimRight(b, "0")
	return bytes.TrimSuffix(b, []byte("."))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// argCount is the number of arguments taken by each command.
var argCount = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
	'Z': 0,
}

// ParsePath parses SVG path data. All commands of the SVG 1.1 path grammar
// are accepted, in absolute and relative form. H and V become LineTo, S and T
// have their implicit control points made explicit, and elliptical arcs are
// converted to cubic Béziers. A command following Z that isn't a MoveTo starts
// with an explicit MoveTo to the closed subpath's start.
func ParsePath(d string) (glyph.Path, error) {
	p := &pathParser{s: []byte(d)}
	return p.parse()
}

type pathParser struct {
	s   []byte
	pos int
	out glyph.Path
	// current point, subpath start, and the last control point for S and T.
	cur, start glyph.Point
	ctrl       glyph.Point
	closed     bool
}

func (p *pathParser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *pathParser) skipSeparators() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			p.pos++
		default:
			return
		}
	}
}

func (p *pathParser) atNumber() bool {
	if p.pos >= len(p.s) {
		return false
	}
	c := p.s[p.pos]
	return isDigit(c) || c == '.' || c == '-' || c == '+'
}

func (p *pathParser) number() (float64, error) {
	v, n := parse.ParseFloat(p.s[p.pos:])
	if n == 0 {
		if p.pos >= len(p.s) {
			return 0, p.errorf("unexpected end of data, expected number")
		}
		return 0, p.errorf("expected number, found %q", p.s[p.pos])
	}
	p.pos += n
	p.skipSeparators()
	return v, nil
}

func (p *pathParser) flag() (bool, error) {
	if p.pos >= len(p.s) {
		return false, p.errorf("unexpected end of data, expected arc flag")
	}
	c := p.s[p.pos]
	if c != '0' && c != '1' {
		return false, p.errorf("arc flag must be 0 or 1, found %q", c)
	}
	p.pos++
	p.skipSeparators()
	return c == '1', nil
}

func (p *pathParser) parse() (glyph.Path, error) {
	p.skipSeparators()
	if p.pos == len(p.s) {
		return nil, nil
	}
	if c := p.s[p.pos]; c != 'M' && c != 'm' {
		return nil, p.errorf("path must start with a moveto, found %q", c)
	}

	var cmd, prev byte
	var args [7]float64
	for {
		p.skipSeparators()
		if p.pos == len(p.s) {
			break
		}
		if !p.atNumber() {
			cmd = p.s[p.pos]
			if _, ok := argCount[upper(cmd)]; !ok {
				return nil, p.errorf("unknown command %q", cmd)
			}
			p.pos++
			p.skipSeparators()
		} else if cmd == 0 || upper(cmd) == 'Z' {
			return nil, p.errorf("number without command")
		}

		n := argCount[upper(cmd)]
		for i := range n {
			var err error
			if upper(cmd) == 'A' && (i == 3 || i == 4) {
				var b bool
				b, err = p.flag()
				args[i] = 0
				if b {
					args[i] = 1
				}
			} else {
				args[i], err = p.number()
			}
			if err != nil {
				return nil, err
			}
		}
		p.apply(cmd, prev, args[:n])
		prev = cmd
		// Coordinates following a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
	return p.out, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func (p *pathParser) emit(el glyph.PathElement) {
	if p.closed && el.Kind != glyph.MoveToKind {
		p.out = append(p.out, glyph.MoveTo(p.start))
	}
	p.closed = false
	p.out = append(p.out, el)
}

func (p *pathParser) apply(cmd, prev byte, a []float64) {
	rel := cmd >= 'a' && cmd <= 'z'
	abs := func(x, y float64) glyph.Point {
		if rel {
			return glyph.Pt(p.cur.X+x, p.cur.Y+y)
		}
		return glyph.Pt(x, y)
	}
	switch upper(cmd) {
	case 'M':
		pt := abs(a[0], a[1])
		p.emit(glyph.MoveTo(pt))
		p.cur, p.start, p.ctrl = pt, pt, pt
	case 'L':
		pt := abs(a[0], a[1])
		p.emit(glyph.LineTo(pt))
		p.cur, p.ctrl = pt, pt
	case 'H':
		pt := glyph.Pt(a[0], p.cur.Y)
		if rel {
			pt.X += p.cur.X
		}
		p.emit(glyph.LineTo(pt))
		p.cur, p.ctrl = pt, pt
	case 'V':
		pt := glyph.Pt(p.cur.X, a[0])
		if rel {
			pt.Y += p.cur.Y
		}
		p.emit(glyph.LineTo(pt))
		p.cur, p.ctrl = pt, pt
	case 'C':
		c1, c2, pt := abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5])
		p.emit(glyph.CubicTo(c1, c2, pt))
		p.cur, p.ctrl = pt, c2
	case 'S':
		c1 := p.cur
		if u := upper(prev); u == 'C' || u == 'S' {
			c1 = reflect(p.ctrl, p.cur)
		}
		c2, pt := abs(a[0], a[1]), abs(a[2], a[3])
		p.emit(glyph.CubicTo(c1, c2, pt))
		p.cur, p.ctrl = pt, c2
	case 'Q':
		c, pt := abs(a[0], a[1]), abs(a[2], a[3])
		p.emit(glyph.QuadTo(c, pt))
		p.cur, p.ctrl = pt, c
	case 'T':
		c := p.cur
		if u := upper(prev); u == 'Q' || u == 'T' {
			c = reflect(p.ctrl, p.cur)
		}
		pt := abs(a[0], a[1])
		p.emit(glyph.QuadTo(c, pt))
		p.cur, p.ctrl = pt, c
	case 'A':
		pt := abs(a[5], a[6])
		arc := glyph.SvgArc{
			From:      p.cur,
			To:        pt,
			Radii:     glyph.Vec(a[0], a[1]),
			XRotation: a[2] * math.Pi / 180,
			LargeArc:  a[3] == 1,
			Sweep:     a[4] == 1,
		}
		for el := range arc.PathElements(0.1) {
			p.emit(el)
		}
		p.cur, p.ctrl = pt, pt
	case 'Z':
		if len(p.out) == 0 || p.closed {
			// Z directly after Z is a no-op.
			return
		}
		p.out = append(p.out, glyph.ClosePath())
		p.closed = true
		p.cur, p.ctrl = p.start, p.start
	}
}

// reflect returns the reflection of ctrl about pt.
func reflect(ctrl, pt glyph.Point) glyph.Point {
	return glyph.Pt(2*pt.X-ctrl.X, 2*pt.Y-ctrl.Y)
}
