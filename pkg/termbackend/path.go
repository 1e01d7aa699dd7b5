package termbackend

import "strconv"

// pathCmd is one structured SVG path command with all coordinates resolved
// to absolute scene space.
type pathCmd interface {
	isPathCmd()
}

type moveTo struct {
	x, y float64
}

type lineTo struct {
	x, y float64
}

type cubicTo struct {
	x1, y1, x2, y2, x, y float64
}

// arcTo is an SVG elliptical arc: radii, x-axis rotation in degrees, the
// large-arc and sweep flags, and the absolute endpoint.
type arcTo struct {
	rx, ry, xRot    float64
	largeArc, sweep bool
	x, y            float64
}

type closePath struct{}

func (moveTo) isPathCmd()    {}
func (lineTo) isPathCmd()    {}
func (cubicTo) isPathCmd()   {}
func (arcTo) isPathCmd()     {}
func (closePath) isPathCmd() {}

// token is either a command letter (cmd != 0) or a number.
type token struct {
	cmd rune
	num float64
}

func isPathDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isPathLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// tokenizePath splits SVG path data into command letters and numbers.
// Commas and whitespace separate tokens; numbers accept sign, decimal
// point, and exponent. Unparseable number text is dropped.
func tokenizePath(d string) []token {
	var toks []token
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isPathLetter(c):
			toks = append(toks, token{cmd: rune(c)})
			i++
		case c == '-' || c == '+' || c == '.' || isPathDigit(c):
			start := i
			if c == '-' || c == '+' {
				i++
			}
			for i < len(d) && isPathDigit(d[i]) {
				i++
			}
			if i < len(d) && d[i] == '.' {
				i++
				for i < len(d) && isPathDigit(d[i]) {
					i++
				}
			}
			if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
				i++
				if i < len(d) && (d[i] == '+' || d[i] == '-') {
					i++
				}
				for i < len(d) && isPathDigit(d[i]) {
					i++
				}
			}
			if n, err := strconv.ParseFloat(d[start:i], 64); err == nil {
				toks = append(toks, token{num: n})
			}
		default:
			i++
		}
	}
	return toks
}

type tokenStream struct {
	toks []token
	pos  int
}

func (ts *tokenStream) done() bool {
	return ts.pos >= len(ts.toks)
}

func (ts *tokenStream) peekCmd() (rune, bool) {
	if ts.pos < len(ts.toks) && ts.toks[ts.pos].cmd != 0 {
		return ts.toks[ts.pos].cmd, true
	}
	return 0, false
}

func (ts *tokenStream) atNum() bool {
	return ts.pos < len(ts.toks) && ts.toks[ts.pos].cmd == 0
}

func (ts *tokenStream) nextNum() (float64, bool) {
	if !ts.atNum() {
		return 0, false
	}
	n := ts.toks[ts.pos].num
	ts.pos++
	return n, true
}

// nums consumes exactly n numbers, or reports failure after consuming
// whatever prefix was available.
func (ts *tokenStream) nums(n int) ([]float64, bool) {
	out := make([]float64, 0, n)
	for len(out) < n {
		v, ok := ts.nextNum()
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// parsePath parses SVG path data into absolute-coordinate commands.
//
// Supported: M/m L/l H/h V/v C/c A/a Z/z, with the standard implicit
// repetition (bare numbers repeat the previous command; a repeated M/m
// continues as L/l). S/s, Q/q and T/t are recognized and their arguments
// consumed so the token stream stays in sync, but no command is emitted
// for them. Truncated or malformed trailing input stops parsing at the
// last fully-consumed command.
func parsePath(d string) []pathCmd {
	ts := &tokenStream{toks: tokenizePath(d)}
	var cmds []pathCmd
	cur := 'M'
	var curX, curY, startX, startY float64

	for !ts.done() {
		posBefore := ts.pos
		hadLetter := false
		if c, ok := ts.peekCmd(); ok {
			cur = c
			ts.pos++
			hadLetter = true
		}

		ok := true
		switch cur {
		case 'M':
			var v []float64
			if v, ok = ts.nums(2); ok {
				curX, curY = v[0], v[1]
				startX, startY = curX, curY
				cmds = append(cmds, moveTo{curX, curY})
				cur = 'L'
			}
		case 'm':
			var v []float64
			if v, ok = ts.nums(2); ok {
				curX += v[0]
				curY += v[1]
				startX, startY = curX, curY
				cmds = append(cmds, moveTo{curX, curY})
				cur = 'l'
			}
		case 'L':
			var v []float64
			if v, ok = ts.nums(2); ok {
				curX, curY = v[0], v[1]
				cmds = append(cmds, lineTo{curX, curY})
			}
		case 'l':
			var v []float64
			if v, ok = ts.nums(2); ok {
				curX += v[0]
				curY += v[1]
				cmds = append(cmds, lineTo{curX, curY})
			}
		case 'H':
			var v []float64
			if v, ok = ts.nums(1); ok {
				curX = v[0]
				cmds = append(cmds, lineTo{curX, curY})
			}
		case 'h':
			var v []float64
			if v, ok = ts.nums(1); ok {
				curX += v[0]
				cmds = append(cmds, lineTo{curX, curY})
			}
		case 'V':
			var v []float64
			if v, ok = ts.nums(1); ok {
				curY = v[0]
				cmds = append(cmds, lineTo{curX, curY})
			}
		case 'v':
			var v []float64
			if v, ok = ts.nums(1); ok {
				curY += v[0]
				cmds = append(cmds, lineTo{curX, curY})
			}
		case 'C':
			var v []float64
			if v, ok = ts.nums(6); ok {
				cmds = append(cmds, cubicTo{v[0], v[1], v[2], v[3], v[4], v[5]})
				curX, curY = v[4], v[5]
			}
		case 'c':
			var v []float64
			if v, ok = ts.nums(6); ok {
				cmds = append(cmds, cubicTo{
					curX + v[0], curY + v[1],
					curX + v[2], curY + v[3],
					curX + v[4], curY + v[5],
				})
				curX += v[4]
				curY += v[5]
			}
		case 'A':
			var v []float64
			if v, ok = ts.nums(7); ok {
				cmds = append(cmds, arcTo{
					rx: v[0], ry: v[1], xRot: v[2],
					largeArc: v[3] != 0, sweep: v[4] != 0,
					x: v[5], y: v[6],
				})
				curX, curY = v[5], v[6]
			}
		case 'a':
			var v []float64
			if v, ok = ts.nums(7); ok {
				curX += v[5]
				curY += v[6]
				cmds = append(cmds, arcTo{
					rx: v[0], ry: v[1], xRot: v[2],
					largeArc: v[3] != 0, sweep: v[4] != 0,
					x: curX, y: curY,
				})
			}
		case 'Z', 'z':
			// Z takes no arguments, so a bare number afterwards cannot
			// implicitly repeat it.
			if ok = hadLetter; ok {
				cmds = append(cmds, closePath{})
				curX, curY = startX, startY
			}
		case 'S', 's', 'Q', 'q':
			// Smooth/quadratic shorthands: consume arguments, render nothing.
			n := 0
			for ts.atNum() && n < 4 {
				ts.nextNum()
				n++
			}
			ok = n > 0
		case 'T', 't':
			n := 0
			for ts.atNum() && n < 2 {
				ts.nextNum()
				n++
			}
			ok = n > 0
		default:
			ts.pos++
		}

		// A command that consumed nothing (e.g. a stray number after Z)
		// would loop forever; treat it as malformed trailing input.
		if !ok || ts.pos == posBefore {
			break
		}
	}
	return cmds
}
