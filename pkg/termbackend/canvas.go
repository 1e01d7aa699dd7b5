package termbackend

import (
	"math"
	"sort"

	"github.com/wesen/termplot/pkg/csscolor"
)

// Box-drawing bit constants. The per-cell bitmask records which of the four
// cell edges a line enters through; OR-accumulation across writes makes
// crossing segments resolve to the right junction glyph with no separate
// junction-detection pass.
const (
	bitTop uint8 = 1 << iota
	bitRight
	bitBottom
	bitLeft
)

// Braille dot bit for sub-cell (bx%2, by%4), per the U+2800 encoding.
var brailleBits = [4][2]uint8{
	{1, 8},
	{2, 16},
	{4, 32},
	{64, 128},
}

// point is a scene-space coordinate.
type point struct {
	x, y float64
}

// defaultStroke is used when a layer cell has accumulated bits but no color
// was ever recorded for it.
var defaultStroke = csscolor.RGB{R: 200, G: 200, B: 200}

// canvas owns the three per-cell raster layers for one RenderScene call:
//
//  1. braille — dot-matrix bitmasks (2×4 sub-cells) for circles, diagonal
//     lines and path strokes/fills
//  2. boxBits — box-drawing bitmasks for horizontal/vertical lines
//  3. chars   — glyph overlay for filled rects and text, drawn on top
type canvas struct {
	cols, rows     int
	sceneW, sceneH float64

	braille      [][]uint8 // [row][col] dot bitmask (U+2800 encoding)
	brailleColor [][]csscolor.RGB
	boxBits      [][]uint8 // [row][col] TOP/RIGHT/BOTTOM/LEFT bitmask
	boxColor     [][]csscolor.RGB
	chars        [][]rune // [row][col] overlay glyph, 0 = empty
	charColor    [][]csscolor.RGB

	// Accumulated translate(tx,ty) offsets, innermost frame last. The
	// first entry is the identity frame and is never popped.
	transforms [][2]float64

	// Color for Text primitives, fixed per canvas from the scene.
	textColor csscolor.RGB
}

func newCanvas(cols, rows int, sceneW, sceneH float64, textColor csscolor.RGB) *canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	sceneW = math.Max(sceneW, 1.0)
	sceneH = math.Max(sceneH, 1.0)

	c := &canvas{
		cols:       cols,
		rows:       rows,
		sceneW:     sceneW,
		sceneH:     sceneH,
		transforms: [][2]float64{{0, 0}},
		textColor:  textColor,
	}
	c.braille = make([][]uint8, rows)
	c.brailleColor = make([][]csscolor.RGB, rows)
	c.boxBits = make([][]uint8, rows)
	c.boxColor = make([][]csscolor.RGB, rows)
	c.chars = make([][]rune, rows)
	c.charColor = make([][]csscolor.RGB, rows)
	for y := 0; y < rows; y++ {
		c.braille[y] = make([]uint8, cols)
		c.brailleColor[y] = make([]csscolor.RGB, cols)
		c.boxBits[y] = make([]uint8, cols)
		c.boxColor[y] = make([]csscolor.RGB, cols)
		c.chars[y] = make([]rune, cols)
		c.charColor[y] = make([]csscolor.RGB, cols)
		for x := 0; x < cols; x++ {
			c.brailleColor[y][x] = defaultStroke
			c.boxColor[y][x] = defaultStroke
		}
	}
	return c
}

// currentOffset sums all stacked translations into the global offset.
func (c *canvas) currentOffset() (float64, float64) {
	var tx, ty float64
	for _, t := range c.transforms {
		tx += t[0]
		ty += t[1]
	}
	return tx, ty
}

// ── Coordinate mapping ──
//
// W = scene width, H = scene height, C = cols, R = rows:
//
//	braille x = floor(px · C·2 / W)   range [0, C·2)
//	braille y = floor(py · R·4 / H)   range [0, R·4)
//	char col  = floor(px · C   / W)   range [0, C)
//	char row  = floor(py · R   / H)   range [0, R)
//
// Results may fall outside the valid range; every write bounds-checks.

func (c *canvas) toBX(px float64) int {
	return int(math.Floor(px * float64(c.cols*2) / c.sceneW))
}

func (c *canvas) toBY(py float64) int {
	return int(math.Floor(py * float64(c.rows*4) / c.sceneH))
}

func (c *canvas) toCX(px float64) int {
	return int(math.Floor(px * float64(c.cols) / c.sceneW))
}

func (c *canvas) toCY(py float64) int {
	return int(math.Floor(py * float64(c.rows) / c.sceneH))
}

// ── Layer writes (all silently ignore out-of-range coordinates) ──

// setDot sets one braille sub-cell dot. Last write wins for the cell color.
func (c *canvas) setDot(bx, by int, color csscolor.RGB) {
	if bx < 0 || by < 0 || bx >= c.cols*2 || by >= c.rows*4 {
		return
	}
	row, col := by/4, bx/2
	c.braille[row][col] |= brailleBits[by%4][bx%2]
	c.brailleColor[row][col] = color
}

// setChar writes one overlay glyph. Last write wins.
func (c *canvas) setChar(cx, cy int, ch rune, color csscolor.RGB) {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return
	}
	c.chars[cy][cx] = ch
	c.charColor[cy][cx] = color
}

// setLineBits ORs box-drawing bits into a cell.
func (c *canvas) setLineBits(cx, cy int, bits uint8, color csscolor.RGB) {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return
	}
	c.boxBits[cy][cx] |= bits
	c.boxColor[cy][cx] = color
}

// drawHLine draws a horizontal box-drawing line on char row cy from cx0 to
// cx1. Interior cells get both facing bits; each endpoint cell gets only
// its inward bit, so segments that meet in a cell OR together into the
// correct corner or junction glyph. A single-cell segment gets both bits.
func (c *canvas) drawHLine(cx0, cy, cx1 int, color csscolor.RGB) {
	lo, hi := cx0, cx1
	if lo > hi {
		lo, hi = hi, lo
	}
	for cx := lo; cx <= hi; cx++ {
		var bits uint8
		switch {
		case lo == hi:
			bits = bitLeft | bitRight
		case cx == lo:
			bits = bitRight
		case cx == hi:
			bits = bitLeft
		default:
			bits = bitLeft | bitRight
		}
		c.setLineBits(cx, cy, bits, color)
	}
}

// drawVLine draws a vertical box-drawing line on char column cx from cy0 to
// cy1, with the same endpoint bit rule as drawHLine.
func (c *canvas) drawVLine(cx, cy0, cy1 int, color csscolor.RGB) {
	lo, hi := cy0, cy1
	if lo > hi {
		lo, hi = hi, lo
	}
	for cy := lo; cy <= hi; cy++ {
		var bits uint8
		switch {
		case lo == hi:
			bits = bitTop | bitBottom
		case cy == lo:
			bits = bitBottom
		case cy == hi:
			bits = bitTop
		default:
			bits = bitTop | bitBottom
		}
		c.setLineBits(cx, cy, bits, color)
	}
}

// bresenham rasterizes a straight line over the braille sub-grid. Both
// endpoints are always visited; out-of-range dots are clipped by setDot.
func (c *canvas) bresenham(bx0, by0, bx1, by1 int, color csscolor.RGB) {
	dx := abs(bx1 - bx0)
	dy := abs(by1 - by0)
	sx := 1
	if bx0 > bx1 {
		sx = -1
	}
	sy := 1
	if by0 > by1 {
		sy = -1
	}
	err := dx - dy
	x, y := bx0, by0
	for {
		c.setDot(x, y, color)
		if x == bx1 && y == by1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// fillBraillePolygon scanline-fills a closed polygon given in scene-space
// coordinates, using the even-odd rule. Each braille row inside the
// polygon's (clamped) vertical bounds is sampled at its vertical midpoint;
// x-intersections against every edge (including the implicit closing edge)
// are sorted and dots are set between consecutive pairs.
func (c *canvas) fillBraillePolygon(pts []point, color csscolor.RGB) {
	if len(pts) < 3 {
		return
	}
	bw := c.cols * 2
	bh := c.rows * 4

	bpts := make([]point, len(pts))
	for i, p := range pts {
		bpts[i] = point{float64(c.toBX(p.x)), float64(c.toBY(p.y))}
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range bpts {
		minY = math.Min(minY, p.y)
		maxY = math.Max(maxY, p.y)
	}
	byMin := int(math.Max(minY, 0))
	byMax := int(math.Min(maxY, float64(bh-1)))

	var xs []float64
	for by := byMin; by <= byMax; by++ {
		// Sample at the row midpoint to avoid vertex-touching ambiguity.
		sy := float64(by) + 0.5
		xs = xs[:0]
		for i := range bpts {
			p0 := bpts[i]
			p1 := bpts[(i+1)%len(bpts)]
			if (p0.y < sy && p1.y >= sy) || (p1.y < sy && p0.y >= sy) {
				t := (sy - p0.y) / (p1.y - p0.y)
				xs = append(xs, p0.x+t*(p1.x-p0.x))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(int(xs[i]), 0)
			x1 := min(int(xs[i+1]), bw-1)
			for bx := x0; bx <= x1; bx++ {
				c.setDot(bx, by, color)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
