package termbackend

import (
	"testing"

	"github.com/wesen/termplot/pkg/csscolor"
)

var red = csscolor.RGB{R: 255, G: 0, B: 0}

// testCanvas returns a canvas whose braille grid maps 1:1 onto scene
// pixels (scene 20×20, 10×5 cells → 20×20 braille dots).
func testCanvas() *canvas {
	return newCanvas(10, 5, 20, 20, defaultStroke)
}

func TestNewCanvasClampsDimensions(t *testing.T) {
	c := newCanvas(0, -3, 0, -1, defaultStroke)
	if c.cols != 1 || c.rows != 1 {
		t.Fatalf("expected 1x1 canvas, got %dx%d", c.cols, c.rows)
	}
	if c.sceneW != 1 || c.sceneH != 1 {
		t.Fatalf("expected 1x1 scene, got %gx%g", c.sceneW, c.sceneH)
	}
}

// ── Coordinate mapping ──

func TestCoordinateMapping(t *testing.T) {
	c := newCanvas(20, 10, 100, 100, defaultStroke)
	tests := []struct {
		px     float64
		cx, bx int
	}{
		{0, 0, 0},
		{4.9, 0, 1},
		{5, 1, 2},
		{50, 10, 20},
		{99.9, 19, 39},
		{100, 20, 40}, // out of range; writers must clip
		{-1, -1, -1},
	}
	for _, tc := range tests {
		if got := c.toCX(tc.px); got != tc.cx {
			t.Errorf("toCX(%g) = %d, want %d", tc.px, got, tc.cx)
		}
		if got := c.toBX(tc.px); got != tc.bx {
			t.Errorf("toBX(%g) = %d, want %d", tc.px, got, tc.bx)
		}
	}
	if got := c.toBY(50); got != 20 {
		t.Errorf("toBY(50) = %d, want 20", got)
	}
	if got := c.toCY(50); got != 5 {
		t.Errorf("toCY(50) = %d, want 5", got)
	}
}

// ── Braille dots ──

func TestSetDotBits(t *testing.T) {
	// One sub-cell per braille bit, all within char cell (0,0).
	tests := []struct {
		bx, by int
		want   uint8
	}{
		{0, 0, 1},
		{0, 1, 2},
		{0, 2, 4},
		{1, 0, 8},
		{1, 1, 16},
		{1, 2, 32},
		{0, 3, 64},
		{1, 3, 128},
	}
	for _, tc := range tests {
		c := testCanvas()
		c.setDot(tc.bx, tc.by, red)
		if got := c.braille[0][0]; got != tc.want {
			t.Errorf("setDot(%d,%d): mask = %d, want %d", tc.bx, tc.by, got, tc.want)
		}
		if c.brailleColor[0][0] != red {
			t.Errorf("setDot(%d,%d): color not recorded", tc.bx, tc.by)
		}
	}
}

func TestSetDotAccumulatesWithinCell(t *testing.T) {
	c := testCanvas()
	c.setDot(0, 0, red)
	c.setDot(1, 3, red)
	if got := c.braille[0][0]; got != 1|128 {
		t.Fatalf("mask = %d, want %d", got, 1|128)
	}
}

func TestSetDotOutOfBounds(t *testing.T) {
	c := testCanvas()
	c.setDot(-1, 0, red)
	c.setDot(0, -1, red)
	c.setDot(20, 0, red)
	c.setDot(0, 20, red)
	for y := range c.braille {
		for x := range c.braille[y] {
			if c.braille[y][x] != 0 {
				t.Fatalf("out-of-bounds setDot modified cell (%d,%d)", x, y)
			}
		}
	}
}

// ── Box-drawing bits ──

func TestSetLineBitsAccumulates(t *testing.T) {
	c := testCanvas()
	c.setLineBits(3, 2, bitLeft|bitRight, red)
	c.setLineBits(3, 2, bitTop|bitBottom, red)
	if got := c.boxBits[2][3]; got != 15 {
		t.Fatalf("bits = %d, want 15", got)
	}
}

func TestDrawHLineBits(t *testing.T) {
	c := testCanvas()
	c.drawHLine(2, 1, 5, red)
	wants := map[int]uint8{
		2: bitRight,
		3: bitLeft | bitRight,
		4: bitLeft | bitRight,
		5: bitLeft,
	}
	for cx, want := range wants {
		if got := c.boxBits[1][cx]; got != want {
			t.Errorf("cell (%d,1): bits = %d, want %d", cx, got, want)
		}
	}
	if c.boxBits[1][1] != 0 || c.boxBits[1][6] != 0 {
		t.Error("hline leaked outside its span")
	}
}

func TestDrawHLineReversed(t *testing.T) {
	a := testCanvas()
	a.drawHLine(2, 1, 5, red)
	b := testCanvas()
	b.drawHLine(5, 1, 2, red)
	for cx := 0; cx < a.cols; cx++ {
		if a.boxBits[1][cx] != b.boxBits[1][cx] {
			t.Fatalf("cell (%d,1): %d != %d", cx, a.boxBits[1][cx], b.boxBits[1][cx])
		}
	}
}

func TestDrawHLineSingleCell(t *testing.T) {
	c := testCanvas()
	c.drawHLine(3, 0, 3, red)
	if got := c.boxBits[0][3]; got != bitLeft|bitRight {
		t.Fatalf("degenerate hline bits = %d, want %d", got, bitLeft|bitRight)
	}
}

func TestDrawVLineBits(t *testing.T) {
	c := testCanvas()
	c.drawVLine(4, 0, 3, red)
	wants := map[int]uint8{
		0: bitBottom,
		1: bitTop | bitBottom,
		2: bitTop | bitBottom,
		3: bitTop,
	}
	for cy, want := range wants {
		if got := c.boxBits[cy][4]; got != want {
			t.Errorf("cell (4,%d): bits = %d, want %d", cy, got, want)
		}
	}
}

func TestDrawVLineSingleCell(t *testing.T) {
	c := testCanvas()
	c.drawVLine(4, 2, 2, red)
	if got := c.boxBits[2][4]; got != bitTop|bitBottom {
		t.Fatalf("degenerate vline bits = %d, want %d", got, bitTop|bitBottom)
	}
}

// Crossing segments must OR into a junction without any extra pass.
func TestCrossingLinesFormJunction(t *testing.T) {
	c := testCanvas()
	c.drawHLine(0, 2, 9, red)
	c.drawVLine(4, 0, 4, red)
	if got := c.boxBits[2][4]; got != 15 {
		t.Fatalf("junction bits = %d, want 15", got)
	}
}

// ── Bresenham ──

func dotSet(c *canvas, bx, by int) bool {
	return c.braille[by/4][bx/2]&brailleBits[by%4][bx%2] != 0
}

func TestBresenhamEndpoints(t *testing.T) {
	c := testCanvas()
	c.bresenham(1, 1, 17, 13, red)
	if !dotSet(c, 1, 1) {
		t.Error("start dot not set")
	}
	if !dotSet(c, 17, 13) {
		t.Error("end dot not set")
	}
}

func TestBresenhamDiagonal(t *testing.T) {
	c := testCanvas()
	c.bresenham(0, 0, 5, 5, red)
	for i := 0; i <= 5; i++ {
		if !dotSet(c, i, i) {
			t.Errorf("dot (%d,%d) not set", i, i)
		}
	}
}

func TestBresenhamZeroLength(t *testing.T) {
	c := testCanvas()
	c.bresenham(3, 3, 3, 3, red)
	if !dotSet(c, 3, 3) {
		t.Fatal("single dot not set")
	}
}

func TestBresenhamClipsOutOfRange(t *testing.T) {
	c := testCanvas()
	// Must terminate and not panic even when mostly off-canvas.
	c.bresenham(-5, -5, 30, 30, red)
	if !dotSet(c, 10, 10) {
		t.Error("on-canvas section missing")
	}
}

// ── Polygon fill ──

func TestFillPolygonTriangle(t *testing.T) {
	c := testCanvas()
	// Scene coords map 1:1 to braille dots here.
	tri := []point{{2, 2}, {17, 2}, {10, 17}}
	c.fillBraillePolygon(tri, red)

	// Centroid is inside.
	if !dotSet(c, 9, 7) {
		t.Error("centroid dot not set")
	}
	// Nothing above or below the vertical bounds.
	for bx := 0; bx < 20; bx++ {
		if dotSet(c, bx, 0) || dotSet(c, bx, 19) {
			t.Fatalf("dot (%d, outside) set", bx)
		}
	}
	// Corners of the bounding box are outside the triangle.
	if dotSet(c, 2, 16) || dotSet(c, 17, 16) {
		t.Error("dot outside triangle set")
	}
}

func TestFillPolygonTooFewPoints(t *testing.T) {
	c := testCanvas()
	c.fillBraillePolygon([]point{{0, 0}, {10, 10}}, red)
	for y := range c.braille {
		for x := range c.braille[y] {
			if c.braille[y][x] != 0 {
				t.Fatal("degenerate polygon set dots")
			}
		}
	}
}

func TestFillPolygonClipsToCanvas(t *testing.T) {
	c := testCanvas()
	c.fillBraillePolygon([]point{{-10, -10}, {30, -10}, {30, 30}, {-10, 30}}, red)
	if !dotSet(c, 0, 0) || !dotSet(c, 19, 19) {
		t.Error("clipped fill should still cover the whole canvas")
	}
}

// ── Transform stack ──

func TestCurrentOffsetSumsFrames(t *testing.T) {
	c := testCanvas()
	c.transforms = append(c.transforms, [2]float64{3, 4}, [2]float64{-1, 2})
	tx, ty := c.currentOffset()
	if tx != 2 || ty != 6 {
		t.Fatalf("offset = (%g,%g), want (2,6)", tx, ty)
	}
}
