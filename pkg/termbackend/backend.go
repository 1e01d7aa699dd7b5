// Package termbackend renders a scene.Scene to ANSI/Unicode text for
// terminal display.
//
// Three per-cell layers are drawn and then composited front to back:
//
//  1. char overlay — filled Rects (█) and Text characters
//  2. box-drawing  — axis/tick Lines, with per-cell TOP/RIGHT/BOTTOM/LEFT
//     bitmasks that OR-accumulate so crossings resolve to proper junction
//     glyphs (┼, ├, ┬, ...)
//  3. braille      — a virtual 2×4 dot grid per cell (U+2800–U+28FF) for
//     circles, diagonal lines, and path strokes/fills
//
// Rendering is a pure function of (scene, cols, rows): no I/O, no shared
// state, and no failure modes — degenerate or out-of-range geometry is
// clipped or skipped, never an error.
package termbackend

import (
	"github.com/wesen/termplot/pkg/csscolor"
	"github.com/wesen/termplot/pkg/scene"
)

// defaultTextColor keeps an unstyled Scene readable on dark terminals.
var defaultTextColor = csscolor.RGB{R: 210, G: 210, B: 210}

// Backend renders Scenes into a fixed Cols×Rows character grid.
type Backend struct {
	Cols, Rows int
}

// New creates a Backend. Both dimensions are clamped to at least 1.
func New(cols, rows int) *Backend {
	return &Backend{Cols: max(cols, 1), Rows: max(rows, 1)}
}

// RenderScene rasterizes the scene into Rows newline-terminated lines of
// exactly Cols characters each (after ANSI escape stripping), ending with
// an SGR reset.
func (b *Backend) RenderScene(s *scene.Scene) string {
	textColor := defaultTextColor
	if s.TextColor != "" {
		textColor = csscolor.Parse(s.TextColor)
	}
	c := newCanvas(b.Cols, b.Rows, s.Width, s.Height, textColor)
	for _, p := range s.Elements {
		c.draw(p)
	}
	return c.ansiString()
}
