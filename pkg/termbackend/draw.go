package termbackend

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/wesen/termplot/pkg/csscolor"
	"github.com/wesen/termplot/pkg/scene"
)

// gradientFill substitutes for url(#...) paint references, which cannot be
// resolved in a terminal.
var gradientFill = csscolor.RGB{R: 110, G: 110, B: 110}

// draw rasterizes one primitive into the canvas layers.
func (c *canvas) draw(p scene.Primitive) {
	tx, ty := c.currentOffset()

	switch p := p.(type) {
	case scene.Circle:
		c.drawCircle(p, tx, ty)
	case scene.Line:
		c.drawLine(p, tx, ty)
	case scene.Path:
		c.drawPath(p, tx, ty)
	case scene.Rect:
		c.drawRect(p, tx, ty)
	case scene.Text:
		c.drawText(p, tx, ty)
	case scene.GroupStart:
		c.transforms = append(c.transforms, parseTranslate(p.Transform))
	case scene.GroupEnd:
		// The base identity frame is never popped; extra GroupEnds are
		// no-ops.
		if len(c.transforms) > 1 {
			c.transforms = c.transforms[:len(c.transforms)-1]
		}
	}
}

// drawCircle sets every braille dot whose sub-cell center lies within the
// radius. A containment test per dot rather than a circle rasterization
// algorithm: coarse, but stable at braille resolution.
func (c *canvas) drawCircle(p scene.Circle, tx, ty float64) {
	rgb := csscolor.Parse(p.Fill)
	cx := p.CX + tx
	cy := p.CY + ty
	bw := float64(c.cols * 2)
	bh := float64(c.rows * 4)
	bxMin := max(c.toBX(cx-p.R), 0)
	byMin := max(c.toBY(cy-p.R), 0)
	bxMax := min(c.toBX(cx+p.R), c.cols*2-1)
	byMax := min(c.toBY(cy+p.R), c.rows*4-1)
	for bx := bxMin; bx <= bxMax; bx++ {
		for by := byMin; by <= byMax; by++ {
			px := (float64(bx) + 0.5) * c.sceneW / bw
			py := (float64(by) + 0.5) * c.sceneH / bh
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= p.R*p.R {
				c.setDot(bx, by, rgb)
			}
		}
	}
}

// drawLine renders strictly horizontal or vertical lines (within half a
// scene pixel, absorbing upstream float noise) with box-drawing characters
// for clean axis rendering; everything else goes through Bresenham braille.
func (c *canvas) drawLine(p scene.Line, tx, ty float64) {
	rgb := csscolor.Parse(p.Stroke)
	switch {
	case absf(p.Y1-p.Y2) < 0.5:
		c.drawHLine(c.toCX(p.X1+tx), c.toCY(p.Y1+ty), c.toCX(p.X2+tx), rgb)
	case absf(p.X1-p.X2) < 0.5:
		c.drawVLine(c.toCX(p.X1+tx), c.toCY(p.Y1+ty), c.toCY(p.Y2+ty), rgb)
	default:
		c.bresenham(
			c.toBX(p.X1+tx), c.toBY(p.Y1+ty),
			c.toBX(p.X2+tx), c.toBY(p.Y2+ty),
			rgb,
		)
	}
}

func (c *canvas) drawPath(p scene.Path, tx, ty float64) {
	hasStroke := p.Stroke != "" && p.Stroke != "none"

	var fillRGB csscolor.RGB
	hasFill := false
	switch {
	case p.Fill == "" || p.Fill == "none":
	case strings.HasPrefix(p.Fill, "url("):
		// Gradient references cannot be resolved in a terminal; use a
		// neutral gray.
		fillRGB = gradientFill
		hasFill = true
	default:
		fillRGB = csscolor.Parse(p.Fill)
		hasFill = true
	}

	if !hasStroke && !hasFill {
		return
	}

	// Fill-only paths (Sankey bands, chord ribbons, pie slices) are
	// scanline-filled in the braille grid so they get a solid shaded
	// interior rather than just their outline.
	if hasFill && !hasStroke {
		c.fillPath(p.D, tx, ty, fillRGB)
		return
	}

	rgb := fillRGB
	if hasStroke {
		rgb = csscolor.Parse(p.Stroke)
	}
	c.strokePath(p.D, tx, ty, rgb)
}

// fillPath accumulates each subpath into a polygon (a MoveTo flushes any
// in-progress polygon, ClosePath appends the subpath start) and fills it.
func (c *canvas) fillPath(d string, tx, ty float64, rgb csscolor.RGB) {
	var poly []point
	cur := point{tx, ty}
	start := cur
	for _, cmd := range parsePath(d) {
		switch cmd := cmd.(type) {
		case moveTo:
			if len(poly) >= 3 {
				c.fillBraillePolygon(poly, rgb)
			}
			poly = poly[:0]
			cur = point{cmd.x + tx, cmd.y + ty}
			start = cur
			poly = append(poly, cur)
		case lineTo:
			cur = point{cmd.x + tx, cmd.y + ty}
			poly = append(poly, cur)
		case cubicTo:
			pts := tessellateCubic(cur,
				point{cmd.x1 + tx, cmd.y1 + ty},
				point{cmd.x2 + tx, cmd.y2 + ty},
				point{cmd.x + tx, cmd.y + ty})
			poly = append(poly, pts[1:]...)
			cur = point{cmd.x + tx, cmd.y + ty}
		case arcTo:
			end := point{cmd.x + tx, cmd.y + ty}
			pts := tessellateArc(cur, cmd.rx, cmd.ry, cmd.xRot, cmd.largeArc, cmd.sweep, end)
			poly = append(poly, pts[1:]...)
			cur = end
		case closePath:
			poly = append(poly, start)
			cur = start
		}
	}
	if len(poly) >= 3 {
		c.fillBraillePolygon(poly, rgb)
	}
}

// strokePath walks the command list, Bresenham-stroking every flattened
// segment.
func (c *canvas) strokePath(d string, tx, ty float64, rgb csscolor.RGB) {
	cur := point{tx, ty}
	start := cur
	stroke := func(a, b point) {
		c.bresenham(c.toBX(a.x), c.toBY(a.y), c.toBX(b.x), c.toBY(b.y), rgb)
	}
	for _, cmd := range parsePath(d) {
		switch cmd := cmd.(type) {
		case moveTo:
			cur = point{cmd.x + tx, cmd.y + ty}
			start = cur
		case lineTo:
			next := point{cmd.x + tx, cmd.y + ty}
			stroke(cur, next)
			cur = next
		case cubicTo:
			pts := tessellateCubic(cur,
				point{cmd.x1 + tx, cmd.y1 + ty},
				point{cmd.x2 + tx, cmd.y2 + ty},
				point{cmd.x + tx, cmd.y + ty})
			for i := 1; i < len(pts); i++ {
				stroke(pts[i-1], pts[i])
			}
			cur = point{cmd.x + tx, cmd.y + ty}
		case arcTo:
			end := point{cmd.x + tx, cmd.y + ty}
			pts := tessellateArc(cur, cmd.rx, cmd.ry, cmd.xRot, cmd.largeArc, cmd.sweep, end)
			for i := 1; i < len(pts); i++ {
				stroke(pts[i-1], pts[i])
			}
			cur = end
		case closePath:
			stroke(cur, start)
			cur = start
		}
	}
}

// drawRect maps a filled rect to a block of solid █ cells. A rect smaller
// than one cell in a dimension is snapped to the single cell nearest its
// center, so small fixed-size swatches (legend squares) always occupy
// exactly one cell instead of straddling a boundary and covering 1–2 cells
// depending on rounding.
func (c *canvas) drawRect(p scene.Rect, tx, ty float64) {
	if p.Fill == "" || p.Fill == "none" {
		return
	}
	rgb := csscolor.Parse(p.Fill)
	x := p.X + tx
	y := p.Y + ty

	cellW := c.sceneW / float64(c.cols)
	cellH := c.sceneH / float64(c.rows)

	var cx0, cx1 int
	if p.Width < cellW {
		cx := clamp(c.toCX(x+p.Width*0.5), 0, c.cols-1)
		cx0, cx1 = cx, cx
	} else {
		cx0 = max(c.toCX(x), 0)
		// The right edge is exclusive: a rect ending exactly on a cell
		// boundary does not spill into the next cell.
		cx1 = min(lastCoveredCell(x+p.Width, float64(c.cols), c.sceneW), c.cols-1)
	}
	// The absolute 16px floor keeps legend swatches (12px nominal) snapped
	// to one row regardless of terminal size.
	var cy0, cy1 int
	if p.Height < math.Max(cellH, 16.0) {
		cy := clamp(c.toCY(y+p.Height*0.5), 0, c.rows-1)
		cy0, cy1 = cy, cy
	} else {
		cy0 = max(c.toCY(y), 0)
		cy1 = min(lastCoveredCell(y+p.Height, float64(c.rows), c.sceneH), c.rows-1)
	}

	for col := cx0; col <= cx1; col++ {
		for row := cy0; row <= cy1; row++ {
			c.setChar(col, row, '█', rgb)
		}
	}
}

// drawText places a text run in the char overlay. Character cells cannot
// rotate, so rotation selects a placement strategy instead:
//
//   - |rotate| mod 180 in (45°,135°): a vertical-axis label, pinned to
//     column 0 so the whole string stays readable
//   - |rotate| mod 180 ≥ 15° outside that band (rotated tick/category
//     labels): left-justified at the tick column, pushed down row by row
//     on collision so stacked labels keep at least one blank column apart
//   - otherwise: anchor-resolved placement at the mapped position
func (c *canvas) drawText(p scene.Text, tx, ty float64) {
	rgb := c.textColor
	row := c.toCY(p.Y + ty)
	chars := []rune(p.Content)
	width := runewidth.StringWidth(p.Content)

	absAngle := math.Mod(math.Abs(p.Rotate), 180)

	if absAngle > 45 && absAngle < 135 {
		for i, ch := range chars {
			c.setChar(i, row, ch, rgb)
		}
		return
	}

	col := c.toCX(p.X + tx)
	if absAngle >= 15 {
		// Rotated tick labels (e.g. -45° category names). Left-justified
		// so it stays clear which column the label belongs to. The
		// collision scan covers [col-1, col+width] so neighbours always
		// end up with at least one blank column between them.
		drawRow := row
		for drawRow < c.rows {
			collides := false
			for i := -1; i <= width; i++ {
				cx := col + i
				if cx >= 0 && cx < c.cols && drawRow >= 0 && c.chars[drawRow][cx] != 0 {
					collides = true
					break
				}
			}
			if !collides {
				break
			}
			drawRow++
		}
		for i, ch := range chars {
			c.setChar(col+i, drawRow, ch, rgb)
		}
		return
	}

	// Unrotated text (titles, tick values, legend labels): place directly,
	// no collision stacking — a legend swatch right before its label must
	// not push the label away.
	startCol := col
	switch p.Anchor {
	case scene.AnchorMiddle:
		startCol = col - width/2
	case scene.AnchorEnd:
		startCol = col - width
	}
	for i, ch := range chars {
		c.setChar(startCol+i, row, ch, rgb)
	}
}

// parseTranslate parses the single transform form "translate(tx[,ty])".
// Anything else yields the zero offset.
func parseTranslate(t string) [2]float64 {
	inner, ok := strings.CutPrefix(strings.TrimSpace(t), "translate(")
	if !ok {
		return [2]float64{}
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return [2]float64{}
	}
	var nums []float64
	for _, f := range strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			nums = append(nums, v)
		}
	}
	switch {
	case len(nums) >= 2:
		return [2]float64{nums[0], nums[1]}
	case len(nums) == 1:
		return [2]float64{nums[0], 0}
	default:
		return [2]float64{}
	}
}

// lastCoveredCell maps the far edge of a half-open pixel interval to the
// last cell index it actually covers.
func lastCoveredCell(edge, cells, sceneExtent float64) int {
	return int(math.Ceil(edge*cells/sceneExtent)) - 1
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
