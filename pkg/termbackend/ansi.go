package termbackend

import (
	"fmt"
	"strings"

	"github.com/wesen/termplot/pkg/csscolor"
)

// boxGlyphs maps an accumulated TOP/RIGHT/BOTTOM/LEFT bitmask to its
// Unicode box-drawing character. Index 0 (no bits) is a space.
var boxGlyphs = [16]rune{
	' ', // 0
	'╵', // TOP
	'╶', // RIGHT
	'└', // TOP|RIGHT
	'╷', // BOTTOM
	'│', // TOP|BOTTOM
	'┌', // RIGHT|BOTTOM
	'├', // TOP|RIGHT|BOTTOM
	'╴', // LEFT
	'┘', // TOP|LEFT
	'─', // RIGHT|LEFT
	'┴', // TOP|RIGHT|LEFT
	'┐', // BOTTOM|LEFT
	'┤', // TOP|BOTTOM|LEFT
	'┬', // RIGHT|BOTTOM|LEFT
	'┼', // all four
}

const sgrReset = "\x1b[0m"

// ansiString composites the three layers into ANSI-colored text. Per cell
// exactly one layer is emitted, by precedence char > box-drawing > braille
// > blank. Foreground color escapes are run-length compressed: a truecolor
// SGR is written only when the color differs from the previous cell in the
// row, and any colored run is closed with a reset.
func (c *canvas) ansiString() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		colored := false
		var prev csscolor.RGB
		emit := func(rgb csscolor.RGB) {
			if !colored || prev != rgb {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", rgb.R, rgb.G, rgb.B)
				colored = true
				prev = rgb
			}
		}
		for col := 0; col < c.cols; col++ {
			switch {
			case c.chars[row][col] != 0:
				emit(c.charColor[row][col])
				sb.WriteRune(c.chars[row][col])
			case c.boxBits[row][col] != 0:
				emit(c.boxColor[row][col])
				sb.WriteRune(boxGlyphs[c.boxBits[row][col]&0x0f])
			case c.braille[row][col] != 0:
				emit(c.brailleColor[row][col])
				sb.WriteRune(rune(0x2800 + int(c.braille[row][col])))
			default:
				if colored {
					sb.WriteString(sgrReset)
					colored = false
				}
				sb.WriteRune(' ')
			}
		}
		if colored {
			sb.WriteString(sgrReset)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(sgrReset)
	return sb.String()
}
