// Package csscolor resolves CSS color strings to 24-bit RGB triples.
//
// Resolution never fails: "none"/"transparent"/empty map to a neutral
// (128,128,128) and anything unrecognized maps to (150,150,150), so a
// renderer can always proceed with a visible fallback instead of erroring
// on a bad style string.
package csscolor

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Parse resolves a CSS color string: rgb(r,g,b), #RRGGBB, #RGB, or a named
// color. See the package comment for fallback behavior.
func Parse(s string) RGB {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") || strings.EqualFold(s, "transparent") {
		return RGB{128, 128, 128}
	}
	lower := strings.ToLower(s)

	if inner, ok := strings.CutPrefix(lower, "rgb("); ok {
		if inner, ok := strings.CutSuffix(inner, ")"); ok {
			if parts := strings.Split(inner, ","); len(parts) == 3 {
				var ch [3]uint8
				for i, p := range parts {
					v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
					if err != nil {
						v = 0
					}
					ch[i] = clampChannel(math.Round(v))
				}
				return RGB{ch[0], ch[1], ch[2]}
			}
		}
	}

	// colorful.Hex handles both #RRGGBB and the #RGB shorthand (with the
	// standard x*17 channel expansion).
	if strings.HasPrefix(lower, "#") && (len(lower) == 7 || len(lower) == 4) {
		if c, err := colorful.Hex(lower); err == nil {
			r, g, b := c.RGB255()
			return RGB{r, g, b}
		}
	}

	if c, ok := namedColors[lower]; ok {
		return c
	}
	return RGB{150, 150, 150}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// namedColors covers the CSS named colors that the plot palettes and themes
// actually use. Unlisted names hit the (150,150,150) fallback.
var namedColors = map[string]RGB{
	"black":         {0, 0, 0},
	"white":         {255, 255, 255},
	"red":           {255, 0, 0},
	"green":         {0, 128, 0},
	"lime":          {0, 255, 0},
	"blue":          {0, 0, 255},
	"gray":          {128, 128, 128},
	"grey":          {128, 128, 128},
	"lightgray":     {211, 211, 211},
	"lightgrey":     {211, 211, 211},
	"darkgray":      {169, 169, 169},
	"darkgrey":      {169, 169, 169},
	"silver":        {192, 192, 192},
	"steelblue":     {70, 130, 180},
	"orange":        {255, 165, 0},
	"darkorange":    {255, 140, 0},
	"purple":        {128, 0, 128},
	"yellow":        {255, 255, 0},
	"cyan":          {0, 255, 255},
	"aqua":          {0, 255, 255},
	"magenta":       {255, 0, 255},
	"fuchsia":       {255, 0, 255},
	"darkred":       {139, 0, 0},
	"darkgreen":     {0, 100, 0},
	"darkblue":      {0, 0, 139},
	"salmon":        {250, 128, 114},
	"teal":          {0, 128, 128},
	"coral":         {255, 127, 80},
	"indigo":        {75, 0, 130},
	"pink":          {255, 192, 203},
	"hotpink":       {255, 105, 180},
	"gold":          {255, 215, 0},
	"olive":         {128, 128, 0},
	"navy":          {0, 0, 128},
	"maroon":        {128, 0, 0},
	"crimson":       {220, 20, 60},
	"tomato":        {255, 99, 71},
	"chocolate":     {210, 105, 30},
	"sienna":        {160, 82, 45},
	"tan":           {210, 180, 140},
	"khaki":         {240, 230, 140},
	"limegreen":     {50, 205, 50},
	"forestgreen":   {34, 139, 34},
	"seagreen":      {46, 139, 87},
	"darkturquoise": {0, 206, 209},
	"royalblue":     {65, 105, 225},
	"slateblue":     {106, 90, 205},
	"mediumpurple":  {147, 112, 219},
	"orchid":        {218, 112, 214},
	"plum":          {221, 160, 221},
	"violet":        {238, 130, 238},
	"deeppink":      {255, 20, 147},
	"orangered":     {255, 69, 0},
	"firebrick":     {178, 34, 34},
	"brown":         {165, 42, 42},
	"saddlebrown":   {139, 69, 19},
	"slategray":     {112, 128, 144},
	"slategrey":     {112, 128, 144},
	"darkslategray": {47, 79, 79},
	"darkslategrey": {47, 79, 79},
}
