package svgbackend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wesen/termplot/pkg/scene"
)

func TestRenderDocumentShell(t *testing.T) {
	out := New().Render(scene.New(640, 480))
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="640" height="480">`))
	assert.True(t, strings.HasSuffix(out, `</svg>`))
	assert.Contains(t, out, `<rect width="100%" height="100%" fill="white" />`)
}

func TestRenderTransparentBackgroundOmitted(t *testing.T) {
	out := New().Render(scene.New(10, 10).WithBackground("none"))
	assert.NotContains(t, out, `100%`)
}

func TestRenderCircle(t *testing.T) {
	s := scene.New(100, 100)
	s.Add(scene.Circle{CX: 50, CY: 25.5, R: 3, Fill: "steelblue"})
	assert.Contains(t, New().Render(s),
		`<circle cx="50" cy="25.5" r="3" fill="steelblue" />`)
}

func TestRenderText(t *testing.T) {
	s := scene.New(100, 100)
	s.TextColor = "#eee"
	s.FontFamily = "monospace"
	s.Add(scene.Text{X: 50, Y: 10, Content: "a < b & c", Size: 14,
		Anchor: scene.AnchorMiddle, Bold: true, Rotate: -45})
	out := New().Render(s)

	assert.Contains(t, out, `text-anchor="middle"`)
	assert.Contains(t, out, `fill="#eee"`)
	assert.Contains(t, out, `font-family="monospace"`)
	assert.Contains(t, out, `font-weight="bold"`)
	assert.Contains(t, out, `transform="rotate(-45,50,10)"`)
	assert.Contains(t, out, `>a &lt; b &amp; c</text>`, "content is XML-escaped")
}

func TestRenderTextMinimal(t *testing.T) {
	s := scene.New(100, 100)
	s.Add(scene.Text{X: 0, Y: 0, Content: "plain", Size: 12})
	out := New().Render(s)
	assert.Contains(t, out, `text-anchor="start"`)
	assert.NotContains(t, out, `font-weight`)
	assert.NotContains(t, out, `transform=`)
}

func TestRenderLine(t *testing.T) {
	s := scene.New(100, 100)
	s.Add(scene.Line{X1: 0, Y1: 1, X2: 2, Y2: 3, Stroke: "#333", StrokeWidth: 1})
	assert.Contains(t, New().Render(s),
		`<line x1="0" y1="1" x2="2" y2="3" stroke="#333" stroke-width="1" />`)
}

func TestRenderPathDefaultsAndOpacity(t *testing.T) {
	s := scene.New(100, 100)
	s.Add(scene.Path{D: "M 0 0 L 1 1", Stroke: "red", StrokeWidth: 2})
	s.Add(scene.Path{D: "M 0 0 L 2 2 Z", Fill: "blue", Opacity: 0.5})
	out := New().Render(s)

	assert.Contains(t, out, `<path d="M 0 0 L 1 1" fill="none" stroke="red" stroke-width="2" />`,
		"empty fill serializes as none")
	assert.Contains(t, out, `<path d="M 0 0 L 2 2 Z" fill="blue" stroke="none" stroke-width="0" opacity="0.5" />`)
}

func TestRenderPathFullOpacityOmitted(t *testing.T) {
	s := scene.New(100, 100)
	s.Add(scene.Path{D: "M 0 0 L 1 1", Fill: "red", Opacity: 1})
	assert.NotContains(t, New().Render(s), `opacity=`)
}

func TestRenderRect(t *testing.T) {
	s := scene.New(100, 100)
	s.Add(scene.Rect{X: 1, Y: 2, Width: 3, Height: 4, Fill: "gold"})
	s.Add(scene.Rect{X: 0, Y: 0, Width: 5, Height: 5, Fill: "none", Stroke: "black", StrokeWidth: 1})
	out := New().Render(s)

	assert.Contains(t, out, `<rect x="1" y="2" width="3" height="4" fill="gold" />`)
	assert.Contains(t, out, `<rect x="0" y="0" width="5" height="5" fill="none" stroke="black" stroke-width="1" />`)
}

func TestRenderGroups(t *testing.T) {
	s := scene.New(100, 100)
	s.Add(scene.GroupStart{Transform: "translate(10,20)"})
	s.Add(scene.GroupStart{})
	s.Add(scene.GroupEnd{})
	s.Add(scene.GroupEnd{})
	out := New().Render(s)

	assert.Contains(t, out, `<g transform="translate(10,20)">`)
	assert.Contains(t, out, `<g>`)
	assert.Equal(t, 2, strings.Count(out, `</g>`))
}

func TestRenderElementOrderFollowsPaintOrder(t *testing.T) {
	s := scene.New(100, 100)
	s.Add(scene.Circle{CX: 1, CY: 1, R: 1, Fill: "red"})
	s.Add(scene.Rect{Width: 1, Height: 1, Fill: "blue"})
	out := New().Render(s)
	assert.Less(t, strings.Index(out, "<circle"), strings.Index(out, `<rect x=`))
}
