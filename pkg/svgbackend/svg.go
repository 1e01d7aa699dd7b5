// Package svgbackend renders a scene.Scene to SVG markup. It is a thin
// string formatter: every primitive maps one-to-one onto an SVG element,
// with no geometry processing.
package svgbackend

import (
	"fmt"
	"strings"

	"github.com/wesen/termplot/pkg/scene"
)

// Backend renders Scenes to SVG documents.
type Backend struct{}

// New creates a Backend.
func New() *Backend {
	return &Backend{}
}

// Render serializes the scene as a standalone SVG document.
func (b *Backend) Render(s *scene.Scene) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g">`, s.Width, s.Height)

	if s.BackgroundColor != "" && s.BackgroundColor != "none" {
		fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s" />`, s.BackgroundColor)
	}

	for _, p := range s.Elements {
		switch p := p.(type) {
		case scene.Circle:
			fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="%g" fill="%s" />`, p.CX, p.CY, p.R, p.Fill)

		case scene.Text:
			fmt.Fprintf(&sb, `<text x="%g" y="%g" font-size="%d" text-anchor="%s"`,
				p.X, p.Y, p.Size, anchorName(p.Anchor))
			if s.TextColor != "" {
				fmt.Fprintf(&sb, ` fill="%s"`, s.TextColor)
			}
			if s.FontFamily != "" {
				fmt.Fprintf(&sb, ` font-family="%s"`, s.FontFamily)
			}
			if p.Bold {
				sb.WriteString(` font-weight="bold"`)
			}
			if p.Rotate != 0 {
				fmt.Fprintf(&sb, ` transform="rotate(%g,%g,%g)"`, p.Rotate, p.X, p.Y)
			}
			fmt.Fprintf(&sb, `>%s</text>`, escapeText(p.Content))

		case scene.Line:
			fmt.Fprintf(&sb, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g" />`,
				p.X1, p.Y1, p.X2, p.Y2, p.Stroke, p.StrokeWidth)

		case scene.Path:
			fill := p.Fill
			if fill == "" {
				fill = "none"
			}
			stroke := p.Stroke
			if stroke == "" {
				stroke = "none"
			}
			fmt.Fprintf(&sb, `<path d="%s" fill="%s" stroke="%s" stroke-width="%g"`,
				p.D, fill, stroke, p.StrokeWidth)
			if p.Opacity != 0 && p.Opacity != 1 {
				fmt.Fprintf(&sb, ` opacity="%g"`, p.Opacity)
			}
			sb.WriteString(` />`)

		case scene.Rect:
			fmt.Fprintf(&sb, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s"`,
				p.X, p.Y, p.Width, p.Height, p.Fill)
			if p.Stroke != "" {
				fmt.Fprintf(&sb, ` stroke="%s"`, p.Stroke)
			}
			if p.StrokeWidth != 0 {
				fmt.Fprintf(&sb, ` stroke-width="%g"`, p.StrokeWidth)
			}
			sb.WriteString(` />`)

		case scene.GroupStart:
			if p.Transform != "" {
				fmt.Fprintf(&sb, `<g transform="%s">`, p.Transform)
			} else {
				sb.WriteString(`<g>`)
			}

		case scene.GroupEnd:
			sb.WriteString(`</g>`)
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

func anchorName(a scene.TextAnchor) string {
	switch a {
	case scene.AnchorMiddle:
		return "middle"
	case scene.AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
