package plot

import (
	"fmt"
	"strings"

	"github.com/wesen/termplot/pkg/scene"
)

// LineChart plots one series as a stroked path.
type LineChart struct {
	X, Y           []float64
	Color          string
	StrokeWidth    float64
	Title          string
	XLabel, YLabel string
	Width, Height  float64
}

// Scene builds the drawing list for the chart.
func (ch *LineChart) Scene() *scene.Scene {
	l := NewLayout(dataRange(ch.X), dataRange(ch.Y))
	l.Title = ch.Title
	l.XLabel = ch.XLabel
	l.YLabel = ch.YLabel
	l.Width = ch.Width
	l.Height = ch.Height
	s, c := buildFrame(l)

	if len(ch.X) >= 2 {
		var d strings.Builder
		for i := range ch.X {
			cmd := 'L'
			if i == 0 {
				cmd = 'M'
			}
			fmt.Fprintf(&d, "%c %g %g ", cmd, c.mapX(ch.X[i]), c.mapY(ch.Y[i]))
		}
		s.Add(scene.Path{
			D:           d.String(),
			Stroke:      defaultColor(ch.Color),
			StrokeWidth: defaultWidth(ch.StrokeWidth),
		})
	}
	return s
}

// ScatterChart plots one series as filled circles.
type ScatterChart struct {
	X, Y           []float64
	Color          string
	R              float64 // point radius in scene px; 0 means 3
	Title          string
	XLabel, YLabel string
	Width, Height  float64
}

// Scene builds the drawing list for the chart.
func (ch *ScatterChart) Scene() *scene.Scene {
	l := NewLayout(dataRange(ch.X), dataRange(ch.Y))
	l.Title = ch.Title
	l.XLabel = ch.XLabel
	l.YLabel = ch.YLabel
	l.Width = ch.Width
	l.Height = ch.Height
	s, c := buildFrame(l)

	r := ch.R
	if r == 0 {
		r = 3
	}
	for i := range ch.X {
		s.Add(scene.Circle{
			CX:   c.mapX(ch.X[i]),
			CY:   c.mapY(ch.Y[i]),
			R:    r,
			Fill: defaultColor(ch.Color),
		})
	}
	return s
}

// BarChart plots labelled values as vertical bars with rotated category
// labels on the x axis. Bar group i is centered on x = i+1.
type BarChart struct {
	Labels        []string
	Values        []float64
	Color         string
	BarWidth      float64 // in category units; 0 means 0.6
	Title         string
	YLabel        string
	Width, Height float64
}

// Scene builds the drawing list for the chart.
func (ch *BarChart) Scene() *scene.Scene {
	yMax := 0.0
	for _, v := range ch.Values {
		yMax = max(yMax, v)
	}
	l := NewLayout([2]float64{0, float64(len(ch.Values)) + 1}, [2]float64{0, yMax * 1.05})
	l.Title = ch.Title
	l.YLabel = ch.YLabel
	l.Width = ch.Width
	l.Height = ch.Height
	l.XCategories = ch.Labels
	s, c := buildFrame(l)

	barWidth := ch.BarWidth
	if barWidth == 0 {
		barWidth = 0.6
	}
	for i, v := range ch.Values {
		x := float64(i + 1)
		x0 := c.mapX(x - barWidth/2)
		x1 := c.mapX(x + barWidth/2)
		y0 := c.mapY(v)
		y1 := c.mapY(0)
		s.Add(scene.Rect{
			X: x0, Y: y0,
			Width: x1 - x0, Height: y1 - y0,
			Fill: defaultColor(ch.Color),
		})
	}
	return s
}

func dataRange(vs []float64) [2]float64 {
	if len(vs) == 0 {
		return [2]float64{0, 1}
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return [2]float64{lo, hi}
}

func defaultColor(c string) string {
	if c == "" {
		return "steelblue"
	}
	return c
}

func defaultWidth(w float64) float64 {
	if w == 0 {
		return 2
	}
	return w
}
