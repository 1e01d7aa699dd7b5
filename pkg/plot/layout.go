// Package plot provides small declarative chart builders that produce
// scene.Scenes for any backend to render: a shared axis/grid/title frame
// plus line, scatter and bar charts.
package plot

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/wesen/termplot/pkg/scene"
)

// Theme colors for the chart frame.
const (
	axisColor = "#aaaaaa"
	gridColor = "#333333"
)

const (
	fontSize  = 14.0
	tickSpace = 20.0
	tickLen   = 5.0
)

// Layout describes the chart frame around the data area.
type Layout struct {
	Width, Height  float64 // scene size; 0 means auto
	XRange, YRange [2]float64
	Title          string
	XLabel, YLabel string
	XCategories    []string // category labels replacing numeric x ticks
	ShowGrid       bool
}

// NewLayout creates a layout for the given data ranges with grid lines on.
func NewLayout(xRange, yRange [2]float64) *Layout {
	return &Layout{XRange: xRange, YRange: yRange, ShowGrid: true}
}

// computed is the resolved geometry of a layout: final scene size, margins
// and data-space to scene-space mapping.
type computed struct {
	width, height float64
	marginTop     float64
	marginBottom  float64
	marginLeft    float64
	marginRight   float64

	xRange, yRange [2]float64
	xTicks, yTicks int
	xCategories    []string
}

func computeLayout(l *Layout) *computed {
	marginTop := fontSize * 0.5
	if l.Title != "" {
		marginTop = fontSize * 2.0
	}
	marginBottom := fontSize*2.0 + tickSpace
	marginLeft := fontSize*2.0 + tickSpace
	marginRight := fontSize

	width := l.Width
	if width == 0 {
		width = marginLeft + 400.0 + marginRight
	}
	height := l.Height
	if height == 0 {
		height = marginTop + 300.0 + marginBottom
	}

	xTicks := AutoTickCount(width)
	yTicks := AutoTickCount(height)

	c := &computed{
		width:        width,
		height:       height,
		marginTop:    marginTop,
		marginBottom: marginBottom,
		marginLeft:   marginLeft,
		marginRight:  marginRight,
		xTicks:       xTicks,
		yTicks:       yTicks,
		xCategories:  l.XCategories,
	}
	c.xRange[0], c.xRange[1] = NiceRange(l.XRange[0], l.XRange[1], xTicks)
	c.yRange[0], c.yRange[1] = NiceRange(l.YRange[0], l.YRange[1], yTicks)

	// Widen the left margin when y tick labels are longer than the
	// default tick space allows (~half a font-size per character cell).
	maxLabel := 0
	for _, ty := range GenerateTicks(c.yRange[0], c.yRange[1], yTicks) {
		maxLabel = max(maxLabel, runewidth.StringWidth(formatTick(ty)))
	}
	if need := float64(maxLabel) * fontSize * 0.5; need > tickSpace {
		c.marginLeft += need - tickSpace
	}
	return c
}

func (c *computed) plotWidth() float64 {
	return c.width - c.marginLeft - c.marginRight
}

func (c *computed) plotHeight() float64 {
	return c.height - c.marginTop - c.marginBottom
}

func (c *computed) mapX(x float64) float64 {
	return c.marginLeft + (x-c.xRange[0])/(c.xRange[1]-c.xRange[0])*c.plotWidth()
}

func (c *computed) mapY(y float64) float64 {
	return c.height - c.marginBottom - (y-c.yRange[0])/(c.yRange[1]-c.yRange[0])*c.plotHeight()
}

func formatTick(v float64) string {
	return fmt.Sprintf("%g", v)
}

// buildFrame creates the Scene and emits axes, grid, ticks and title.
func buildFrame(l *Layout) (*scene.Scene, *computed) {
	c := computeLayout(l)
	s := scene.New(c.width, c.height)

	// X axis.
	s.Add(scene.Line{
		X1: c.marginLeft, Y1: c.height - c.marginBottom,
		X2: c.width - c.marginRight, Y2: c.height - c.marginBottom,
		Stroke: axisColor, StrokeWidth: 1,
	})
	// Y axis.
	s.Add(scene.Line{
		X1: c.marginLeft, Y1: c.marginTop,
		X2: c.marginLeft, Y2: c.height - c.marginBottom,
		Stroke: axisColor, StrokeWidth: 1,
	})

	xTicks := GenerateTicks(c.xRange[0], c.xRange[1], c.xTicks)
	yTicks := GenerateTicks(c.yRange[0], c.yRange[1], c.yTicks)

	if l.ShowGrid {
		// The first tick of each axis sits on the axis line; skip it.
		if len(c.xCategories) == 0 {
			for i, tx := range xTicks {
				if i == 0 {
					continue
				}
				x := c.mapX(tx)
				s.Add(scene.Line{
					X1: x, Y1: c.marginTop,
					X2: x, Y2: c.height - c.marginBottom,
					Stroke: gridColor, StrokeWidth: 1,
				})
			}
		}
		for i, ty := range yTicks {
			if i == 0 {
				continue
			}
			y := c.mapY(ty)
			s.Add(scene.Line{
				X1: c.marginLeft, Y1: y,
				X2: c.width - c.marginRight, Y2: y,
				Stroke: gridColor, StrokeWidth: 1,
			})
		}
	}

	// X ticks: category labels (rotated, one per category slot) or
	// numeric values.
	if len(c.xCategories) > 0 {
		for i, label := range c.xCategories {
			x := c.mapX(float64(i + 1))
			s.Add(scene.Line{
				X1: x, Y1: c.height - c.marginBottom,
				X2: x, Y2: c.height - c.marginBottom + tickLen,
				Stroke: axisColor, StrokeWidth: 1,
			})
			s.Add(scene.Text{
				X: x, Y: c.height - c.marginBottom + tickSpace*0.75,
				Content: label, Size: fontSize,
				Anchor: scene.AnchorEnd, Rotate: -45,
			})
		}
	} else {
		for _, tx := range xTicks {
			x := c.mapX(tx)
			s.Add(scene.Line{
				X1: x, Y1: c.height - c.marginBottom,
				X2: x, Y2: c.height - c.marginBottom + tickLen,
				Stroke: axisColor, StrokeWidth: 1,
			})
			s.Add(scene.Text{
				X: x, Y: c.height - c.marginBottom + tickSpace*0.75,
				Content: formatTick(tx), Size: fontSize,
				Anchor: scene.AnchorMiddle,
			})
		}
	}

	// Y ticks.
	for _, ty := range yTicks {
		y := c.mapY(ty)
		s.Add(scene.Line{
			X1: c.marginLeft - tickLen, Y1: y,
			X2: c.marginLeft, Y2: y,
			Stroke: axisColor, StrokeWidth: 1,
		})
		s.Add(scene.Text{
			X: c.marginLeft - tickLen*2, Y: y + fontSize*0.35,
			Content: formatTick(ty), Size: fontSize,
			Anchor: scene.AnchorEnd,
		})
	}

	if l.Title != "" {
		s.Add(scene.Text{
			X: c.width / 2, Y: c.marginTop * 0.75,
			Content: l.Title, Size: fontSize + 2,
			Anchor: scene.AnchorMiddle, Bold: true,
		})
	}
	if l.XLabel != "" {
		s.Add(scene.Text{
			X: c.marginLeft + c.plotWidth()/2, Y: c.height - fontSize*0.25,
			Content: l.XLabel, Size: fontSize,
			Anchor: scene.AnchorMiddle,
		})
	}
	if l.YLabel != "" {
		s.Add(scene.Text{
			X: fontSize, Y: c.marginTop + c.plotHeight()/2,
			Content: l.YLabel, Size: fontSize,
			Anchor: scene.AnchorMiddle, Rotate: -90,
		})
	}

	return s, c
}
