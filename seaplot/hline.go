package seaplot

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/confplot/surface"
)

// HLine is a horizontal reference line spanning the full x range of the plot.
type HLine struct {
	Y         float64
	LineStyle draw.LineStyle
}

var _ surface.Shape = HLine{}

// Plot implements plot.Plotter.
func (h HLine) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	y := trY(h.Y)
	line := []vg.Point{
		{X: trX(plt.X.Min), Y: y},
		{X: trX(plt.X.Max), Y: y},
	}
	c.StrokeLines(h.LineStyle, c.ClipLinesY(line)...)
}

// DataRange implements plot.DataRanger. The line does not widen the x range.
func (h HLine) DataRange() (xmin, xmax, ymin, ymax float64) {
	return math.Inf(1), math.Inf(-1), h.Y, h.Y
}
