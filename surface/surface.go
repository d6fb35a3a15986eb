// Package surface defines the drawing surface that confplot helpers draw onto.
//
// A Surface is always supplied by the caller. Helpers add layers to it and
// never create, replace or discard it. Plot adapts a gonum *plot.Plot and
// Recorder keeps every call in memory for inspection.
package surface

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/confplot/geom"
)

// ErrNilSurface is returned by helpers that are handed a nil Surface.
var ErrNilSurface = errors.New("surface: nil surface")

// Shape is a drawable layer with a known data extent.
type Shape interface {
	plot.Plotter
	plot.DataRanger
}

// Labeled is implemented by shapes that want a legend entry.
// An empty label means no entry.
type Labeled interface {
	Label() string
}

// ScatterStyle styles a scatter layer.
type ScatterStyle struct {
	// Glyph is the marker style. Zero fields fall back to plotter.DefaultGlyphStyle.
	Glyph draw.GlyphStyle
	// Label is the legend entry; empty means none.
	Label string
}

// Surface accumulates drawn layers.
//
// Implementations are not safe for concurrent mutation.
type Surface interface {
	// AddShape attaches s and returns it.
	AddShape(s Shape) Shape
	// AddScatter adds a scatter layer of xys.
	AddScatter(xys plotter.XYer, style ScatterStyle) (*plotter.Scatter, error)
	// AddMarker adds a single point marker at (x, y).
	AddMarker(x, y float64, glyph draw.GlyphStyle) error
	// SetXLabel sets the x axis label.
	SetXLabel(text string)
	// SetYLabel sets the y axis label.
	SetYLabel(text string)
	// DataTransform maps data coordinates into the surface's coordinate
	// space. Shapes compose their own placement with it.
	DataTransform() geom.Affine
}

// NormalizeGlyph fills zero fields of g from plotter.DefaultGlyphStyle.
func NormalizeGlyph(g draw.GlyphStyle) draw.GlyphStyle {
	if g.Shape == nil {
		g.Shape = plotter.DefaultGlyphStyle.Shape
	}
	if g.Radius == 0 {
		g.Radius = plotter.DefaultGlyphStyle.Radius
	}
	if g.Color == nil {
		g.Color = color.Black
	}

	return g
}

// MarkerGlyph returns the cross glyph used for point markers such as a sample mean.
func MarkerGlyph(c color.Color) draw.GlyphStyle {
	return NormalizeGlyph(draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(4),
		Shape:  draw.CrossGlyph{},
	})
}
