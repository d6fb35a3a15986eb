package surface

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/confplot/geom"
)

// Plot is a Surface backed by a gonum *plot.Plot.
//
// gonum maps data coordinates to the canvas at draw time, so the data
// transform of a Plot is the identity.
type Plot struct {
	p *plot.Plot
}

var _ Surface = (*Plot)(nil)

// New wraps an existing plot. The caller keeps ownership of p.
func New(p *plot.Plot) *Plot {
	return &Plot{p: p}
}

// NewPlot creates a surface on a fresh gonum plot.
func NewPlot() *Plot {
	return New(plot.New())
}

// Plot returns the wrapped gonum plot.
func (s *Plot) Plot() *plot.Plot {
	return s.p
}

// AddShape implements Surface.
func (s *Plot) AddShape(shape Shape) Shape {
	s.p.Add(shape)
	if l, ok := shape.(Labeled); ok && l.Label() != "" {
		if th, ok := shape.(plot.Thumbnailer); ok {
			s.p.Legend.Add(l.Label(), th)
		}
	}

	return shape
}

// AddScatter implements Surface.
func (s *Plot) AddScatter(xys plotter.XYer, style ScatterStyle) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("surface: scatter: %w", err)
	}
	sc.GlyphStyle = NormalizeGlyph(style.Glyph)

	s.p.Add(sc)
	if style.Label != "" {
		s.p.Legend.Add(style.Label, sc)
	}

	return sc, nil
}

// AddMarker implements Surface.
func (s *Plot) AddMarker(x, y float64, glyph draw.GlyphStyle) error {
	sc, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return fmt.Errorf("surface: marker: %w", err)
	}
	sc.GlyphStyle = NormalizeGlyph(glyph)
	s.p.Add(sc)

	return nil
}

// SetXLabel implements Surface.
func (s *Plot) SetXLabel(text string) {
	s.p.X.Label.Text = text
}

// SetYLabel implements Surface.
func (s *Plot) SetYLabel(text string) {
	s.p.Y.Label.Text = text
}

// DataTransform implements Surface.
func (s *Plot) DataTransform() geom.Affine {
	return geom.Identity()
}
