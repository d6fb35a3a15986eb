package surface

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/confplot/geom"
)

func newLine(t *testing.T, pts plotter.XYs) *plotter.Line {
	t.Helper()
	l, err := plotter.NewLine(pts)
	require.NoError(t, err)

	return l
}

func TestNormalizeGlyph(t *testing.T) {
	g := NormalizeGlyph(draw.GlyphStyle{})
	require.NotNil(t, g.Shape)
	require.Equal(t, plotter.DefaultGlyphStyle.Radius, g.Radius)
	require.Equal(t, color.Black, g.Color)

	red := color.RGBA{R: 255, A: 255}
	g = NormalizeGlyph(draw.GlyphStyle{Color: red, Radius: vg.Points(7), Shape: draw.SquareGlyph{}})
	require.Equal(t, red, g.Color)
	require.Equal(t, vg.Points(7), g.Radius)
	require.IsType(t, draw.SquareGlyph{}, g.Shape)
}

func TestMarkerGlyph(t *testing.T) {
	g := MarkerGlyph(nil)
	require.IsType(t, draw.CrossGlyph{}, g.Shape)
	require.Equal(t, color.Black, g.Color)
}

func TestPlot(t *testing.T) {
	s := NewPlot()
	p := s.Plot()

	line := newLine(t, plotter.XYs{{X: -2, Y: 1}, {X: 4, Y: 9}})
	require.Same(t, line, s.AddShape(line))

	sc, err := s.AddScatter(plotter.XYs{{X: 0, Y: 0}, {X: 10, Y: -5}}, ScatterStyle{Label: "points"})
	require.NoError(t, err)
	require.Len(t, sc.XYs, 2)
	require.NotNil(t, sc.GlyphStyle.Shape)

	require.NoError(t, s.AddMarker(1, 1, MarkerGlyph(nil)))

	s.SetXLabel("height")
	s.SetYLabel("weight")
	require.Equal(t, "height", p.X.Label.Text)
	require.Equal(t, "weight", p.Y.Label.Text)

	require.Equal(t, -2.0, p.X.Min)
	require.Equal(t, 10.0, p.X.Max)
	require.Equal(t, -5.0, p.Y.Min)
	require.Equal(t, 9.0, p.Y.Max)

	require.Equal(t, geom.Identity(), s.DataTransform())
}

func TestPlot_ScatterRejectsNaN(t *testing.T) {
	s := NewPlot()
	_, err := s.AddScatter(plotter.XYs{{X: math.NaN(), Y: 1}}, ScatterStyle{})
	require.Error(t, err)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	require.Equal(t, geom.Identity(), r.DataTransform())

	line := newLine(t, plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	_, err := r.AddScatter(plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 4}}, ScatterStyle{Label: "p"})
	require.NoError(t, err)
	r.AddShape(line)
	r.AddShape(line)
	require.NoError(t, r.AddMarker(2, 3, MarkerGlyph(nil)))
	r.SetXLabel("x")
	r.SetYLabel("y")

	require.Equal(t, []OpKind{OpScatter, OpShape, OpShape, OpMarker, OpXLabel, OpYLabel}, r.Kinds())
	require.Equal(t, 2, r.Count(OpShape))
	require.Equal(t, 1, r.Count(OpScatter))
	require.Len(t, r.Shapes(), 2)
	require.Equal(t, 2.0, r.Ops[3].Marker.X)
	require.Equal(t, "p", r.Ops[0].Style.Label)
	require.Len(t, r.Ops[0].Points, 2)

	text, ok := r.Label(OpXLabel)
	require.True(t, ok)
	require.Equal(t, "x", text)

	r.Reset()
	require.Empty(t, r.Ops)
	_, ok = r.Label(OpYLabel)
	require.False(t, ok)
}

func TestOpKind_String(t *testing.T) {
	require.Equal(t, "shape", OpShape.String())
	require.Equal(t, "marker", OpMarker.String())
	require.Equal(t, "unknown", OpKind(99).String())
}
