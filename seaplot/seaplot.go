package seaplot

import (
	"fmt"
	"image/color"
	"slices"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/confplot/internal/options"
	"github.com/arloliu/confplot/regression"
	"github.com/arloliu/confplot/surface"
	"github.com/arloliu/confplot/table"
)

// RegPlot puts x and y into a table with columns xLabel and yLabel and draws
// it with RegPlotTable. It returns s.
func RegPlot(x, y []float64, xLabel, yLabel string, s surface.Surface, opts ...Option) (surface.Surface, error) {
	tbl, err := table.FromXY(x, y, xLabel, yLabel)
	if err != nil {
		return nil, err
	}

	return RegPlotTable(tbl, xLabel, yLabel, s, opts...)
}

// ResidPlot puts x and y into a table with columns xLabel and yLabel and draws
// it with ResidPlotTable. It returns s.
func ResidPlot(x, y []float64, xLabel, yLabel string, s surface.Surface, opts ...Option) (surface.Surface, error) {
	tbl, err := table.FromXY(x, y, xLabel, yLabel)
	if err != nil {
		return nil, err
	}

	return ResidPlotTable(tbl, xLabel, yLabel, s, opts...)
}

// RegPlotTable draws the xCol/yCol columns of tbl as a scatter, the fitted
// curve over the x range of the data and the confidence band of the mean
// prediction, then labels the axes with the column names. It returns s.
//
// The band is omitted when the fit interpolates every point (as many points
// as parameters).
//
// Every layer is built before the first one is added, so an error leaves s
// untouched.
func RegPlotTable(tbl *table.Table, xCol, yCol string, s surface.Surface, opts ...Option) (surface.Surface, error) {
	if s == nil {
		return nil, surface.ErrNilSurface
	}

	cfg, err := options.Build(defaultConfig(), opts...)
	if err != nil {
		return nil, err
	}

	xy, err := tbl.DropNonFinite().XY(xCol, yCol)
	if err != nil {
		return nil, err
	}

	var line *plotter.Line
	var band *plotter.Polygon
	if cfg.FitReg {
		m, err := regression.Fit(xy.X, xy.Y, cfg.fitOptions()...)
		if err != nil {
			return nil, err
		}

		line, band, err = fitLayers(m, xy.X, cfg)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Scatter {
		if _, err := s.AddScatter(xy, scatterStyle(cfg)); err != nil {
			return nil, err
		}
	}
	if band != nil {
		s.AddShape(band)
	}
	if line != nil {
		s.AddShape(line)
	}
	s.SetXLabel(xCol)
	s.SetYLabel(yCol)

	return s, nil
}

// ResidPlotTable fits yCol on xCol, draws the residuals against xCol and a
// dotted reference line at zero, then labels the axes with the column names.
// It returns s.
func ResidPlotTable(tbl *table.Table, xCol, yCol string, s surface.Surface, opts ...Option) (surface.Surface, error) {
	if s == nil {
		return nil, surface.ErrNilSurface
	}

	cfg, err := options.Build(defaultConfig(), opts...)
	if err != nil {
		return nil, err
	}

	xy, err := tbl.DropNonFinite().XY(xCol, yCol)
	if err != nil {
		return nil, err
	}

	m, err := regression.Fit(xy.X, xy.Y, cfg.fitOptions()...)
	if err != nil {
		return nil, err
	}
	resid, err := m.Residuals(xy.X, xy.Y)
	if err != nil {
		return nil, err
	}

	if cfg.Scatter {
		if _, err := s.AddScatter(table.XY{X: xy.X, Y: resid}, scatterStyle(cfg)); err != nil {
			return nil, err
		}
	}
	s.AddShape(HLine{
		Y: 0,
		LineStyle: draw.LineStyle{
			Color:  color.Gray{Y: 0x33},
			Width:  vg.Points(1),
			Dashes: []vg.Length{vg.Points(1), vg.Points(2)},
		},
	})
	s.SetXLabel(xCol)
	s.SetYLabel(yCol)

	return s, nil
}

func scatterStyle(cfg Config) surface.ScatterStyle {
	return surface.ScatterStyle{
		Glyph: draw.GlyphStyle{Color: cfg.Color, Shape: draw.CircleGlyph{}},
		Label: cfg.Label,
	}
}

// fitLayers builds the fitted curve and, when cfg.CI > 0 and the fit leaves
// residual degrees of freedom, the band polygon.
func fitLayers(m *regression.Model, x []float64, cfg Config) (*plotter.Line, *plotter.Polygon, error) {
	grid := regression.Grid(x, cfg.GridSize)
	fitted := m.PredictAll(grid)
	curve := make(plotter.XYs, len(grid))
	for i, gx := range grid {
		curve[i].X = gx
		curve[i].Y = fitted[i]
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, nil, fmt.Errorf("seaplot: fit line: %w", err)
	}
	line.LineStyle.Color = cfg.Color
	line.LineStyle.Width = vg.Points(1.5)

	// A fit with no residual degrees of freedom has no band.
	if cfg.CI == 0 || m.DOF < 1 {
		return line, nil, nil
	}

	lower, upper, err := m.Band(grid, cfg.CI)
	if err != nil {
		return nil, nil, err
	}

	outline := make(plotter.XYs, 0, 2*len(grid))
	for i, gx := range grid {
		outline = append(outline, plotter.XY{X: gx, Y: upper[i]})
	}
	for i, gx := range slices.Backward(grid) {
		outline = append(outline, plotter.XY{X: gx, Y: lower[i]})
	}

	band, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, nil, fmt.Errorf("seaplot: confidence band: %w", err)
	}
	band.Color = withAlpha(cfg.Color, bandAlpha)
	band.LineStyle.Width = 0

	return line, band, nil
}

func withAlpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		return nil
	}

	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(alpha*float64(n.A) + 0.5)

	return n
}
