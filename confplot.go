// Package confplot draws covariance confidence ellipses and regression plots
// with gonum/plot.
//
// It offers two families of helpers:
//
//   - ConfidenceEllipse and ScatterWithEllipse draw the n-sigma covariance
//     ellipse of a 2D point cloud, optionally with the scatter, several
//     multipliers and a mean marker;
//   - LinRegPlot and ResidPlot put two sequences into a labeled table and draw
//     a regression plot with a confidence band or a residual plot.
//
// All helpers draw onto a caller-owned surface.Surface and never create or
// save figures themselves. NewSurface and Save cover the common case of a
// gonum plot written to an image file.
//
// # Basic Usage
//
//	s := confplot.NewSurface()
//	colors, _ := ellipse.ParseColors("firebrick", "fuchsia", "blue")
//	if err := confplot.ScatterWithEllipse(x, y, s,
//	    ellipse.WithLevels([]float64{1, 2, 3}, colors),
//	    ellipse.WithLevelLabels(true),
//	    ellipse.WithAxisLabels("height", "weight"),
//	); err != nil {
//	    return err
//	}
//	if err := confplot.Save(s, 4*vg.Inch, 4*vg.Inch, "ellipses.svgz"); err != nil {
//	    return err
//	}
//
// # Package Structure
//
// The wrappers here delegate to the ellipse, seaplot and export packages.
// Use those directly for finer control: building an ellipse without a
// surface (ellipse.New), plotting from a table.Table (seaplot.RegPlotTable),
// or rendering into an io.Writer (export.WriteTo).
package confplot

import (
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/confplot/ellipse"
	"github.com/arloliu/confplot/export"
	"github.com/arloliu/confplot/seaplot"
	"github.com/arloliu/confplot/surface"
)

// ConfidenceEllipse draws the covariance confidence ellipse of x and y onto s
// and returns it.
//
// The ellipse spans ellipse.DefaultNStd standard deviations unless
// ellipse.WithNStd says otherwise. On error s is left untouched.
//
// Example:
//
//	e, err := confplot.ConfidenceEllipse(x, y, s,
//	    ellipse.WithNStd(2),
//	    ellipse.WithEdgeColor(colornames.Firebrick),
//	)
func ConfidenceEllipse(x, y []float64, s surface.Surface, opts ...ellipse.Option) (*ellipse.Ellipse, error) {
	return ellipse.Confidence(x, y, s, opts...)
}

// ScatterWithEllipse draws the points, one confidence ellipse per configured
// multiplier, the mean marker and the axis labels onto s.
func ScatterWithEllipse(x, y []float64, s surface.Surface, opts ...ellipse.ScatterOption) error {
	return ellipse.ScatterWithEllipses(x, y, s, opts...)
}

// LinRegPlot draws a regression plot of y against x onto s, labeling the
// axes xLabel and yLabel. It returns s.
func LinRegPlot(x, y []float64, xLabel, yLabel string, s surface.Surface, opts ...seaplot.Option) (surface.Surface, error) {
	return seaplot.RegPlot(x, y, xLabel, yLabel, s, opts...)
}

// ResidPlot draws the residuals of the regression of y on x onto s. It returns s.
func ResidPlot(x, y []float64, xLabel, yLabel string, s surface.Surface, opts ...seaplot.Option) (surface.Surface, error) {
	return seaplot.ResidPlot(x, y, xLabel, yLabel, s, opts...)
}

// NewSurface creates a surface backed by a new gonum plot.
func NewSurface() *surface.Plot {
	return surface.NewPlot()
}

// Save writes the plot behind s to path; the format follows the extension.
func Save(s *surface.Plot, width, height vg.Length, path string, opts ...export.Option) error {
	if s == nil {
		return surface.ErrNilSurface
	}

	return export.Save(s.Plot(), width, height, path, opts...)
}
