// Package seaplot draws regression and residual plots onto a surface.
//
// RegPlot and ResidPlot take two raw columns and their labels, put them in a
// two-column table and hand it to RegPlotTable or ResidPlotTable. They add
// nothing else; callers holding a table.Table may call the table variants
// directly.
//
//	s := surface.NewPlot()
//	if _, err := seaplot.RegPlot(x, y, "dose", "response", s); err != nil {
//	    return err
//	}
//	if _, err := seaplot.ResidPlot(x, y, "dose", "response", residSurface); err != nil {
//	    return err
//	}
//
// Rows holding NaN or infinite values are dropped before fitting.
package seaplot
