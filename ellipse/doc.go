// Package ellipse draws covariance confidence ellipses of 2D point clouds.
//
// The ellipse for a sample (x, y) is derived from the sample covariance:
// the Pearson correlation p gives a unit ellipse with radii sqrt(1+p) and
// sqrt(1-p), which is rotated by 45 degrees, scaled by n standard deviations
// of each axis and moved to the sample mean.
//
// # Single ellipse
//
//	s := surface.NewPlot()
//	e, err := ellipse.Confidence(x, y, s,
//	    ellipse.WithNStd(2),
//	    ellipse.WithEdgeColor(colornames.Firebrick),
//	)
//
// # Scatter with several levels
//
//	colors, _ := ellipse.ParseColors("firebrick", "fuchsia", "blue")
//	err := ellipse.ScatterWithEllipses(x, y, s,
//	    ellipse.WithLevels([]float64{1, 2, 3}, colors),
//	    ellipse.WithLevelLabels(true),
//	    ellipse.WithAxisLabels("x", "y"),
//	)
//
// The radii shortcut is the closed-form eigen decomposition of a 2x2
// correlation matrix. It does not extend to weighted samples or more than two
// dimensions.
package ellipse
