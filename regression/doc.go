// Package regression fits the least-squares models behind the regression and
// residual plots.
//
// Two model families are supported:
//
//   - Polynomial: y = b0 + b1*x + ... + bk*x^k (k = 1 is the straight line)
//   - LogX: y = b0 + b1*ln(x)
//
// A fitted Model predicts values, computes residuals and returns the
// confidence band of the mean prediction, which the regression plot shades.
//
// # Usage
//
//	m, err := regression.Fit(x, y)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.Formula, m.RSquared)
//
//	grid := regression.Grid(x, 100)
//	lower, upper, err := m.Band(grid, 95)
//
// Fit a quadratic instead:
//
//	m, err := regression.Fit(x, y, regression.WithOrder(2))
//
// Fit works on the standardized regressor u = (x - mean) / sd (ln x for LogX)
// so that data far from zero stays well conditioned. Model.Predict and
// Model.PredictAll evaluate in u; Coefficients and Estimator are converted
// back to x.
//
// Estimators can also be built directly from known coefficients:
//
//	e, err := regression.NewEstimator("linear", []float64{1, 2})
//	mt := regression.ModelTypeFromString("logx")
//
// # Confidence band
//
// The band at x0 is ŷ(x0) ± t * s * sqrt(d(x0)ᵀ (XᵀX)⁻¹ d(x0)), where d is the
// design row, s the residual standard error and t the two-sided Student's t
// quantile with n-p degrees of freedom.
package regression
