package regression

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Model is a fitted least-squares model with its goodness-of-fit metrics.
type Model struct {
	// Type is the model family.
	Type ModelType
	// Order is the polynomial order; 1 for LogX.
	Order int
	// Coefficients holds the fitted parameters, intercept first.
	Coefficients []float64
	// RSquared is the coefficient of determination.
	RSquared float64
	// RMSE is the root mean square error of the fit.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator evaluates the model.
	Estimator Estimator
	// N is the number of observations.
	N int
	// DOF is the residual degrees of freedom, N minus the number of parameters.
	DOF int
	// Sigma is the residual standard error; NaN when DOF is zero.
	Sigma float64

	// basis and scaled describe the fit in the standardized regressor;
	// xtxInv is (XᵀX)⁻¹ of that design matrix.
	basis  basis
	scaled []float64
	xtxInv *mat.SymDense
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Predict returns the fitted value at x.
//
// It evaluates the fit in the standardized regressor, which stays accurate
// when x is far from zero. Estimator works on the raw Coefficients.
func (m *Model) Predict(x float64) float64 {
	return m.basis.eval(m.scaled, x)
}

// PredictAll returns the fitted values at every x.
func (m *Model) PredictAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.Predict(x)
	}

	return out
}

// Residuals returns y[i] - Predict(x[i]).
func (m *Model) Residuals(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrSizeMismatch, len(x), len(y))
	}

	res := make([]float64, len(x))
	for i := range x {
		res[i] = y[i] - m.Predict(x[i])
	}

	return res, nil
}

// StdErr returns the standard error of the mean prediction at x.
func (m *Model) StdErr(x float64) float64 {
	d := mat.NewVecDense(m.basis.p, m.basis.row(x, nil))
	return m.Sigma * math.Sqrt(mat.Inner(d, m.xtxInv, d))
}

// Band returns the lower and upper bounds of the level% confidence interval
// of the mean prediction at every x. level is a percentage in (0, 100).
func (m *Model) Band(xs []float64, level float64) (lower, upper []float64, err error) {
	if !(level > 0 && level < 100) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidLevel, level)
	}
	if m.DOF < 1 {
		return nil, nil, fmt.Errorf("%w: no residual degrees of freedom", ErrInsufficientData)
	}

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(m.DOF)}.Quantile(0.5 + level/200)

	lower = make([]float64, len(xs))
	upper = make([]float64, len(xs))
	for i, x := range xs {
		y := m.Predict(x)
		half := t * m.StdErr(x)
		lower[i] = y - half
		upper[i] = y + half
	}

	return lower, upper, nil
}

func formula(mt ModelType, coeffs []float64) string {
	if mt == ModelTypeLogX {
		return fmt.Sprintf("y = %.4g + %.4g*ln(x)", coeffs[0], coeffs[1])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "y = %.4g", coeffs[0])
	for i := 1; i < len(coeffs); i++ {
		switch i {
		case 1:
			fmt.Fprintf(&sb, " + %.4g*x", coeffs[i])
		default:
			fmt.Fprintf(&sb, " + %.4g*x^%d", coeffs[i], i)
		}
	}

	return sb.String()
}
