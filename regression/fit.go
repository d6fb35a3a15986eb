package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/confplot/internal/options"
)

var (
	// ErrSizeMismatch is returned when x and y differ in length.
	ErrSizeMismatch = errors.New("regression: mismatched data lengths")
	// ErrInsufficientData is returned when there are fewer points than model parameters.
	ErrInsufficientData = errors.New("regression: insufficient data points")
	// ErrSingular is returned when the design matrix has no unique least-squares solution.
	ErrSingular = errors.New("regression: singular design matrix")
	// ErrNonPositiveX is returned when a log-x fit sees x <= 0.
	ErrNonPositiveX = errors.New("regression: log x requires positive x")
	// ErrNonFinite is returned for NaN or infinite inputs.
	ErrNonFinite = errors.New("regression: non-finite value")
	// ErrInvalidOrder is returned for a polynomial order below 1.
	ErrInvalidOrder = errors.New("regression: order must be at least 1")
	// ErrConflictingOptions is returned when log x is combined with order > 1.
	ErrConflictingOptions = errors.New("regression: log x and polynomial order are mutually exclusive")
	// ErrInvalidLevel is returned for a confidence level outside (0, 100).
	ErrInvalidLevel = errors.New("regression: confidence level must be in (0, 100)")
)

// maxCondition bounds the condition number of the standardized XᵀX accepted
// as non-singular.
const maxCondition = 1e14

// Fit fits y on x by ordinary least squares.
//
// The default model is a straight line. WithOrder selects a polynomial and
// WithLogX fits against ln(x).
//
// Example:
//
//	m, err := regression.Fit([]float64{1, 2, 3}, []float64{2, 4, 6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Estimator.Estimate(4)) // 8
func Fit(x, y []float64, opts ...FitOption) (*Model, error) {
	cfg, err := options.Build(defaultFitConfig(), opts...)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x vs %d y", ErrSizeMismatch, len(x), len(y))
	}
	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return nil, fmt.Errorf("%w: row %d", ErrNonFinite, i)
		}
		if cfg.LogX && x[i] <= 0 {
			return nil, fmt.Errorf("%w: x[%d]=%v", ErrNonPositiveX, i, x[i])
		}
	}

	p := cfg.params()
	n := len(x)
	if n < p {
		return nil, fmt.Errorf("%w: %d points for %d parameters", ErrInsufficientData, n, p)
	}

	mt := cfg.modelType()
	b, err := newBasis(mt, p, x)
	if err != nil {
		return nil, err
	}

	design := mat.NewDense(n, p, nil)
	row := make([]float64, p)
	for i := range x {
		design.SetRow(i, b.row(x[i], row))
	}

	// Normal equations on the standardized regressor: (XᵀX) g = Xᵀy
	var xtx mat.SymDense
	xtx.SymOuterK(1, design.T())

	var chol mat.Cholesky
	if ok := chol.Factorize(&xtx); !ok || chol.Cond() > maxCondition {
		return nil, ErrSingular
	}

	var xty mat.VecDense
	xty.MulVec(design.T(), mat.NewVecDense(n, y))

	var g mat.VecDense
	if err := chol.SolveVecTo(&g, &xty); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingular, err)
	}

	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingular, err)
	}

	scaled := make([]float64, p)
	for i := range scaled {
		scaled[i] = g.AtVec(i)
	}
	coeffs := b.rawCoefficients(scaled)

	var estimator Estimator
	order := 1
	if mt == ModelTypeLogX {
		estimator = NewLogXEstimator(coeffs[0], coeffs[1])
	} else {
		estimator = NewPolynomialEstimator(coeffs...)
		order = cfg.Order
	}

	predicted := make([]float64, n)
	for i := range x {
		predicted[i] = b.eval(scaled, x[i])
	}

	dof := n - p
	sigma := math.NaN()
	if dof > 0 {
		sigma = math.Sqrt(sumSquaredResiduals(y, predicted) / float64(dof))
	}

	return &Model{
		Type:         mt,
		Order:        order,
		Coefficients: coeffs,
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      formula(mt, coeffs),
		Estimator:    estimator,
		N:            n,
		DOF:          dof,
		Sigma:        sigma,
		basis:        b,
		scaled:       scaled,
		xtxInv:       &inv,
	}, nil
}

// Grid returns n evenly spaced values spanning [min(x), max(x)].
// It returns nil for empty x or n < 1.
func Grid(x []float64, n int) []float64 {
	if len(x) == 0 || n < 1 {
		return nil
	}

	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if n == 1 {
		return []float64{lo}
	}

	grid := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	grid[n-1] = hi

	return grid
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
