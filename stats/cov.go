// Package stats computes the sample statistics of a paired point cloud that
// confidence ellipses are derived from.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrSizeMismatch is returned when x and y have different lengths.
	ErrSizeMismatch = errors.New("stats: x and y must be the same size")
	// ErrInsufficientData is returned when fewer than two points are given.
	ErrInsufficientData = errors.New("stats: at least two points are required")
	// ErrZeroVariance is returned when the correlation is undefined because an axis has no spread.
	ErrZeroVariance = errors.New("stats: zero variance")
	// ErrNonFinite is returned when the input contains NaN or infinite values.
	ErrNonFinite = errors.New("stats: non-finite value")
)

// Cov2 is the sample covariance summary of a paired point cloud.
//
// Variances and covariance use the unbiased n-1 denominator.
type Cov2 struct {
	N     int
	MeanX float64
	MeanY float64
	VarX  float64
	VarY  float64
	CovXY float64
}

// Covariance computes the 2x2 sample covariance summary of x and y.
func Covariance(x, y []float64) (Cov2, error) {
	if len(x) != len(y) {
		return Cov2{}, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrSizeMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return Cov2{}, fmt.Errorf("%w: got %d", ErrInsufficientData, len(x))
	}
	if i := firstNonFinite(x); i >= 0 {
		return Cov2{}, fmt.Errorf("%w: x[%d]=%v", ErrNonFinite, i, x[i])
	}
	if i := firstNonFinite(y); i >= 0 {
		return Cov2{}, fmt.Errorf("%w: y[%d]=%v", ErrNonFinite, i, y[i])
	}

	meanX, varX := stat.MeanVariance(x, nil)
	meanY, varY := stat.MeanVariance(y, nil)

	return Cov2{
		N:     len(x),
		MeanX: meanX,
		MeanY: meanY,
		VarX:  varX,
		VarY:  varY,
		CovXY: stat.Covariance(x, y, nil),
	}, nil
}

// StdX returns the sample standard deviation of x.
func (c Cov2) StdX() float64 { return math.Sqrt(c.VarX) }

// StdY returns the sample standard deviation of y.
func (c Cov2) StdY() float64 { return math.Sqrt(c.VarY) }

// Pearson returns the Pearson correlation coefficient cov(x,y)/sqrt(var(x)*var(y)),
// clamped to [-1, 1] to absorb rounding error.
func (c Cov2) Pearson() (float64, error) {
	if c.VarX == 0 || c.VarY == 0 {
		return 0, fmt.Errorf("%w: var(x)=%v, var(y)=%v", ErrZeroVariance, c.VarX, c.VarY)
	}

	p := c.CovXY / math.Sqrt(c.VarX*c.VarY)

	return math.Max(-1, math.Min(1, p)), nil
}

// Matrix returns the covariance matrix [[VarX CovXY] [CovXY VarY]].
func (c Cov2) Matrix() *mat.SymDense {
	return mat.NewSymDense(2, []float64{c.VarX, c.CovXY, c.CovXY, c.VarY})
}

// Correlation returns the correlation matrix [[1 p] [p 1]].
func (c Cov2) Correlation() (*mat.SymDense, error) {
	p, err := c.Pearson()
	if err != nil {
		return nil, err
	}

	return mat.NewSymDense(2, []float64{1, p, p, 1}), nil
}

// CorrelationRadii returns the square roots of the two eigenvalues of the
// correlation matrix, sqrt(1+p) and sqrt(1-p). The closed form only holds
// for a 2x2 correlation matrix.
func (c Cov2) CorrelationRadii() (rx, ry float64, err error) {
	p, err := c.Pearson()
	if err != nil {
		return 0, 0, err
	}

	return math.Sqrt(1 + p), math.Sqrt(1 - p), nil
}

func firstNonFinite(v []float64) int {
	for i, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return i
		}
	}

	return -1
}
