package stats

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}

	c, err := Covariance(x, y)
	require.NoError(t, err)
	require.Equal(t, 5, c.N)
	require.InDelta(t, 3.0, c.MeanX, 1e-12)
	require.InDelta(t, 4.0, c.MeanY, 1e-12)
	require.InDelta(t, 2.5, c.VarX, 1e-12)
	require.InDelta(t, 1.5, c.VarY, 1e-12)
	require.InDelta(t, 1.5, c.CovXY, 1e-12)
	require.InDelta(t, math.Sqrt(2.5), c.StdX(), 1e-12)
	require.InDelta(t, math.Sqrt(1.5), c.StdY(), 1e-12)

	p, err := c.Pearson()
	require.NoError(t, err)
	require.InDelta(t, 1.5/math.Sqrt(2.5*1.5), p, 1e-12)

	m := c.Matrix()
	require.Equal(t, c.CovXY, m.At(0, 1))
	require.Equal(t, c.CovXY, m.At(1, 0))
}

func TestCovariance_Errors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{"size mismatch", []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4}, ErrSizeMismatch},
		{"empty", nil, nil, ErrInsufficientData},
		{"single point", []float64{1}, []float64{2}, ErrInsufficientData},
		{"nan in x", []float64{1, math.NaN()}, []float64{1, 2}, ErrNonFinite},
		{"inf in y", []float64{1, 2}, []float64{1, math.Inf(-1)}, ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Covariance(tt.x, tt.y)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPearson_ZeroVariance(t *testing.T) {
	c, err := Covariance([]float64{1, 1, 1}, []float64{1, 2, 3})
	require.NoError(t, err)

	_, err = c.Pearson()
	require.ErrorIs(t, err, ErrZeroVariance)

	_, _, err = c.CorrelationRadii()
	require.ErrorIs(t, err, ErrZeroVariance)
}

func TestPearson_PerfectCorrelation(t *testing.T) {
	x := []float64{0.1, 0.2, 0.3, 0.7, 1.1}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = -3*v + 2
	}

	c, err := Covariance(x, y)
	require.NoError(t, err)

	p, err := c.Pearson()
	require.NoError(t, err)
	require.GreaterOrEqual(t, p, -1.0)
	require.InDelta(t, -1.0, p, 1e-12)

	rx, ry, err := c.CorrelationRadii()
	require.NoError(t, err)
	require.False(t, math.IsNaN(rx))
	require.InDelta(t, 0.0, rx, 1e-6)
	require.InDelta(t, math.Sqrt2, ry, 1e-12)
}

func TestCorrelationRadii_MatchEigenvalues(t *testing.T) {
	x := []float64{2.1, 3.4, 1.9, 5.5, 4.2, 3.3, 0.7}
	y := []float64{1.0, 2.2, 1.5, 4.9, 2.8, 3.1, 0.2}

	c, err := Covariance(x, y)
	require.NoError(t, err)

	corr, err := c.Correlation()
	require.NoError(t, err)

	var eig mat.EigenSym
	require.True(t, eig.Factorize(corr, false))
	vals := eig.Values(nil)
	sort.Float64s(vals)

	rx, ry, err := c.CorrelationRadii()
	require.NoError(t, err)
	radii := []float64{rx * rx, ry * ry}
	sort.Float64s(radii)

	require.InDelta(t, vals[0], radii[0], 1e-12)
	require.InDelta(t, vals[1], radii[1], 1e-12)
}

func TestCorrelationRadii_Uncorrelated(t *testing.T) {
	// symmetric cross: covariance is exactly zero
	x := []float64{-1, 1, 0, 0}
	y := []float64{0, 0, -1, 1}

	c, err := Covariance(x, y)
	require.NoError(t, err)

	rx, ry, err := c.CorrelationRadii()
	require.NoError(t, err)
	require.Equal(t, 1.0, rx)
	require.Equal(t, 1.0, ry)
}
