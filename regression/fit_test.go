package regression

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFit_Linear(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}

	m, err := Fit(x, y)
	require.NoError(t, err)
	require.Equal(t, ModelTypePolynomial, m.Type)
	require.Equal(t, 1, m.Order)
	require.Len(t, m.Coefficients, 2)
	require.InDelta(t, 0.0, m.Coefficients[0], 1e-9)
	require.InDelta(t, 2.0, m.Coefficients[1], 1e-9)
	require.InDelta(t, 1.0, m.RSquared, 1e-12)
	require.InDelta(t, 0.0, m.RMSE, 1e-9)
	require.Equal(t, 3, m.N)
	require.Equal(t, 1, m.DOF)
	require.InDelta(t, 8.0, m.Predict(4), 1e-9)

	res, err := m.Residuals(x, y)
	require.NoError(t, err)
	for _, r := range res {
		require.InDelta(t, 0.0, r, 1e-9)
	}

	_, err = m.Residuals(x, y[:2])
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestFit_NoisyLineRecoversParameters(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	n := 500
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		x[i] = rng.Float64() * 10
		y[i] = 1.5 - 0.75*x[i] + 0.1*rng.NormFloat64()
	}

	m, err := Fit(x, y)
	require.NoError(t, err)
	require.InDelta(t, 1.5, m.Coefficients[0], 0.05)
	require.InDelta(t, -0.75, m.Coefficients[1], 0.01)
	require.Greater(t, m.RSquared, 0.99)
	require.InDelta(t, 0.1, m.Sigma, 0.02)
}

func TestFit_Polynomial(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2, 3}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 1 - 2*v + 0.5*v*v
	}

	m, err := Fit(x, y, WithOrder(2))
	require.NoError(t, err)
	require.Equal(t, 2, m.Order)
	require.InDeltaSlice(t, []float64{1, -2, 0.5}, m.Coefficients, 1e-9)
	require.InDelta(t, 1.0, m.RSquared, 1e-12)
	require.Contains(t, m.Formula, "x^2")

	pe, ok := m.Estimator.(*PolynomialEstimator)
	require.True(t, ok)
	require.Equal(t, 2, pe.Order())
}

func TestFit_LogX(t *testing.T) {
	x := []float64{1, 2, 4, 8, 16}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3 + 2*math.Log(v)
	}

	m, err := Fit(x, y, WithLogX(true))
	require.NoError(t, err)
	require.Equal(t, ModelTypeLogX, m.Type)
	require.InDeltaSlice(t, []float64{3, 2}, m.Coefficients, 1e-9)
	require.Contains(t, m.Formula, "ln(x)")

	_, err = Fit([]float64{0, 1, 2}, []float64{1, 2, 3}, WithLogX(true))
	require.ErrorIs(t, err, ErrNonPositiveX)
}

func TestFit_Errors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		opts []FitOption
		want error
	}{
		{"size mismatch", []float64{1, 2, 3}, []float64{1, 2}, nil, ErrSizeMismatch},
		{"empty", nil, nil, nil, ErrInsufficientData},
		{"one point", []float64{1}, []float64{1}, nil, ErrInsufficientData},
		{"too few for quadratic", []float64{1, 2}, []float64{1, 2}, []FitOption{WithOrder(2)}, ErrInsufficientData},
		{"constant x", []float64{2, 2, 2}, []float64{1, 2, 3}, nil, ErrSingular},
		{"nan", []float64{1, math.NaN()}, []float64{1, 2}, nil, ErrNonFinite},
		{"order zero", []float64{1, 2}, []float64{1, 2}, []FitOption{WithOrder(0)}, ErrInvalidOrder},
		{"logx with order", []float64{1, 2, 3}, []float64{1, 2, 3}, []FitOption{WithOrder(2), WithLogX(true)}, ErrConflictingOptions},
		{"bad config", []float64{1, 2}, []float64{1, 2}, []FitOption{WithConfig(FitConfig{})}, ErrInvalidOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Fit(tt.x, tt.y, tt.opts...)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, m)
		})
	}
}

func TestModel_Band(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	n := 40
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		x[i] = float64(i)
		y[i] = 2 + 0.5*x[i] + rng.NormFloat64()
	}

	m, err := Fit(x, y)
	require.NoError(t, err)

	grid := Grid(x, 100)
	lo95, hi95, err := m.Band(grid, 95)
	require.NoError(t, err)
	lo68, hi68, err := m.Band(grid, 68)
	require.NoError(t, err)
	require.Len(t, lo95, 100)

	mid := len(grid) / 2
	for i, gx := range grid {
		yhat := m.Predict(gx)
		require.Less(t, lo95[i], yhat)
		require.Greater(t, hi95[i], yhat)
		require.InDelta(t, yhat-lo95[i], hi95[i]-yhat, 1e-9, "symmetric")
		require.Greater(t, hi95[i]-lo95[i], hi68[i]-lo68[i], "wider at higher level")
	}
	// narrowest near the mean of x
	require.Less(t, hi95[mid]-lo95[mid], hi95[0]-lo95[0])
	require.Less(t, hi95[mid]-lo95[mid], hi95[99]-lo95[99])

	_, _, err = m.Band(grid, 100)
	require.ErrorIs(t, err, ErrInvalidLevel)
	_, _, err = m.Band(grid, 0)
	require.ErrorIs(t, err, ErrInvalidLevel)
}

func TestModel_BandNeedsDegreesOfFreedom(t *testing.T) {
	m, err := Fit([]float64{1, 2}, []float64{3, 5})
	require.NoError(t, err)
	require.Equal(t, 0, m.DOF)
	require.True(t, math.IsNaN(m.Sigma))

	_, _, err = m.Band([]float64{1.5}, 95)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestModel_StdErrMatchesClosedForm(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{1.1, 1.9, 3.2, 3.8, 5.3, 5.9}

	m, err := Fit(x, y)
	require.NoError(t, err)

	meanX := calculateMean(x)
	sxx := 0.0
	for _, v := range x {
		sxx += (v - meanX) * (v - meanX)
	}
	for _, x0 := range []float64{0, 3.5, 10} {
		want := m.Sigma * math.Sqrt(1/float64(len(x))+(x0-meanX)*(x0-meanX)/sxx)
		require.InDelta(t, want, m.StdErr(x0), 1e-9)
	}
}

func TestGrid(t *testing.T) {
	require.Nil(t, Grid(nil, 10))
	require.Nil(t, Grid([]float64{1}, 0))
	require.Equal(t, []float64{2}, Grid([]float64{4, 2}, 1))

	g := Grid([]float64{3, -1, 2}, 5)
	require.Equal(t, []float64{-1, 0, 1, 2, 3}, g)
}

func TestCalculateRSquared(t *testing.T) {
	require.Equal(t, 0.0, calculateRSquared(nil, nil))
	require.Equal(t, 1.0, calculateRSquared([]float64{2, 2}, []float64{2, 2}))
	require.Equal(t, 0.0, calculateRSquared([]float64{2, 2}, []float64{1, 3}))
	require.InDelta(t, 0.0, calculateRSquared([]float64{1, 2, 3}, []float64{2, 2, 2}), 1e-12)
}

func TestCalculateRMSE(t *testing.T) {
	require.Equal(t, 0.0, calculateRMSE(nil, nil))
	require.InDelta(t, 1.0, calculateRMSE([]float64{1, 3}, []float64{2, 2}), 1e-12)
}

func TestFit_OffsetX(t *testing.T) {
	for _, off := range []float64{0, 1e3, 1e4, 1e5, 1e6} {
		x := make([]float64, 21)
		y := make([]float64, 21)
		quad := make([]float64, 21)
		for i := range x {
			u := float64(i)
			x[i] = off + u
			y[i] = 2*u + 1
			quad[i] = 0.5*u*u - u + 3
		}

		m, err := Fit(x, y)
		require.NoError(t, err, "offset %g", off)
		require.InDelta(t, 2.0, m.Coefficients[1], 1e-6, "offset %g", off)
		require.InDelta(t, 1.0, m.RSquared, 1e-9, "offset %g", off)
		for i, v := range m.PredictAll(x) {
			require.InDelta(t, y[i], v, 1e-6, "offset %g", off)
		}

		lower, upper, err := m.Band([]float64{off, off + 10, off + 20}, 95)
		require.NoError(t, err, "offset %g", off)
		for i := range lower {
			require.InDelta(t, lower[i], upper[i], 1e-6, "exact fit has a collapsed band")
		}

		m2, err := Fit(x, quad, WithOrder(2))
		require.NoError(t, err, "order 2, offset %g", off)
		for i := range x {
			require.InDelta(t, quad[i], m2.Predict(x[i]), 1e-6, "order 2, offset %g", off)
		}
		require.InDelta(t, 1.0, m2.RSquared, 1e-9)
	}
}

func TestFit_OffsetLogX(t *testing.T) {
	x := make([]float64, 30)
	y := make([]float64, 30)
	for i := range x {
		x[i] = 1e8 * (1 + float64(i)/10)
		y[i] = 4 - 3*math.Log(x[i])
	}

	m, err := Fit(x, y, WithLogX(true))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{4, -3}, m.Coefficients, 1e-6)
	require.InDelta(t, y[7], m.Predict(x[7]), 1e-9)
	require.True(t, math.IsNaN(m.Predict(-1)))
}

func TestFit_StandardizedMatchesRawCoefficients(t *testing.T) {
	x := []float64{0.5, 1, 2.5, 3, 4.5, 6}
	y := []float64{2.1, 2.4, 5.3, 6.8, 12.1, 19.6}

	m, err := Fit(x, y, WithOrder(3))
	require.NoError(t, err)
	for _, v := range []float64{0, 1.7, 5, 8} {
		require.InDelta(t, m.Estimator.Estimate(v), m.Predict(v), 1e-9)
	}
}
