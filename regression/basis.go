package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// basis maps x to the standardized regressor u = (r(x) - shift) / scale,
// where r is x or ln(x), and expands u into the design row [1 u u² ...].
//
// Fitting in u keeps XᵀX well conditioned when x sits far from zero.
type basis struct {
	mt    ModelType
	p     int
	shift float64
	scale float64
}

func newBasis(mt ModelType, p int, x []float64) (basis, error) {
	b := basis{mt: mt, p: p, scale: 1}

	r := make([]float64, len(x))
	for i, v := range x {
		r[i] = b.regressor(v)
	}

	shift, scale := stat.MeanStdDev(r, nil)
	if scale == 0 || !isFinite(scale) || !isFinite(shift) {
		return basis{}, fmt.Errorf("%w: x has no spread", ErrSingular)
	}
	b.shift, b.scale = shift, scale

	return b, nil
}

// regressor returns the standardized regressor of x.
func (b basis) regressor(x float64) float64 {
	r := x
	if b.mt == ModelTypeLogX {
		r = math.Log(x)
	}

	return (r - b.shift) / b.scale
}

// row fills dst (allocating when nil) with the powers of the regressor of x.
func (b basis) row(x float64, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, b.p)
	}

	u := b.regressor(x)
	v := 1.0
	for i := range b.p {
		dst[i] = v
		v *= u
	}

	return dst
}

// eval evaluates the polynomial with coefficients g in the regressor of x.
func (b basis) eval(g []float64, x float64) float64 {
	if b.mt == ModelTypeLogX && x <= 0 {
		return math.NaN()
	}

	u := b.regressor(x)
	result := 0.0
	for i := len(g) - 1; i >= 0; i-- {
		result = result*u + g[i]
	}

	return result
}

// rawCoefficients converts coefficients of u into coefficients of r(x) by
// expanding ((r - shift) / scale)^k binomially.
func (b basis) rawCoefficients(g []float64) []float64 {
	out := make([]float64, len(g))
	binom := make([]float64, len(g))
	for k, gk := range g {
		// binom holds row k of Pascal's triangle.
		binom[k] = 1
		for j := k - 1; j > 0; j-- {
			binom[j] += binom[j-1]
		}

		f := gk / math.Pow(b.scale, float64(k))
		for j := 0; j <= k; j++ {
			out[j] += f * binom[j] * math.Pow(-b.shift, float64(k-j))
		}
	}

	return out
}
