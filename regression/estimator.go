package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypePolynomial represents y = b0 + b1*x + ... + bk*x^k.
	ModelTypePolynomial ModelType = iota
	// ModelTypeLogX represents y = a + b*ln(x).
	ModelTypeLogX
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelTypePolynomial: "polynomial",
	ModelTypeLogX:       "logx",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// modelTypeFromString maps string names to ModelType.
var modelTypeFromString = map[string]ModelType{
	"polynomial": ModelTypePolynomial,
	"linear":     ModelTypePolynomial,
	"logx":       ModelTypeLogX,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1)
}

// Estimator evaluates a fitted model.
type Estimator interface {
	// Estimate returns the predicted y for x.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients, lowest order first.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients.
	SetCoefficients(coeffs []float64) error
}

// PolynomialEstimator implements y = b0 + b1*x + ... + bk*x^k.
type PolynomialEstimator struct {
	coeffs []float64
}

// NewPolynomialEstimator creates a polynomial estimator, lowest order coefficient first.
func NewPolynomialEstimator(coeffs ...float64) *PolynomialEstimator {
	return &PolynomialEstimator{coeffs: slices.Clone(coeffs)}
}

// Estimate evaluates the polynomial with Horner's rule.
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	y := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}

	return y
}

// Type returns the model type.
func (p *PolynomialEstimator) Type() ModelType {
	return ModelTypePolynomial
}

// Order returns the polynomial order.
func (p *PolynomialEstimator) Order() int {
	return len(p.coeffs) - 1
}

// Coefficients returns the model coefficients [b0, b1, ...].
func (p *PolynomialEstimator) Coefficients() []float64 {
	return slices.Clone(p.coeffs)
}

// SetCoefficients replaces the coefficients. At least two are required.
func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) < 2 {
		return fmt.Errorf("polynomial model expects at least 2 coefficients, got %d", len(coeffs))
	}
	p.coeffs = slices.Clone(coeffs)

	return nil
}

// LogXEstimator implements y = a + b*ln(x).
type LogXEstimator struct {
	a, b float64
}

// NewLogXEstimator creates a new log-x estimator with the given coefficients.
func NewLogXEstimator(a, b float64) *LogXEstimator {
	return &LogXEstimator{a: a, b: b}
}

// Estimate calculates y = a + b*ln(x). Non-positive x yields NaN.
func (l *LogXEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return l.a + l.b*math.Log(x)
}

// Type returns the model type.
func (l *LogXEstimator) Type() ModelType {
	return ModelTypeLogX
}

// Coefficients returns the model coefficients [a, b].
func (l *LogXEstimator) Coefficients() []float64 {
	return []float64{l.a, l.b}
}

// SetCoefficients updates the coefficients of the log-x model.
// Expects exactly 2 coefficients: [a, b].
func (l *LogXEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("logx model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}

// NewEstimator creates an estimator by model name ("polynomial", "linear" or
// "logx", case-insensitive) and coefficients.
//
// Example:
//
//	line, err := NewEstimator("linear", []float64{0, 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := line.Estimate(3) // 6
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	var estimator Estimator
	switch ModelTypeFromString(name) {
	case ModelTypePolynomial:
		estimator = &PolynomialEstimator{}
	case ModelTypeLogX:
		estimator = &LogXEstimator{}
	default:
		supported := make([]string, 0, len(modelTypeFromString))
		for n := range modelTypeFromString {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}

	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
