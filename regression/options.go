package regression

import (
	"fmt"

	"github.com/arloliu/confplot/internal/options"
)

// FitConfig holds the model selection parameters.
type FitConfig struct {
	// Order is the polynomial order. Ignored when LogX is set.
	Order int
	// LogX fits y = a + b*ln(x).
	LogX bool
}

// defaultFitConfig returns a straight-line fit.
func defaultFitConfig() FitConfig {
	return FitConfig{Order: 1}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithOrder sets the polynomial order.
func WithOrder(order int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if order < 1 {
			return fmt.Errorf("%w: order %d", ErrInvalidOrder, order)
		}
		cfg.Order = order

		return nil
	})
}

// WithLogX fits against ln(x) instead of a polynomial in x.
func WithLogX(on bool) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.LogX = on
	})
}

// WithConfig replaces the whole configuration.
func WithConfig(c FitConfig) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if c.Order < 1 {
			return fmt.Errorf("%w: order %d", ErrInvalidOrder, c.Order)
		}
		*cfg = c

		return nil
	})
}

func (c FitConfig) validate() error {
	if c.LogX && c.Order > 1 {
		return fmt.Errorf("%w: order %d with log x", ErrConflictingOptions, c.Order)
	}

	return nil
}

func (c FitConfig) modelType() ModelType {
	if c.LogX {
		return ModelTypeLogX
	}

	return ModelTypePolynomial
}

func (c FitConfig) params() int {
	if c.LogX {
		return 2
	}

	return c.Order + 1
}
