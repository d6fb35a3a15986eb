package seaplot

import (
	"fmt"
	"image/color"

	"github.com/arloliu/confplot/internal/options"
	"github.com/arloliu/confplot/regression"
)

// DefaultColor is the color used for points, fit line and band when none is given.
var DefaultColor color.Color = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

const (
	// DefaultCI is the default confidence level of the band, in percent.
	DefaultCI = 95.0
	// DefaultGridSize is the number of points the fitted curve is evaluated at.
	DefaultGridSize = 100
	// bandAlpha is the opacity of the confidence band.
	bandAlpha = 0.15
)

// Config configures RegPlot and ResidPlot.
type Config struct {
	// Order is the polynomial order of the fit.
	Order int
	// LogX fits y = a + b*ln(x).
	LogX bool
	// CI is the confidence level of the band in percent; 0 draws no band.
	// ResidPlot ignores it.
	CI float64
	// Color is used for points, line and band.
	Color color.Color
	// Scatter draws the data points.
	Scatter bool
	// FitReg draws the fitted curve. ResidPlot always fits.
	FitReg bool
	// Label is the legend entry of the scatter points.
	Label string
	// GridSize is the number of points the fitted curve is evaluated at.
	GridSize int
}

func defaultConfig() Config {
	return Config{
		Order:    1,
		CI:       DefaultCI,
		Color:    DefaultColor,
		Scatter:  true,
		FitReg:   true,
		GridSize: DefaultGridSize,
	}
}

func (c Config) fitOptions() []regression.FitOption {
	return []regression.FitOption{
		regression.WithConfig(regression.FitConfig{Order: c.Order, LogX: c.LogX}),
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithOrder sets the polynomial order of the fit.
func WithOrder(order int) Option {
	return options.New(func(cfg *Config) error {
		if order < 1 {
			return fmt.Errorf("%w: order %d", regression.ErrInvalidOrder, order)
		}
		cfg.Order = order

		return nil
	})
}

// WithLogX fits against ln(x).
func WithLogX(on bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.LogX = on
	})
}

// WithCI sets the confidence level of the band in percent. 0 disables the band.
func WithCI(level float64) Option {
	return options.New(func(cfg *Config) error {
		if level != 0 && !(level > 0 && level < 100) {
			return fmt.Errorf("%w: %v", regression.ErrInvalidLevel, level)
		}
		cfg.CI = level

		return nil
	})
}

// WithColor sets the color of points, line and band.
func WithColor(c color.Color) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Color = c
	})
}

// WithScatter toggles the data points.
func WithScatter(on bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Scatter = on
	})
}

// WithFitReg toggles the fitted curve of RegPlot.
func WithFitReg(on bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.FitReg = on
	})
}

// WithLabel sets the legend label of the data points.
func WithLabel(label string) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Label = label
	})
}

// WithGridSize sets how many points the fitted curve is evaluated at.
func WithGridSize(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 2 {
			return fmt.Errorf("seaplot: grid size must be at least 2, got %d", n)
		}
		cfg.GridSize = n

		return nil
	})
}
