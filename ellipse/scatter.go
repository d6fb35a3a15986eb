package ellipse

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/confplot/internal/options"
	"github.com/arloliu/confplot/stats"
	"github.com/arloliu/confplot/surface"
)

// ScatterConfig configures ScatterWithEllipses.
type ScatterConfig struct {
	// XLabel and YLabel are applied only when both are non-empty.
	XLabel, YLabel string
	// PointLabel is the legend entry of the scatter layer; empty means none.
	PointLabel string
	// PointColor colors the scatter points.
	PointColor color.Color
	// NStd lists the multiplier of each ellipse, drawn in order.
	NStd []float64
	// Colors lists the edge color of each ellipse, paired with NStd.
	Colors []color.Color
	// LevelLabels gives each ellipse a "<n>σ" legend entry.
	LevelLabels bool
	// FaceColor fills every ellipse; nil leaves them unfilled.
	FaceColor color.Color
	// MeanColor colors the mean marker.
	MeanColor color.Color
}

func defaultScatterConfig() ScatterConfig {
	return ScatterConfig{
		PointColor: colornames.Blue,
		NStd:       []float64{DefaultNStd},
		Colors:     []color.Color{colornames.Firebrick},
		MeanColor:  colornames.Darkorange,
	}
}

// ScatterOption is a functional option for ScatterWithEllipses.
type ScatterOption = options.Option[*ScatterConfig]

// WithAxisLabels sets both axis labels.
func WithAxisLabels(x, y string) ScatterOption {
	return options.NoError(func(cfg *ScatterConfig) {
		cfg.XLabel = x
		cfg.YLabel = y
	})
}

// WithPointLabel sets the legend label of the scatter points.
func WithPointLabel(label string) ScatterOption {
	return options.NoError(func(cfg *ScatterConfig) {
		cfg.PointLabel = label
	})
}

// WithPointColor sets the color of the scatter points.
func WithPointColor(c color.Color) ScatterOption {
	return options.NoError(func(cfg *ScatterConfig) {
		cfg.PointColor = c
	})
}

// WithLevels sets the multipliers and their paired edge colors. The lengths
// are checked when ScatterWithEllipses runs.
func WithLevels(nStd []float64, colors []color.Color) ScatterOption {
	return options.NoError(func(cfg *ScatterConfig) {
		cfg.NStd = append([]float64(nil), nStd...)
		cfg.Colors = append([]color.Color(nil), colors...)
	})
}

// WithLevelLabels toggles the per-ellipse legend labels.
func WithLevelLabels(on bool) ScatterOption {
	return options.NoError(func(cfg *ScatterConfig) {
		cfg.LevelLabels = on
	})
}

// WithEllipseFaceColor fills every ellipse with c.
func WithEllipseFaceColor(c color.Color) ScatterOption {
	return options.NoError(func(cfg *ScatterConfig) {
		cfg.FaceColor = c
	})
}

// WithMeanColor sets the color of the mean marker.
func WithMeanColor(c color.Color) ScatterOption {
	return options.NoError(func(cfg *ScatterConfig) {
		cfg.MeanColor = c
	})
}

// LevelLabel formats the legend label of an ellipse drawn at n standard deviations.
func LevelLabel(n float64) string {
	return fmt.Sprintf("%gσ", n)
}

// ScatterWithEllipses draws a scatter of (x, y), one confidence ellipse per
// multiplier, a cross at the sample mean and, if both are set, the axis labels.
//
// Layers are added in exactly that order. Every ellipse is computed before
// the first layer is added, so an error leaves s untouched.
//
// Errors: ErrLengthMismatch when the multiplier and color lists differ in
// length, and every error Confidence reports.
func ScatterWithEllipses(x, y []float64, s surface.Surface, opts ...ScatterOption) error {
	if s == nil {
		return ErrNilSurface
	}

	cfg, err := options.Build(defaultScatterConfig(), opts...)
	if err != nil {
		return err
	}
	if len(cfg.NStd) != len(cfg.Colors) {
		return fmt.Errorf("%w: %d multipliers, %d colors", ErrLengthMismatch, len(cfg.NStd), len(cfg.Colors))
	}

	cov, err := stats.Covariance(x, y)
	if err != nil {
		return err
	}

	base := s.DataTransform()
	ellipses := make([]*Ellipse, len(cfg.NStd))
	for i, n := range cfg.NStd {
		style := defaultStyle()
		style.EdgeColor = cfg.Colors[i]
		style.FaceColor = cfg.FaceColor
		if cfg.LevelLabels {
			style.Label = LevelLabel(n)
		}

		e, err := fromCovariance(cov, n, style, base)
		if err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
		ellipses[i] = e
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}

	_, err = s.AddScatter(pts, surface.ScatterStyle{
		Glyph: draw.GlyphStyle{Color: cfg.PointColor},
		Label: cfg.PointLabel,
	})
	if err != nil {
		return err
	}

	for _, e := range ellipses {
		s.AddShape(e)
	}

	if err := s.AddMarker(cov.MeanX, cov.MeanY, surface.MarkerGlyph(cfg.MeanColor)); err != nil {
		return err
	}

	if cfg.XLabel != "" && cfg.YLabel != "" {
		s.SetXLabel(cfg.XLabel)
		s.SetYLabel(cfg.YLabel)
	}

	return nil
}
