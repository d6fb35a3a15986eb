package ellipse

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/confplot/internal/options"
)

// DefaultNStd is the multiplier used when none is given.
const DefaultNStd = 3.0

// Style holds the drawing attributes of an ellipse.
type Style struct {
	// EdgeColor strokes the outline. Nil draws no outline.
	EdgeColor color.Color
	// FaceColor fills the interior. Nil leaves it transparent.
	FaceColor color.Color
	// LineWidth is the outline width.
	LineWidth vg.Length
	// Dashes is the outline dash pattern; empty is solid.
	Dashes []vg.Length
	// Label is the legend entry; empty means none.
	Label string
}

// LineStyle returns the outline style.
func (s Style) LineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  s.EdgeColor,
		Width:  s.LineWidth,
		Dashes: s.Dashes,
	}
}

func defaultStyle() Style {
	return Style{
		EdgeColor: color.Black,
		LineWidth: vg.Points(1),
	}
}

// Config configures Confidence.
type Config struct {
	NStd  float64
	Style Style
}

func defaultConfig() Config {
	return Config{
		NStd:  DefaultNStd,
		Style: defaultStyle(),
	}
}

// Option is a functional option for Confidence.
type Option = options.Option[*Config]

// WithNStd sets the number of standard deviations that determine the radii.
func WithNStd(n float64) Option {
	return options.New(func(cfg *Config) error {
		if err := validateNStd(n); err != nil {
			return err
		}
		cfg.NStd = n

		return nil
	})
}

// WithEdgeColor sets the outline color.
func WithEdgeColor(c color.Color) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Style.EdgeColor = c
	})
}

// WithFaceColor sets the fill color. Nil leaves the ellipse unfilled.
func WithFaceColor(c color.Color) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Style.FaceColor = c
	})
}

// WithLineWidth sets the outline width.
func WithLineWidth(w vg.Length) Option {
	return options.New(func(cfg *Config) error {
		if w < 0 {
			return fmt.Errorf("ellipse: negative line width %v", w)
		}
		cfg.Style.LineWidth = w

		return nil
	})
}

// WithDashes sets the outline dash pattern.
func WithDashes(dashes ...vg.Length) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Style.Dashes = append([]vg.Length(nil), dashes...)
	})
}

// WithLabel sets the legend label.
func WithLabel(label string) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Style.Label = label
	})
}

// WithStyle replaces the whole style.
func WithStyle(s Style) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Style = s
	})
}

func validateNStd(n float64) error {
	if n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidNStd, n)
	}

	return nil
}

// ParseColor resolves a CSS/X11 color name (case-insensitive, e.g. "firebrick")
// or a hex string ("#b22222", "#f00", "#b2222280"). "none" and "" resolve to nil,
// meaning transparent.
func ParseColor(name string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "", "none":
		return nil, nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	c, ok := colornames.Map[strings.ReplaceAll(s, " ", "")]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}

	return c, nil
}

// ParseColors resolves every name with ParseColor.
func ParseColors(names ...string) ([]color.Color, error) {
	colors := make([]color.Color, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}

	return colors, nil
}

func parseHex(s string) (color.Color, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, "#"+s)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, "#"+s)
	}

	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}

	return c, nil
}
