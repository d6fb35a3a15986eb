package ellipse

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/arloliu/confplot/geom"
	"github.com/arloliu/confplot/internal/options"
	"github.com/arloliu/confplot/stats"
	"github.com/arloliu/confplot/surface"
)

// Confidence computes the covariance confidence ellipse of x and y, attaches
// it to s and returns it.
//
// The ellipse spans NStd standard deviations (default 3) along each axis and
// is unfilled unless WithFaceColor is given.
//
// Errors:
//   - ErrSizeMismatch: len(x) != len(y)
//   - stats.ErrInsufficientData: fewer than two points
//   - stats.ErrZeroVariance: x or y has no spread
//   - stats.ErrNonFinite: NaN or infinite input
//   - ErrInvalidNStd: non-positive or non-finite multiplier
//
// On error s is left untouched.
func Confidence(x, y []float64, s surface.Surface, opts ...Option) (*Ellipse, error) {
	if s == nil {
		return nil, ErrNilSurface
	}

	cfg, err := options.Build(defaultConfig(), opts...)
	if err != nil {
		return nil, err
	}

	cov, err := stats.Covariance(x, y)
	if err != nil {
		return nil, err
	}

	e, err := fromCovariance(cov, cfg.NStd, cfg.Style, s.DataTransform())
	if err != nil {
		return nil, err
	}
	s.AddShape(e)

	return e, nil
}

// New builds the confidence ellipse of x and y without attaching it to a
// surface. The transform is composed with base instead of a surface transform.
func New(x, y []float64, base geom.Affine, opts ...Option) (*Ellipse, error) {
	cfg, err := options.Build(defaultConfig(), opts...)
	if err != nil {
		return nil, err
	}

	cov, err := stats.Covariance(x, y)
	if err != nil {
		return nil, err
	}

	return fromCovariance(cov, cfg.NStd, cfg.Style, base)
}

func fromCovariance(cov stats.Cov2, nStd float64, style Style, base geom.Affine) (*Ellipse, error) {
	if err := validateNStd(nStd); err != nil {
		return nil, err
	}

	pearson, err := cov.Pearson()
	if err != nil {
		return nil, err
	}
	rx, ry, err := cov.CorrelationRadii()
	if err != nil {
		return nil, err
	}

	scaleX := cov.StdX() * nStd
	scaleY := cov.StdY() * nStd

	local := geom.Identity().
		RotateDeg(45).
		Scale(scaleX, scaleY).
		Translate(cov.MeanX, cov.MeanY)

	e := &Ellipse{
		Width:     rx * 2,
		Height:    ry * 2,
		Pearson:   pearson,
		NStd:      nStd,
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		Mean:      r2.Vec{X: cov.MeanX, Y: cov.MeanY},
		Transform: local.Then(base),
		Style:     style,
	}
	if !e.Transform.IsFinite() {
		return nil, fmt.Errorf("ellipse: non-finite transform %s", e.Transform)
	}

	return e, nil
}
