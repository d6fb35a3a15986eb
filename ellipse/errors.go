package ellipse

import (
	"errors"

	"github.com/arloliu/confplot/stats"
	"github.com/arloliu/confplot/surface"
)

var (
	// ErrSizeMismatch is returned when x and y differ in length.
	ErrSizeMismatch = stats.ErrSizeMismatch
	// ErrLengthMismatch is returned when the multiplier and color lists differ in length.
	ErrLengthMismatch = errors.New("ellipse: number of multipliers and colors must match")
	// ErrInvalidNStd is returned for a multiplier that is not a positive finite number.
	ErrInvalidNStd = errors.New("ellipse: standard deviation multiplier must be positive and finite")
	// ErrUnknownColor is returned by ParseColor for names it cannot resolve.
	ErrUnknownColor = errors.New("ellipse: unknown color")
	// ErrNilSurface is returned when no drawing surface is supplied.
	ErrNilSurface = surface.ErrNilSurface
)
