package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrSingular is returned when inverting a transform whose linear part has a zero determinant.
var ErrSingular = errors.New("geom: transform is not invertible")

// Affine is a 2D affine transform
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The zero value is the degenerate all-zero map; use Identity for a no-op.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that maps every point to itself.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Then returns the transform that applies a and then next.
func (a Affine) Then(next Affine) Affine {
	return Affine{
		A: next.A*a.A + next.B*a.D,
		B: next.A*a.B + next.B*a.E,
		C: next.A*a.C + next.B*a.F + next.C,
		D: next.D*a.A + next.E*a.D,
		E: next.D*a.B + next.E*a.E,
		F: next.D*a.C + next.E*a.F + next.F,
	}
}

// Rotate appends a counter-clockwise rotation by theta radians about the origin.
func (a Affine) Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return a.Then(Affine{A: cos, B: -sin, D: sin, E: cos})
}

// RotateDeg appends a counter-clockwise rotation by deg degrees about the origin.
func (a Affine) RotateDeg(deg float64) Affine {
	return a.Rotate(deg * math.Pi / 180)
}

// Scale appends an axis-aligned scale.
func (a Affine) Scale(sx, sy float64) Affine {
	return a.Then(Affine{A: sx, E: sy})
}

// Translate appends a translation.
func (a Affine) Translate(tx, ty float64) Affine {
	return a.Then(Affine{A: 1, E: 1, C: tx, F: ty})
}

// Apply maps p through the transform.
func (a Affine) Apply(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.A*p.X + a.B*p.Y + a.C,
		Y: a.D*p.X + a.E*p.Y + a.F,
	}
}

// Det returns the determinant of the linear part.
func (a Affine) Det() float64 {
	return a.A*a.E - a.B*a.D
}

// Invert returns the inverse transform.
func (a Affine) Invert() (Affine, error) {
	det := a.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Affine{}, fmt.Errorf("%w: determinant %v", ErrSingular, det)
	}

	inv := Affine{
		A: a.E / det,
		B: -a.B / det,
		D: -a.D / det,
		E: a.A / det,
	}
	inv.C = -(inv.A*a.C + inv.B*a.F)
	inv.F = -(inv.D*a.C + inv.E*a.F)

	return inv, nil
}

// Linear returns the 2x2 linear part of the transform.
func (a Affine) Linear() *mat.Dense {
	return mat.NewDense(2, 2, []float64{a.A, a.B, a.D, a.E})
}

// Translation returns the translation part of the transform.
func (a Affine) Translation() r2.Vec {
	return r2.Vec{X: a.C, Y: a.F}
}

// IsFinite reports whether every coefficient is a finite number.
func (a Affine) IsFinite() bool {
	for _, v := range [...]float64{a.A, a.B, a.C, a.D, a.E, a.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// String returns the transform in row-major matrix form.
func (a Affine) String() string {
	return fmt.Sprintf("Affine[[%g %g %g] [%g %g %g]]", a.A, a.B, a.C, a.D, a.E, a.F)
}
