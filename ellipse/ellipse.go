package ellipse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/confplot/geom"
	"github.com/arloliu/confplot/internal/hash"
	"github.com/arloliu/confplot/surface"
)

// DefaultSegments is the number of line segments used to draw an outline.
const DefaultSegments = 128

// Ellipse is a confidence ellipse ready to be attached to a surface.
//
// The unit ellipse is centered at the origin with diameters Width and Height.
// Transform places it on the surface.
type Ellipse struct {
	// Width and Height are the diameters of the unit ellipse.
	Width, Height float64
	// Pearson is the correlation coefficient the radii were derived from.
	Pearson float64
	// NStd is the standard deviation multiplier.
	NStd float64
	// ScaleX and ScaleY are NStd times the sample standard deviations.
	ScaleX, ScaleY float64
	// Mean is the sample mean in data coordinates.
	Mean r2.Vec
	// Transform maps unit coordinates to surface coordinates.
	Transform geom.Affine
	// Style holds the drawing attributes.
	Style Style
}

var (
	_ surface.Shape    = (*Ellipse)(nil)
	_ surface.Labeled  = (*Ellipse)(nil)
	_ plot.Thumbnailer = (*Ellipse)(nil)
)

// Radii returns the unscaled radii, sqrt(1+p) and sqrt(1-p).
func (e *Ellipse) Radii() (rx, ry float64) {
	return e.Width / 2, e.Height / 2
}

// ScaledRadii returns the radii multiplied by the per-axis scale factors.
func (e *Ellipse) ScaledRadii() (rx, ry float64) {
	rx, ry = e.Radii()
	return rx * e.ScaleX, ry * e.ScaleY
}

// Center returns the center of the ellipse after the transform.
func (e *Ellipse) Center() r2.Vec {
	return e.Transform.Apply(r2.Vec{})
}

// Point returns the outline point at parameter angle theta, after the transform.
func (e *Ellipse) Point(theta float64) r2.Vec {
	rx, ry := e.Radii()
	sin, cos := math.Sincos(theta)

	return e.Transform.Apply(r2.Vec{X: rx * cos, Y: ry * sin})
}

// Vertices returns n+1 outline points with the first point repeated at the end.
// n below 3 is raised to 3.
func (e *Ellipse) Vertices(n int) []r2.Vec {
	if n < 3 {
		n = 3
	}

	verts := make([]r2.Vec, n+1)
	for i := range n {
		verts[i] = e.Point(2 * math.Pi * float64(i) / float64(n))
	}
	verts[n] = verts[0]

	return verts
}

// Axes returns the semi-axis lengths of the transformed ellipse and the
// counter-clockwise angle of the major axis in radians.
func (e *Ellipse) Axes() (major, minor, angle float64) {
	rx, ry := e.Radii()

	var m mat.Dense
	m.Mul(e.Transform.Linear(), mat.NewDiagDense(2, []float64{rx, ry}))

	var svd mat.SVD
	if !svd.Factorize(&m, mat.SVDThin) {
		return math.NaN(), math.NaN(), math.NaN()
	}

	vals := svd.Values(nil)
	var u mat.Dense
	svd.UTo(&u)

	return vals[0], vals[1], math.Atan2(u.At(1, 0), u.At(0, 0))
}

// Extent returns the half width and half height of the axis-aligned bounding
// box of the transformed ellipse.
func (e *Ellipse) Extent() (halfX, halfY float64) {
	rx, ry := e.Radii()
	t := e.Transform

	return math.Hypot(t.A*rx, t.B*ry), math.Hypot(t.D*rx, t.E*ry)
}

// Fingerprint returns a hash of the geometry. Identical inputs produce
// identical fingerprints; the style is not included.
func (e *Ellipse) Fingerprint() uint64 {
	t := e.Transform
	return hash.Floats(e.Width, e.Height, t.A, t.B, t.C, t.D, t.E, t.F)
}

// Label implements surface.Labeled.
func (e *Ellipse) Label() string {
	return e.Style.Label
}

// DataRange implements plot.DataRanger.
func (e *Ellipse) DataRange() (xmin, xmax, ymin, ymax float64) {
	c := e.Center()
	hx, hy := e.Extent()

	return c.X - hx, c.X + hx, c.Y - hy, c.Y + hy
}

// Plot implements plot.Plotter.
func (e *Ellipse) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	verts := e.Vertices(DefaultSegments)
	pts := make([]vg.Point, len(verts))
	for i, v := range verts {
		pts[i] = vg.Point{X: trX(v.X), Y: trY(v.Y)}
	}

	if e.Style.FaceColor != nil {
		c.FillPolygon(e.Style.FaceColor, c.ClipPolygonXY(pts))
	}
	if e.Style.EdgeColor != nil && e.Style.LineWidth > 0 {
		c.StrokeLines(e.Style.LineStyle(), c.ClipLinesXY(pts)...)
	}
}

// Thumbnail implements plot.Thumbnailer.
func (e *Ellipse) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Min.Y},
	}

	if e.Style.FaceColor != nil {
		c.FillPolygon(e.Style.FaceColor, c.ClipPolygonY(pts))
	}
	if e.Style.EdgeColor != nil && e.Style.LineWidth > 0 {
		c.StrokeLines(e.Style.LineStyle(), c.ClipLinesY(pts)...)
	}
}

// String returns a short description of the geometry.
func (e *Ellipse) String() string {
	c := e.Center()
	major, minor, angle := e.Axes()

	return fmt.Sprintf("Ellipse{Center: (%.4g, %.4g), Axes: (%.4g, %.4g), Angle: %.2f°, NStd: %g}",
		c.X, c.Y, major, minor, angle*180/math.Pi, e.NStd)
}
