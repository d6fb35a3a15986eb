package surface

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/confplot/geom"
)

// OpKind identifies a recorded surface operation.
type OpKind int

const (
	// OpShape is a call to AddShape.
	OpShape OpKind = iota
	// OpScatter is a call to AddScatter.
	OpScatter
	// OpMarker is a call to AddMarker.
	OpMarker
	// OpXLabel is a call to SetXLabel.
	OpXLabel
	// OpYLabel is a call to SetYLabel.
	OpYLabel
)

var opKindNames = map[OpKind]string{
	OpShape:   "shape",
	OpScatter: "scatter",
	OpMarker:  "marker",
	OpXLabel:  "xlabel",
	OpYLabel:  "ylabel",
}

// String returns the string representation of the operation kind.
func (k OpKind) String() string {
	if name, ok := opKindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Op is one recorded surface operation. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Shape  Shape
	Points plotter.XYs
	Style  ScatterStyle
	Marker r2.Vec
	Glyph  draw.GlyphStyle
	Text   string
}

// Recorder is an in-memory Surface that records every operation in call order.
type Recorder struct {
	// Base is returned by DataTransform.
	Base geom.Affine
	// Ops holds the recorded operations.
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder whose data transform is the identity.
func NewRecorder() *Recorder {
	return &Recorder{Base: geom.Identity()}
}

// AddShape implements Surface.
func (r *Recorder) AddShape(s Shape) Shape {
	r.Ops = append(r.Ops, Op{Kind: OpShape, Shape: s})
	return s
}

// AddScatter implements Surface.
func (r *Recorder) AddScatter(xys plotter.XYer, style ScatterStyle) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("surface: scatter: %w", err)
	}
	sc.GlyphStyle = NormalizeGlyph(style.Glyph)

	r.Ops = append(r.Ops, Op{Kind: OpScatter, Points: sc.XYs, Style: style})

	return sc, nil
}

// AddMarker implements Surface.
func (r *Recorder) AddMarker(x, y float64, glyph draw.GlyphStyle) error {
	if _, err := plotter.CopyXYs(plotter.XYs{{X: x, Y: y}}); err != nil {
		return fmt.Errorf("surface: marker: %w", err)
	}
	r.Ops = append(r.Ops, Op{Kind: OpMarker, Marker: r2.Vec{X: x, Y: y}, Glyph: glyph})

	return nil
}

// SetXLabel implements Surface.
func (r *Recorder) SetXLabel(text string) {
	r.Ops = append(r.Ops, Op{Kind: OpXLabel, Text: text})
}

// SetYLabel implements Surface.
func (r *Recorder) SetYLabel(text string) {
	r.Ops = append(r.Ops, Op{Kind: OpYLabel, Text: text})
}

// DataTransform implements Surface.
func (r *Recorder) DataTransform() geom.Affine {
	return r.Base
}

// Count returns the number of recorded operations of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}

	return n
}

// Kinds returns the kinds of all recorded operations in order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}

	return kinds
}

// Shapes returns every shape passed to AddShape, in order.
func (r *Recorder) Shapes() []Shape {
	var shapes []Shape
	for _, op := range r.Ops {
		if op.Kind == OpShape {
			shapes = append(shapes, op.Shape)
		}
	}

	return shapes
}

// Label returns the last text set for the given label kind and whether it was set.
func (r *Recorder) Label(kind OpKind) (string, bool) {
	for i := len(r.Ops) - 1; i >= 0; i-- {
		if r.Ops[i].Kind == kind {
			return r.Ops[i].Text, true
		}
	}

	return "", false
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
