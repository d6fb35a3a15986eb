// Package table provides a minimal labeled column table used to hand paired
// samples to the regression and residual plots.
package table

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/plot/plotter"
)

var (
	// ErrEmpty is returned when a table is built without columns.
	ErrEmpty = errors.New("table: no columns")
	// ErrColumnLength is returned when columns have different lengths.
	ErrColumnLength = errors.New("table: columns must have the same length")
	// ErrDuplicateColumn is returned when two columns share a label.
	ErrDuplicateColumn = errors.New("table: duplicate column label")
	// ErrUnknownColumn is returned when a label does not name a column.
	ErrUnknownColumn = errors.New("table: unknown column")
)

// Column is a labeled series of values.
type Column struct {
	Label  string
	Values []float64
}

// Table is an ordered set of equal-length labeled columns.
type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New builds a table from cols. The column values are copied.
func New(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrEmpty
	}

	t := &Table{
		cols:  make([]Column, len(cols)),
		index: make(map[string]int, len(cols)),
		rows:  len(cols[0].Values),
	}
	for i, c := range cols {
		if len(c.Values) != t.rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, column %q has %d",
				ErrColumnLength, c.Label, len(c.Values), cols[0].Label, t.rows)
		}
		if _, dup := t.index[c.Label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Label)
		}
		t.index[c.Label] = i
		t.cols[i] = Column{Label: c.Label, Values: append([]float64(nil), c.Values...)}
	}

	return t, nil
}

// FromXY builds a two-column table labeled xLabel and yLabel.
func FromXY(x, y []float64, xLabel, yLabel string) (*Table, error) {
	return New(Column{Label: xLabel, Values: x}, Column{Label: yLabel, Values: y})
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return t.rows
}

// Labels returns the column labels in order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.cols))
	for i, c := range t.cols {
		labels[i] = c.Label
	}

	return labels
}

// Column returns the values of the column labeled label. The returned slice
// is shared with the table.
func (t *Table) Column(label string) ([]float64, error) {
	i, ok := t.index[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, label)
	}

	return t.cols[i].Values, nil
}

// XY returns a plotter.XYer over the two named columns.
func (t *Table) XY(xLabel, yLabel string) (XY, error) {
	x, err := t.Column(xLabel)
	if err != nil {
		return XY{}, err
	}
	y, err := t.Column(yLabel)
	if err != nil {
		return XY{}, err
	}

	return XY{X: x, Y: y}, nil
}

// DropNonFinite returns a copy of t without the rows that hold NaN or
// infinite values in any column.
func (t *Table) DropNonFinite() *Table {
	keep := make([]bool, t.rows)
	kept := 0
	for r := range t.rows {
		keep[r] = true
		for _, c := range t.cols {
			v := c.Values[r]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				keep[r] = false
				break
			}
		}
		if keep[r] {
			kept++
		}
	}

	out := &Table{
		cols:  make([]Column, len(t.cols)),
		index: t.index,
		rows:  kept,
	}
	for i, c := range t.cols {
		vals := make([]float64, 0, kept)
		for r, v := range c.Values {
			if keep[r] {
				vals = append(vals, v)
			}
		}
		out.cols[i] = Column{Label: c.Label, Values: vals}
	}

	return out
}

// String renders the table header and row count.
func (t *Table) String() string {
	return fmt.Sprintf("Table[%s](%d rows)", strings.Join(t.Labels(), ", "), t.rows)
}

// XY pairs two equal-length columns. It implements plotter.XYer.
type XY struct {
	X, Y []float64
}

var _ plotter.XYer = XY{}

// Len implements plotter.XYer.
func (xy XY) Len() int {
	return len(xy.X)
}

// XY implements plotter.XYer.
func (xy XY) XY(i int) (x, y float64) {
	return xy.X[i], xy.Y[i]
}
