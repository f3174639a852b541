// Package frame holds tabular numeric data as ordered, named float64 columns
// of equal length. It is the carrier between dataset loading, normalization
// and regression; heavier numeric work goes through the gonum matrix view.
package frame

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Frame is a fixed set of named float64 columns, all the same length.
type Frame struct {
	names []string
	cols  map[string][]float64
	n     int
}

// New creates an empty frame with the given column order. Duplicate or empty
// names are rejected.
func New(names []string) (*Frame, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("frame: need at least one column")
	}

	cols := make(map[string][]float64, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("frame: empty column name")
		}
		if _, exists := cols[name]; exists {
			return nil, fmt.Errorf("frame: duplicate column %q", name)
		}
		cols[name] = nil
	}

	ordered := make([]string, len(names))
	copy(ordered, names)

	return &Frame{names: ordered, cols: cols}, nil
}

// FromColumns builds a frame from parallel slices. Every column must have the
// same length as the first.
func FromColumns(names []string, columns [][]float64) (*Frame, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("frame: %d names for %d columns", len(names), len(columns))
	}

	f, err := New(names)
	if err != nil {
		return nil, err
	}

	for i, name := range names {
		if i > 0 && len(columns[i]) != len(columns[0]) {
			return nil, fmt.Errorf("frame: column %q has %d rows, want %d", name, len(columns[i]), len(columns[0]))
		}
		col := make([]float64, len(columns[i]))
		copy(col, columns[i])
		f.cols[name] = col
	}
	f.n = len(columns[0])

	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.n }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Column returns the values of the named column. The returned slice is a
// copy, so callers can transform it freely.
func (f *Frame) Column(name string) ([]float64, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("frame: no column %q", name)
	}
	out := make([]float64, len(col))
	copy(out, col)
	return out, nil
}

// SetColumn replaces the named column with values of matching length.
func (f *Frame) SetColumn(name string, values []float64) error {
	if _, ok := f.cols[name]; !ok {
		return fmt.Errorf("frame: no column %q", name)
	}
	if len(values) != f.n {
		return fmt.Errorf("frame: column %q has %d rows, want %d", name, len(values), f.n)
	}
	col := make([]float64, len(values))
	copy(col, values)
	f.cols[name] = col
	return nil
}

// AppendRow adds one value per column, in column order.
func (f *Frame) AppendRow(values []float64) error {
	if len(values) != len(f.names) {
		return fmt.Errorf("frame: row has %d values, want %d", len(values), len(f.names))
	}
	for i, name := range f.names {
		f.cols[name] = append(f.cols[name], values[i])
	}
	f.n++
	return nil
}

// Row returns the values of one row in column order.
func (f *Frame) Row(i int) ([]float64, error) {
	if i < 0 || i >= f.n {
		return nil, fmt.Errorf("frame: row %d out of range [0, %d)", i, f.n)
	}
	out := make([]float64, len(f.names))
	for j, name := range f.names {
		out[j] = f.cols[name][i]
	}
	return out, nil
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	cols := make(map[string][]float64, len(f.names))
	for name, col := range f.cols {
		c := make([]float64, len(col))
		copy(c, col)
		cols[name] = c
	}
	names := make([]string, len(f.names))
	copy(names, f.names)
	return &Frame{names: names, cols: cols, n: f.n}
}

// Split partitions the frame into sub-frames keyed by the distinct values of
// the given column. Row order within each group is preserved.
func (f *Frame) Split(by string) (map[float64]*Frame, error) {
	key, ok := f.cols[by]
	if !ok {
		return nil, fmt.Errorf("frame: no column %q", by)
	}

	groups := make(map[float64]*Frame)
	for i := range f.n {
		g, exists := groups[key[i]]
		if !exists {
			var err error
			g, err = New(f.names)
			if err != nil {
				return nil, err
			}
			groups[key[i]] = g
		}
		row, err := f.Row(i)
		if err != nil {
			return nil, err
		}
		if err := g.AppendRow(row); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

// Stack combines several sequences into one long-format frame with columns
// "id" and "value", where id is the position of the source sequence. This is
// how mapped outputs are folded back into tabular form.
func Stack(series [][]float64) (*Frame, error) {
	f, err := New([]string{"id", "value"})
	if err != nil {
		return nil, err
	}

	for id, seq := range series {
		for _, v := range seq {
			if err := f.AppendRow([]float64{float64(id), v}); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// Matrix returns the named columns as a dense row-major matrix with one row
// per frame row. All columns are requested when names is empty.
func (f *Frame) Matrix(names ...string) (*mat.Dense, error) {
	if len(names) == 0 {
		names = f.names
	}
	if f.n == 0 {
		return nil, fmt.Errorf("frame: cannot build a matrix from an empty frame")
	}

	m := mat.NewDense(f.n, len(names), nil)
	for j, name := range names {
		col, ok := f.cols[name]
		if !ok {
			return nil, fmt.Errorf("frame: no column %q", name)
		}
		m.SetCol(j, col)
	}

	return m, nil
}
