// Package rescale provides min-max and L1 normalization of numeric sequences.
package rescale

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewValues is returned when the input has fewer than two elements.
	// A single value, or an empty sequence, has no range to scale against.
	ErrTooFewValues = errors.New("rescale: need at least two values")

	// ErrZeroRange is returned when every element of the input is equal, so
	// max - min is zero and the scaling is undefined.
	ErrZeroRange = errors.New("rescale: zero range, all values are equal")
)

// MinMax rescales values linearly into [0, 1] using the sequence's own
// minimum and maximum. The input is not modified; the result is a fresh
// slice of the same length where the minimum maps to 0 and the maximum to 1.
func MinMax(values []float64) ([]float64, error) {
	if len(values) < 2 {
		return nil, ErrTooFewValues
	}

	result := make([]float64, len(values))
	copy(result, values)

	min := floats.Min(result)
	max := floats.Max(result)

	if max == min {
		return nil, ErrZeroRange
	}

	floats.AddConst(-min, result)
	floats.Scale(1.0/(max-min), result)

	return result, nil
}

// MinMaxMatrix applies MinMax to each row of the matrix independently and
// returns a new matrix of the same dimensions. The first row that cannot be
// scaled aborts the whole operation.
func MinMaxMatrix(values *mat.Dense) (*mat.Dense, error) {
	rows, cols := values.Dims()

	scaled := mat.NewDense(rows, cols, nil)

	for rowIdx := range rows {
		rowValues := mat.Row(nil, rowIdx, values)
		scaledRow, err := MinMax(rowValues)
		if err != nil {
			return nil, err
		}
		scaled.SetRow(rowIdx, scaledRow)
	}

	return scaled, nil
}
