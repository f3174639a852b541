package rescale

import (
	"gonum.org/v1/gonum/floats"
)

// L1 scales values so they sum to 1. Inputs that sum to zero or less are
// returned unchanged (as a copy), since there is no meaningful mass to
// distribute.
func L1(values []float64) []float64 {
	result := make([]float64, len(values))
	copy(result, values)

	sum := floats.Sum(result)
	if sum > 0 {
		floats.Scale(1.0/sum, result)
	}

	return result
}
