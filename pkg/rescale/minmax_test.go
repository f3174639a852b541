package rescale

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestMinMax(t *testing.T) {
	t.Run("scales a simple sequence", func(t *testing.T) {
		got, err := MinMax([]float64{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.5, 1}, got)
	})

	t.Run("scales negative and mixed values", func(t *testing.T) {
		got, err := MinMax([]float64{-10, 0, 10})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.5, 1}, got)
	})

	t.Run("preserves length", func(t *testing.T) {
		in := []float64{4, 8, 15, 16, 23, 42}
		got, err := MinMax(in)
		require.NoError(t, err)
		assert.Len(t, got, len(in))
	})

	t.Run("output spans exactly [0, 1]", func(t *testing.T) {
		in := make([]float64, 100)
		for i := range in {
			in[i] = rand.Float64()*200 - 100
		}
		got, err := MinMax(in)
		require.NoError(t, err)
		assert.InDelta(t, 0, floats.Min(got), 1e-12)
		assert.InDelta(t, 1, floats.Max(got), 1e-12)
		for _, v := range got {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	})

	t.Run("does not modify the input", func(t *testing.T) {
		in := []float64{3, 1, 2}
		_, err := MinMax(in)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 1, 2}, in)
	})

	t.Run("preserves element order", func(t *testing.T) {
		in := []float64{9, -3, 7, 7, 0, 12}
		got, err := MinMax(in)
		require.NoError(t, err)

		inOrder := make([]int, len(in))
		gotOrder := make([]int, len(got))
		for i := range in {
			inOrder[i] = i
			gotOrder[i] = i
		}
		sort.SliceStable(inOrder, func(a, b int) bool { return in[inOrder[a]] < in[inOrder[b]] })
		sort.SliceStable(gotOrder, func(a, b int) bool { return got[gotOrder[a]] < got[gotOrder[b]] })
		assert.Equal(t, inOrder, gotOrder)
	})

	t.Run("is idempotent on scaled input", func(t *testing.T) {
		once, err := MinMax([]float64{5, 1, 3, 9})
		require.NoError(t, err)
		twice, err := MinMax(once)
		require.NoError(t, err)
		assert.InDeltaSlice(t, once, twice, 1e-12)
	})

	t.Run("rejects a single value", func(t *testing.T) {
		_, err := MinMax([]float64{1})
		assert.ErrorIs(t, err, ErrTooFewValues)
	})

	t.Run("rejects an empty sequence", func(t *testing.T) {
		_, err := MinMax(nil)
		assert.ErrorIs(t, err, ErrTooFewValues)
	})

	t.Run("rejects a zero range", func(t *testing.T) {
		_, err := MinMax([]float64{7, 7, 7})
		assert.ErrorIs(t, err, ErrZeroRange)
	})
}

func TestMinMaxMatrix(t *testing.T) {
	t.Run("scales each row independently", func(t *testing.T) {
		in := mat.NewDense(2, 3, []float64{
			1, 2, 3,
			10, 30, 20,
		})
		got, err := MinMaxMatrix(in)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.5, 1}, mat.Row(nil, 0, got))
		assert.Equal(t, []float64{0, 1, 0.5}, mat.Row(nil, 1, got))
	})

	t.Run("aborts on a constant row", func(t *testing.T) {
		in := mat.NewDense(2, 2, []float64{
			1, 2,
			5, 5,
		})
		_, err := MinMaxMatrix(in)
		assert.ErrorIs(t, err, ErrZeroRange)
	})
}

func TestL1(t *testing.T) {
	t.Run("scales to unit sum", func(t *testing.T) {
		got := L1([]float64{1, 1, 2})
		assert.InDelta(t, 1, floats.Sum(got), 1e-12)
		assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.5}, got, 1e-12)
	})

	t.Run("leaves a zero-sum input unchanged", func(t *testing.T) {
		got := L1([]float64{0, 0, 0})
		assert.Equal(t, []float64{0, 0, 0}, got)
	})
}

func BenchmarkMinMax(b *testing.B) {
	values := make([]float64, 250)
	for i := range values {
		values[i] = rand.Float64() * 100
	}

	b.ResetTimer()

	for b.Loop() {
		_, _ = MinMax(values)
	}
}
