package regress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statforge/rescale/internal/frame"
)

func TestFit(t *testing.T) {
	t.Run("recovers a perfect line", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{3, 5, 7, 9, 11} // y = 1 + 2x

		m, err := Fit(x, y)
		require.NoError(t, err)
		assert.InDelta(t, 1, m.Alpha, 1e-9)
		assert.InDelta(t, 2, m.Beta, 1e-9)
		assert.InDelta(t, 1, m.RSquared, 1e-9)
		assert.Equal(t, 5, m.N)
	})

	t.Run("reports imperfect fit below one", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5, 6}
		y := []float64{2, 5, 3, 9, 7, 12}

		m, err := Fit(x, y)
		require.NoError(t, err)
		assert.Greater(t, m.RSquared, 0.0)
		assert.Less(t, m.RSquared, 1.0)
	})

	t.Run("rejects mismatched lengths", func(t *testing.T) {
		_, err := Fit([]float64{1, 2}, []float64{1})
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("rejects a single point", func(t *testing.T) {
		_, err := Fit([]float64{1}, []float64{1})
		assert.ErrorIs(t, err, ErrTooFewPoints)
	})

	t.Run("rejects a constant predictor", func(t *testing.T) {
		_, err := Fit([]float64{3, 3, 3}, []float64{1, 2, 3})
		assert.ErrorIs(t, err, ErrConstantPredictor)
	})
}

func TestFitFrame(t *testing.T) {
	f, err := frame.FromColumns(
		[]string{"wt", "mpg"},
		[][]float64{
			{1, 2, 3, 4},
			{10, 8, 6, 4}, // mpg = 12 - 2*wt
		},
	)
	require.NoError(t, err)

	m, err := FitFrame(f, "wt", "mpg")
	require.NoError(t, err)
	assert.InDelta(t, 12, m.Alpha, 1e-9)
	assert.InDelta(t, -2, m.Beta, 1e-9)

	_, err = FitFrame(f, "hp", "mpg")
	assert.Error(t, err)
}

func TestFitGroups(t *testing.T) {
	f, err := frame.FromColumns(
		[]string{"cyl", "wt", "mpg"},
		[][]float64{
			{4, 4, 4, 8, 8, 8},
			{1, 2, 3, 2, 3, 4},
			{30, 28, 26, 20, 17, 14}, // slope -2 in group 4, -3 in group 8
		},
	)
	require.NoError(t, err)

	models, err := FitGroups(f, "cyl", "wt", "mpg")
	require.NoError(t, err)
	require.Len(t, models, 2)

	assert.InDelta(t, -2, models[4].Beta, 1e-9)
	assert.InDelta(t, -3, models[8].Beta, 1e-9)
	assert.Equal(t, 3, models[4].N)

	t.Run("propagates group failures with context", func(t *testing.T) {
		bad, err := frame.FromColumns(
			[]string{"cyl", "wt", "mpg"},
			[][]float64{
				{4, 4, 8},
				{1, 2, 3},
				{30, 28, 20},
			},
		)
		require.NoError(t, err)

		_, err = FitGroups(bad, "cyl", "wt", "mpg")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTooFewPoints)
		assert.Contains(t, err.Error(), "cyl=8")
	})
}
