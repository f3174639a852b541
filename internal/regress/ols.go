// Package regress fits ordinary least squares models over frames and frame
// splits. The math is delegated to gonum/stat; this package owns the input
// guards and the per-group iteration.
package regress

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/statforge/rescale/internal/frame"
)

var (
	// ErrTooFewPoints is returned when fewer than two observations are given.
	ErrTooFewPoints = errors.New("regress: need at least two points")

	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("regress: x and y lengths differ")

	// ErrConstantPredictor is returned when the predictor has zero variance,
	// so no slope can be estimated.
	ErrConstantPredictor = errors.New("regress: predictor is constant")
)

// Model is a fitted simple linear regression y = Alpha + Beta*x.
type Model struct {
	Alpha    float64 `json:"alpha"`
	Beta     float64 `json:"beta"`
	RSquared float64 `json:"r_squared"`
	N        int     `json:"n"`
}

// Fit estimates an OLS line through the points and reports the coefficient
// of determination alongside the coefficients.
func Fit(x, y []float64) (Model, error) {
	if len(x) != len(y) {
		return Model{}, ErrLengthMismatch
	}
	if len(x) < 2 {
		return Model{}, ErrTooFewPoints
	}
	if floats.Min(x) == floats.Max(x) {
		return Model{}, ErrConstantPredictor
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)

	estimates := make([]float64, len(x))
	for i, xi := range x {
		estimates[i] = alpha + beta*xi
	}

	return Model{
		Alpha:    alpha,
		Beta:     beta,
		RSquared: stat.RSquaredFrom(estimates, y, nil),
		N:        len(x),
	}, nil
}

// FitFrame fits y ~ x using two columns of a frame.
func FitFrame(f *frame.Frame, xCol, yCol string) (Model, error) {
	x, err := f.Column(xCol)
	if err != nil {
		return Model{}, err
	}
	y, err := f.Column(yCol)
	if err != nil {
		return Model{}, err
	}
	return Fit(x, y)
}

// FitGroups splits the frame by a column and fits y ~ x within each group.
// A group that cannot be fitted fails the whole call, with the group key in
// the error.
func FitGroups(f *frame.Frame, by, xCol, yCol string) (map[float64]Model, error) {
	groups, err := f.Split(by)
	if err != nil {
		return nil, err
	}

	models := make(map[float64]Model, len(groups))
	for key, g := range groups {
		m, err := FitFrame(g, xCol, yCol)
		if err != nil {
			return nil, fmt.Errorf("regress: group %s=%g: %w", by, key, err)
		}
		models[key] = m
	}

	return models, nil
}
