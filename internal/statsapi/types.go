// Package statsapi exposes normalization and model fitting over HTTP.
package statsapi

import (
	"github.com/statforge/rescale/internal/regress"
)

const (
	// MethodMinMax scales values into [0, 1].
	MethodMinMax = "minmax"
	// MethodL1 scales values to unit sum.
	MethodL1 = "l1"
)

// NormalizeRequest asks for a sequence to be rescaled.
type NormalizeRequest struct {
	Method string    `json:"method" validate:"omitempty,oneof=minmax l1"`
	Values []float64 `json:"values" validate:"required,min=2"`
}

// NormalizeResponse carries the rescaled sequence.
type NormalizeResponse struct {
	Method string    `json:"method"`
	Values []float64 `json:"values"`
}

// FitRequest asks for an OLS fit of y ~ x, optionally split by group.
type FitRequest struct {
	X     []float64 `json:"x" validate:"required,min=2"`
	Y     []float64 `json:"y" validate:"required,min=2"`
	Group []float64 `json:"group,omitempty"`
}

// FitResponse carries either one model or one model per group value.
type FitResponse struct {
	Model  *regress.Model           `json:"model,omitempty"`
	Groups map[string]regress.Model `json:"groups,omitempty"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
