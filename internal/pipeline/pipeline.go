// Package pipeline wires normalization, group splitting and per-group model
// fitting into one workflow over a frame.
package pipeline

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/statforge/rescale/internal/frame"
	"github.com/statforge/rescale/internal/regress"
	"github.com/statforge/rescale/pkg/rescale"
	"github.com/statforge/rescale/pkg/seqmap"
)

// Params selects which columns the pipeline touches.
type Params struct {
	ScaleColumns []string // columns to min-max scale in place
	GroupBy      string   // column whose distinct values split the frame
	XColumn      string   // predictor for per-group fits
	YColumn      string   // response for per-group fits
}

// Pipeline runs the scale-split-fit workflow.
type Pipeline struct {
	params Params
}

// Option configures a pipeline.
type Option func(*Pipeline)

// WithScaleColumns sets the columns to min-max scale.
func WithScaleColumns(names ...string) Option {
	return func(p *Pipeline) {
		p.params.ScaleColumns = names
	}
}

// WithGroupBy sets the grouping column.
func WithGroupBy(name string) Option {
	return func(p *Pipeline) {
		p.params.GroupBy = name
	}
}

// WithModel sets the predictor and response columns for per-group fits.
func WithModel(xCol, yCol string) Option {
	return func(p *Pipeline) {
		p.params.XColumn = xCol
		p.params.YColumn = yCol
	}
}

// WithParams replaces the whole parameter set.
func WithParams(params Params) Option {
	return func(p *Pipeline) {
		p.params = params
	}
}

// New builds a pipeline from options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the output of one pipeline run.
type Result struct {
	Scaled       *frame.Frame              // input frame with scale columns replaced
	Models       map[float64]regress.Model // per-group fits, keyed by group value
	GroupWeights map[float64]float64       // group share of rows, L1-normalized
}

// Run scales the configured columns, splits by the group column and fits
// y ~ x inside each group. The input frame is left untouched.
func (p *Pipeline) Run(f *frame.Frame) (Result, error) {
	log.Info().
		Strs("scale_columns", p.params.ScaleColumns).
		Str("group_by", p.params.GroupBy).
		Str("x", p.params.XColumn).
		Str("y", p.params.YColumn).
		Int("rows", f.Len()).
		Msg("running pipeline")

	scaled := f.Clone()

	columns, err := seqmap.TryMap(p.params.ScaleColumns, func(name string) ([]float64, error) {
		col, err := scaled.Column(name)
		if err != nil {
			return nil, err
		}
		out, err := rescale.MinMax(col)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		return out, nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: scale: %w", err)
	}
	for i, name := range p.params.ScaleColumns {
		if err := scaled.SetColumn(name, columns[i]); err != nil {
			return Result{}, fmt.Errorf("pipeline: scale: %w", err)
		}
	}

	result := Result{Scaled: scaled}
	if p.params.GroupBy == "" {
		return result, nil
	}

	models, err := regress.FitGroups(scaled, p.params.GroupBy, p.params.XColumn, p.params.YColumn)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: fit: %w", err)
	}
	result.Models = models

	keys := seqmap.Keys(models)
	sort.Float64s(keys)

	sizes := seqmap.Map(keys, func(key float64) float64 {
		return float64(models[key].N)
	})
	weights := rescale.L1(sizes)

	result.GroupWeights = make(map[float64]float64, len(keys))
	for i, key := range keys {
		result.GroupWeights[key] = weights[i]
		log.Debug().
			Float64("group", key).
			Float64("alpha", models[key].Alpha).
			Float64("beta", models[key].Beta).
			Float64("r_squared", models[key].RSquared).
			Float64("weight", weights[i]).
			Int("n", models[key].N).
			Msg("fitted group model")
	}

	return result, nil
}
