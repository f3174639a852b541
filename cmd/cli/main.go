package main

import (
	"context"
	"flag"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/statforge/rescale/internal/config"
	"github.com/statforge/rescale/internal/dataset"
	"github.com/statforge/rescale/internal/frame"
	"github.com/statforge/rescale/internal/pipeline"
	"github.com/statforge/rescale/internal/utils/logger"
)

func main() {
	logger.Init()

	var (
		file    = flag.String("file", "", "path to a numeric CSV dataset")
		url     = flag.String("url", "", "URL of a numeric CSV dataset")
		scale   = flag.String("scale", "", "comma-separated columns to min-max scale")
		groupBy = flag.String("group-by", "", "column to split on before fitting")
		xCol    = flag.String("x", "", "predictor column")
		yCol    = flag.String("y", "", "response column")
		plot    = flag.String("plot", "", "column to bar-plot after scaling")
	)
	flag.Parse()

	if *file == "" && *url == "" {
		log.Fatal().Msg("one of -file or -url is required")
	}

	cfg, err := config.LoadConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	f, err := loadDataset(cfg, *file, *url)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}
	log.Info().Int("rows", f.Len()).Strs("columns", f.Names()).Msg("dataset loaded")

	var opts []pipeline.Option
	if *scale != "" {
		opts = append(opts, pipeline.WithScaleColumns(splitColumns(*scale)...))
	}
	if *groupBy != "" {
		opts = append(opts, pipeline.WithGroupBy(*groupBy), pipeline.WithModel(*xCol, *yCol))
	}

	result, err := pipeline.New(opts...).Run(f)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}

	for key, model := range result.Models {
		log.Info().
			Float64("group", key).
			Float64("alpha", model.Alpha).
			Float64("beta", model.Beta).
			Float64("r_squared", model.RSquared).
			Float64("weight", result.GroupWeights[key]).
			Int("n", model.N).
			Msg("group model")
	}

	if *plot != "" {
		values, err := result.Scaled.Column(*plot)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot plot column")
		}
		pipeline.PlotColumnTerminal(values, *plot)
	}
}

func loadDataset(cfg *config.AppConfig, file, url string) (*frame.Frame, error) {
	if file != "" {
		return dataset.Load(file)
	}

	fetcher, err := dataset.NewFetcher(&cfg.DatasetEnvConfig)
	if err != nil {
		return nil, err
	}
	return fetcher.Fetch(url)
}

func splitColumns(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
