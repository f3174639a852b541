package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/statforge/rescale/internal/config"
	"github.com/statforge/rescale/internal/statsapi"
	"github.com/statforge/rescale/internal/utils/logger"
)

func main() {
	logger.Init()
	log.Info().Msg("Starting stats API server...")

	cfg, err := config.LoadConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	server, err := statsapi.NewServer(&cfg.ServerEnvConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown with error")
	}
	log.Info().Msg("server stopped")
}
