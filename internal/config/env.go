// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	ServerEnvConfig
	ClientEnvConfig
	DatasetEnvConfig

	Environment string `env:"ENVIRONMENT, default=dev"`
}

// LoadConfig reads the full application configuration from the environment.
func LoadConfig(ctx context.Context) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ServerEnvConfig configures the stats API server.
type ServerEnvConfig struct {
	Address       string `env:"SERVER_ADDRESS, default=0.0.0.0"`
	Port          int    `env:"SERVER_PORT, default=8080"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT, default=1048576"`
}

// ClientEnvConfig configures the stats API client.
type ClientEnvConfig struct {
	ClientTimeout   time.Duration `env:"CLIENT_TIMEOUT, default=30s"`
	ClientRetryMax  int           `env:"CLIENT_RETRY_MAX, default=3"`
	ClientRetryWait time.Duration `env:"CLIENT_RETRY_WAIT, default=500ms"`
}

// DatasetEnvConfig configures remote dataset fetching.
type DatasetEnvConfig struct {
	FetchTimeout      time.Duration `env:"DATASET_FETCH_TIMEOUT, default=30s"`
	FetchRetryMax     int           `env:"DATASET_FETCH_RETRY_MAX, default=5"`
	FetchRetryWaitMin time.Duration `env:"DATASET_FETCH_RETRY_WAIT_MIN, default=500ms"`
	FetchRetryWaitMax time.Duration `env:"DATASET_FETCH_RETRY_WAIT_MAX, default=20s"`
}
