package dataset

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/statforge/rescale/internal/config"
	"github.com/statforge/rescale/internal/frame"
)

// Fetcher downloads remote CSV datasets with retries.
type Fetcher struct {
	httpClient *retryablehttp.Client
}

// NewFetcher builds a fetcher from the dataset environment configuration.
func NewFetcher(cfg *config.DatasetEnvConfig) (*Fetcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("dataset: configuration cannot be nil")
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.FetchRetryMax
	client.HTTPClient.Timeout = cfg.FetchTimeout
	client.RetryWaitMin = cfg.FetchRetryWaitMin
	client.RetryWaitMax = cfg.FetchRetryWaitMax
	client.Logger = nil

	log.Debug().
		Int("retry_max", client.RetryMax).
		Str("timeout", client.HTTPClient.Timeout.String()).
		Str("retry_wait_min", client.RetryWaitMin.String()).
		Str("retry_wait_max", client.RetryWaitMax.String()).
		Msg("dataset fetcher initialized")

	return &Fetcher{httpClient: client}, nil
}

// Fetch downloads a CSV document and decodes it into a frame.
func (f *Fetcher) Fetch(url string) (*frame.Frame, error) {
	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	log.Debug().Str("url", url).Msg("fetching dataset")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("dataset fetch failed")
		return nil, fmt.Errorf("dataset: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error().Int("status", resp.StatusCode).Str("url", url).Msg("dataset fetch non-200")
		return nil, fmt.Errorf("dataset: fetch %s: status %d: %s", url, resp.StatusCode, bytes.TrimSpace(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dataset: read body: %w", err)
	}

	log.Debug().Str("url", url).Int("bytes", len(data)).Msg("dataset fetched")

	return Read(bytes.NewReader(data))
}
