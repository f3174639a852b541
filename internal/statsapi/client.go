package statsapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/statforge/rescale/internal/config"
)

// Client is a REST client for the stats API.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds a client from the client environment configuration.
func NewClient(baseURL string, cfg *config.ClientEnvConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("statsapi: configuration cannot be nil")
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTimeout(cfg.ClientTimeout).
		SetRetryCount(cfg.ClientRetryMax).
		SetRetryWaitTime(cfg.ClientRetryWait).
		SetRetryMaxWaitTime(cfg.ClientRetryWait * 2)

	return &Client{httpClient: cli}, nil
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.httpClient.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("statsapi: health: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("statsapi: health status %d", resp.StatusCode())
	}
	return nil
}

// Normalize rescales a sequence on the server.
func (c *Client) Normalize(ctx context.Context, req NormalizeRequest) (NormalizeResponse, error) {
	var out NormalizeResponse
	if err := c.post(ctx, "/normalize", req, &out); err != nil {
		return NormalizeResponse{}, err
	}
	return out, nil
}

// Fit fits a model on the server.
func (c *Client) Fit(ctx context.Context, req FitRequest) (FitResponse, error) {
	var out FitResponse
	if err := c.post(ctx, "/fit", req, &out); err != nil {
		return FitResponse{}, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader(headerContentType, "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("stats api request failed")
		return fmt.Errorf("statsapi: post %s: %w", path, err)
	}

	data := resp.Body()
	if strings.Contains(strings.ToLower(resp.Header().Get(headerContentEncoding)), "zstd") {
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("statsapi: zstd reader: %w", err)
		}
		defer r.Close()

		data, err = io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("statsapi: zstd decompress: %w", err)
		}
	}

	if resp.IsError() {
		var apiErr ErrorResponse
		if err := sonic.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("statsapi: post %s: status %d: %s", path, resp.StatusCode(), apiErr.Error)
		}
		return fmt.Errorf("statsapi: post %s: status %d", path, resp.StatusCode())
	}

	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("statsapi: unmarshal response: %w", err)
	}
	return nil
}

const (
	headerContentType     = "Content-Type"
	headerContentEncoding = "Content-Encoding"
)
