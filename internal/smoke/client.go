package smoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/okian/medalboard/internal/domain/dashboard"
	"github.com/okian/medalboard/internal/domain/facets"
	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/types"
)

// APIError is the JSON error body returned by the service.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client talks to a running medalboard service.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for baseURL.
func NewClient(baseURL string, cfg Config) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// Health checks that the service answers on /healthz.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnhealthy, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode())
	}
	return nil
}

// TopCountries reads the configured tally size from /stats.
func (c *Client) TopCountries(ctx context.Context) (int, error) {
	var stats map[string]any
	if err := c.get(ctx, "/stats", nil, &stats); err != nil {
		return 0, err
	}
	n, ok := stats["topCountries"].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: stats without topCountries", ErrUnexpectedStatus)
	}
	return int(n), nil
}

// Options fetches the option lists for q.
func (c *Client) Options(ctx context.Context, q url.Values) (facets.Options, error) {
	var out facets.Options
	err := c.get(ctx, "/api/options", q, &out)
	return out, err
}

// Selection fetches the dashboard artifacts for q.
func (c *Client) Selection(ctx context.Context, q url.Values) (dashboard.Artifacts, error) {
	var out dashboard.Artifacts
	err := c.get(ctx, "/api/selection", q, &out)
	return out, err
}

// Records fetches one page of the filtered records for q.
func (c *Client) Records(ctx context.Context, q url.Values) (types.Page[model.Record], error) {
	var out types.Page[model.Record]
	err := c.get(ctx, "/api/records", q, &out)
	return out, err
}

// Status issues a GET and returns only the status code and error body.
func (c *Client) Status(ctx context.Context, path string, q url.Values) (int, APIError, error) {
	var apiErr APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return 0, apiErr, err
	}
	return resp.StatusCode(), apiErr, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	var apiErr APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q).
		SetResult(out).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: GET %s: %d %s %s", ErrUnexpectedStatus, path, resp.StatusCode(), apiErr.Code, apiErr.Message)
	}
	return nil
}
