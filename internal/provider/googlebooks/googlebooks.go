// Package googlebooks adapts the Google Books volumes API to the provider
// contract.
package googlebooks

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/lepinkainen/calliope/internal/config"
	"github.com/lepinkainen/calliope/internal/metadata"
	"github.com/lepinkainen/calliope/internal/provider"
	"github.com/lepinkainen/calliope/internal/ratelimit"
)

const (
	defaultBaseURL    = "https://www.googleapis.com/books/v1"
	maxResults        = 5
	requestsPerSecond = 2
)

// Client is the Google Books provider adapter.
type Client struct {
	cfg     config.ProviderConfig
	deps    provider.Deps
	baseURL string
	limiter *ratelimit.Limiter
}

// New creates a Google Books adapter.
func New(cfg config.ProviderConfig, deps provider.Deps) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		cfg:     cfg,
		deps:    deps,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		limiter: ratelimit.New("GoogleBooks", requestsPerSecond),
	}
}

func (c *Client) Name() string                  { return "googlebooks" }
func (c *Client) MediaType() metadata.MediaType { return metadata.MediaBook }
func (c *Client) Enabled() bool                 { return c.cfg.Enabled() }

// LookupByCode looks up a book by ISBN.
func (c *Client) LookupByCode(ctx context.Context, code string) (*metadata.Item, error) {
	return c.query(ctx, "isbn:"+code)
}

// Search looks up a book by free-text query.
func (c *Client) Search(ctx context.Context, query string) (*metadata.Item, error) {
	return c.query(ctx, query)
}

// LookupByID routes to a volume-id query.
func (c *Client) LookupByID(ctx context.Context, externalID string) (*metadata.Item, error) {
	return c.query(ctx, "id:"+externalID)
}

func (c *Client) query(ctx context.Context, q string) (*metadata.Item, error) {
	if !c.Enabled() {
		return nil, nil
	}

	params := map[string]string{"q": q}
	return provider.Cached(ctx, c.deps, c.Name(), params, func(ctx context.Context) (*metadata.Item, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}

		endpoint := fmt.Sprintf("%s/volumes?q=%s&maxResults=%d&key=%s",
			c.baseURL, url.QueryEscape(q), maxResults, url.QueryEscape(c.cfg.APIKey))

		var resp volumesResponse
		if err := c.deps.Fetch.GetJSON(ctx, endpoint, nil, &resp); err != nil {
			return nil, err
		}

		if resp.TotalItems == 0 || len(resp.Items) == 0 {
			return nil, nil
		}
		return normalize(&resp.Items[0]), nil
	})
}
