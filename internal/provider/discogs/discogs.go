// Package discogs adapts the Discogs release database to the provider
// contract. Discogs requires both an auth token and a descriptive User-Agent;
// requests without either are rejected.
package discogs

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

const defaultBaseURL = "https://api.discogs.com"

// Discogs allows 60 authenticated requests per minute.
const requestsPerSecond = 1

// Client is the Discogs provider adapter.
type Client struct {
	cfg     config.ProviderConfig
	deps    provider.Deps
	baseURL string
	limiter *ratelimit.Limiter
}

// New creates a Discogs adapter.
func New(cfg config.ProviderConfig, deps provider.Deps) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		cfg:     cfg,
		deps:    deps,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		limiter: ratelimit.New("Discogs", requestsPerSecond),
	}
}

func (c *Client) Name() string                  { return "discogs" }
func (c *Client) MediaType() metadata.MediaType { return metadata.MediaMusic }
func (c *Client) Enabled() bool                 { return c.cfg.Enabled() }

// LookupByCode looks up a release by barcode.
func (c *Client) LookupByCode(ctx context.Context, code string) (*metadata.Item, error) {
	return c.search(ctx, map[string]string{"barcode": code})
}

// Search looks up a release by free-text query.
func (c *Client) Search(ctx context.Context, query string) (*metadata.Item, error) {
	return c.search(ctx, map[string]string{"q": query})
}

// LookupByID treats the external ID as a free-text query; release-id fetches
// need a separate endpoint the resolver never routes to.
func (c *Client) LookupByID(ctx context.Context, externalID string) (*metadata.Item, error) {
	return c.Search(ctx, externalID)
}

func (c *Client) search(ctx context.Context, params map[string]string) (*metadata.Item, error) {
	if !c.Enabled() {
		return nil, nil
	}

	return provider.Cached(ctx, c.deps, c.Name(), params, func(ctx context.Context) (*metadata.Item, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}

		values := url.Values{"type": {"release"}}
		for name, value := range params {
			values.Set(name, value)
		}
		endpoint := fmt.Sprintf("%s/database/search?%s", c.baseURL, values.Encode())

		headers := map[string]string{
			"Authorization": "Bearer " + c.cfg.APIKey,
		}

		var resp searchResponse
		if err := c.deps.Fetch.GetJSON(ctx, endpoint, headers, &resp); err != nil {
			return nil, err
		}

		if len(resp.Results) == 0 {
			return nil, nil
		}
		return normalize(&resp.Results[0]), nil
	})
}
