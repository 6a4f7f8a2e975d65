// Package comicvine adapts the Comic Vine issue search to the provider
// contract. Comic Vine requires a descriptive User-Agent; the default Go
// client string is rejected.
package comicvine

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

const defaultBaseURL = "https://comicvine.gamespot.com/api"

// Comic Vine enforces 200 requests per resource per hour.
const requestsPerSecond = 1

// Client is the Comic Vine provider adapter.
type Client struct {
	cfg     config.ProviderConfig
	deps    provider.Deps
	baseURL string
	limiter *ratelimit.Limiter
}

// New creates a Comic Vine adapter.
func New(cfg config.ProviderConfig, deps provider.Deps) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		cfg:     cfg,
		deps:    deps,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		limiter: ratelimit.New("ComicVine", requestsPerSecond),
	}
}

func (c *Client) Name() string                  { return "comicvine" }
func (c *Client) MediaType() metadata.MediaType { return metadata.MediaComic }
func (c *Client) Enabled() bool                 { return c.cfg.Enabled() }

// Search looks up a comic issue by free-text query.
func (c *Client) Search(ctx context.Context, query string) (*metadata.Item, error) {
	if !c.Enabled() {
		return nil, nil
	}

	params := map[string]string{"query": query}
	return provider.Cached(ctx, c.deps, c.Name(), params, func(ctx context.Context) (*metadata.Item, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}

		values := url.Values{
			"api_key":   {c.cfg.APIKey},
			"format":    {"json"},
			"query":     {query},
			"resources": {"issue"},
			"limit":     {"5"},
		}
		endpoint := fmt.Sprintf("%s/search/?%s", c.baseURL, values.Encode())

		var resp searchResponse
		if err := c.deps.Fetch.GetJSON(ctx, endpoint, nil, &resp); err != nil {
			return nil, err
		}

		if resp.StatusCode != statusOK {
			return nil, fmt.Errorf("comicvine error %d: %s", resp.StatusCode, resp.Error)
		}
		if len(resp.Results) == 0 {
			return nil, nil
		}
		return normalize(&resp.Results[0]), nil
	})
}

// LookupByCode treats a barcode as a text query; Comic Vine has no barcode
// index.
func (c *Client) LookupByCode(ctx context.Context, code string) (*metadata.Item, error) {
	return c.Search(ctx, code)
}

// LookupByID treats the external ID as a text query.
func (c *Client) LookupByID(ctx context.Context, externalID string) (*metadata.Item, error) {
	return c.Search(ctx, externalID)
}
