// Package omdb adapts the OMDb movie/TV catalog to the provider contract.
package omdb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/lepinkainen/calliope/internal/config"
	"github.com/lepinkainen/calliope/internal/metadata"
	"github.com/lepinkainen/calliope/internal/provider"
	"github.com/lepinkainen/calliope/internal/ratelimit"
)

const defaultBaseURL = "https://www.omdbapi.com"

// OMDb free tier allows 1000 requests/day; 1 req/sec stays well clear.
const requestsPerSecond = 1

// Client is the OMDb provider adapter.
type Client struct {
	cfg     config.ProviderConfig
	deps    provider.Deps
	baseURL string
	limiter *ratelimit.Limiter
}

// New creates an OMDb adapter.
func New(cfg config.ProviderConfig, deps provider.Deps) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		cfg:     cfg,
		deps:    deps,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		limiter: ratelimit.New("OMDb", requestsPerSecond),
	}
}

func (c *Client) Name() string                  { return "omdb" }
func (c *Client) MediaType() metadata.MediaType { return metadata.MediaMovie }
func (c *Client) Enabled() bool                 { return c.cfg.Enabled() }

// LookupByID fetches a title directly by IMDb ID.
func (c *Client) LookupByID(ctx context.Context, externalID string) (*metadata.Item, error) {
	if !c.Enabled() {
		return nil, nil
	}

	params := map[string]string{"i": externalID}
	return provider.Cached(ctx, c.deps, c.Name(), params, func(ctx context.Context) (*metadata.Item, error) {
		endpoint := fmt.Sprintf("%s/?i=%s&apikey=%s", c.baseURL, url.QueryEscape(externalID), url.QueryEscape(c.cfg.APIKey))
		return c.fetch(ctx, endpoint)
	})
}

// Search looks up a title by free text.
func (c *Client) Search(ctx context.Context, query string) (*metadata.Item, error) {
	if !c.Enabled() {
		return nil, nil
	}

	params := map[string]string{"t": query}
	return provider.Cached(ctx, c.deps, c.Name(), params, func(ctx context.Context) (*metadata.Item, error) {
		endpoint := fmt.Sprintf("%s/?t=%s&apikey=%s", c.baseURL, url.QueryEscape(query), url.QueryEscape(c.cfg.APIKey))
		return c.fetch(ctx, endpoint)
	})
}

// LookupByCode treats a barcode as a title search; OMDb has no barcode
// endpoint, so a UPC lookup usually yields no match here and the music
// provider carries the result.
func (c *Client) LookupByCode(ctx context.Context, code string) (*metadata.Item, error) {
	return c.Search(ctx, code)
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*metadata.Item, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	var resp response
	if err := c.deps.Fetch.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Response == "False" {
		slog.Debug("OMDb: no match", "error", resp.Error)
		return nil, nil
	}

	return normalize(&resp), nil
}
