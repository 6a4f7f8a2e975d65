// Package provider defines the contract shared by the catalog provider
// adapters and the cache-through lookup flow they all follow.
package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/lepinkainen/calliope/internal/cache"
	"github.com/lepinkainen/calliope/internal/fetch"
	"github.com/lepinkainen/calliope/internal/metadata"
)

// Provider is one external catalog service. Every lookup returns the single
// best normalized item the provider has for the query, or nil when it has no
// usable match. Adapters never return an item without a title.
//
// A disabled provider (no API key configured) returns nil immediately from
// every lookup, without touching the cache or the network.
type Provider interface {
	Name() string
	MediaType() metadata.MediaType
	Enabled() bool

	// LookupByCode looks up by barcode-style code (ISBN, UPC, EAN).
	// Providers without a code endpoint fall back to a text search.
	LookupByCode(ctx context.Context, code string) (*metadata.Item, error)

	// LookupByID looks up by the provider's external ID (e.g. an IMDb ID).
	LookupByID(ctx context.Context, externalID string) (*metadata.Item, error)

	// Search looks up by free-text query.
	Search(ctx context.Context, query string) (*metadata.Item, error)
}

// Deps bundles the collaborators every adapter needs.
type Deps struct {
	Fetch *fetch.Client
	Cache cache.Store
	TTL   time.Duration
}

// FetchFunc produces a normalized item from the network. Returning (nil, nil)
// means the provider had no match; that negative result is cached too.
type FetchFunc func(ctx context.Context) (*metadata.Item, error)

// Cached runs a provider lookup through the cache: fingerprint the query,
// return a cached result (positive or negative) when present, otherwise fetch
// and store. Fetch failures are returned uncached so the next call retries.
func Cached(ctx context.Context, deps Deps, name string, params map[string]string, fn FetchFunc) (*metadata.Item, error) {
	key := cache.Fingerprint(name, params)

	if item, hit := cache.GetItem(deps.Cache, key); hit {
		slog.Debug("Cache hit", "provider", name, "key", key)
		return item, nil
	}

	slog.Debug("Cache miss, fetching", "provider", name, "key", key)
	item, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	ttl := deps.TTL
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	cache.SetItem(deps.Cache, key, item, ttl)
	return item, nil
}
