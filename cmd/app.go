package cmd

import (
	"fmt"

	"github.com/lepinkainen/calliope/internal/cache"
	"github.com/lepinkainen/calliope/internal/config"
	"github.com/lepinkainen/calliope/internal/fetch"
	"github.com/lepinkainen/calliope/internal/provider"
	"github.com/lepinkainen/calliope/internal/provider/comicvine"
	"github.com/lepinkainen/calliope/internal/provider/discogs"
	"github.com/lepinkainen/calliope/internal/provider/googlebooks"
	"github.com/lepinkainen/calliope/internal/provider/omdb"
	"github.com/lepinkainen/calliope/internal/resolve"
)

// openCache builds the cache backend selected in the configuration.
func openCache(cfg *config.Config) (cache.Store, error) {
	if cfg.CacheBackend == "memory" {
		return cache.NewMemory(), nil
	}
	store, err := cache.NewSQLite(cfg.CacheFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return store, nil
}

// newResolver wires the shared HTTP client, cache and the four provider
// adapters into a resolver. The caller owns closing the returned store.
func newResolver(cfg *config.Config) (*resolve.Resolver, cache.Store, error) {
	store, err := openCache(cfg)
	if err != nil {
		return nil, nil, err
	}

	client := fetch.New(fetch.Options{
		UserAgent:          cfg.UserAgent,
		InsecureSkipVerify: cfg.Debug && cfg.InsecureSkipVerify,
	})

	deps := provider.Deps{
		Fetch: client,
		Cache: store,
		TTL:   cfg.CacheTTL,
	}

	resolver := resolve.New(
		omdb.New(cfg.OMDB, deps),
		googlebooks.New(cfg.GoogleBooks, deps),
		discogs.New(cfg.Discogs, deps),
		comicvine.New(cfg.ComicVine, deps),
		cfg.ResolverTimeout,
	)
	return resolver, store, nil
}
