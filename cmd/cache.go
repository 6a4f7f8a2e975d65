package cmd

import (
	"fmt"

	"github.com/lepinkainen/calliope/internal/cache"
	"github.com/lepinkainen/calliope/internal/config"
)

// CacheCmd groups the cache maintenance subcommands. They operate on the
// configured persistent cache; a memory backend has nothing to manage.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove cached provider results"`
	Stats CacheStatsCmd `cmd:"" help:"Show cache entry counts"`
}

// CacheClearCmd empties the cache, or prunes only expired entries.
type CacheClearCmd struct {
	Expired bool `help:"Remove only entries past their TTL"`
}

func (c *CacheClearCmd) Run(cfg *config.Config) error {
	store, err := openCache(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if c.Expired {
		sqlite, ok := store.(*cache.SQLite)
		if !ok {
			return fmt.Errorf("--expired requires the sqlite cache backend")
		}
		removed, err := sqlite.ClearExpired()
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d expired entries\n", removed)
		return nil
	}

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Cache cleared")
	return nil
}

// CacheStatsCmd reports how many entries the cache holds.
type CacheStatsCmd struct{}

func (c *CacheStatsCmd) Run(cfg *config.Config) error {
	store, err := openCache(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	switch s := store.(type) {
	case *cache.SQLite:
		count, err := s.Len()
		if err != nil {
			return err
		}
		fmt.Printf("Backend: sqlite (%s)\nEntries: %d\n", cfg.CacheFile, count)
	case *cache.Memory:
		fmt.Printf("Backend: memory\nEntries: %d\n", s.Len())
	default:
		return fmt.Errorf("unknown cache backend")
	}
	return nil
}
