package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/lepinkainen/calliope/internal/config"
	"github.com/lepinkainen/calliope/internal/metadata"
)

// SearchCmd queries a single provider by title.
type SearchCmd struct {
	Type  string   `arg:"" help:"Media type (movie, book, music, comic)"`
	Query []string `arg:"" help:"Title to search for"`
}

func (s *SearchCmd) Run(cfg *config.Config) error {
	mediaType, err := metadata.ParseMediaType(s.Type)
	if err != nil {
		return err
	}

	resolver, store, err := newResolver(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	query := strings.Join(s.Query, " ")
	item, err := resolver.SearchByTitle(context.Background(), mediaType, query)
	if err != nil {
		return err
	}

	if item == nil {
		fmt.Printf("No %s match for %q\n", mediaType, query)
		return nil
	}
	return printJSON(item)
}
