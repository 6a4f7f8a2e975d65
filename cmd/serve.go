package cmd

import (
	"context"
	"log/slog"

	"github.com/lepinkainen/calliope/internal/config"
	"github.com/lepinkainen/calliope/internal/server"
)

// ServeCmd runs the HTTP API server.
type ServeCmd struct {
	Listen string `short:"l" help:"Listen address (overrides config, e.g. :8080)"`
}

func (s *ServeCmd) Run(cfg *config.Config) error {
	resolver, store, err := newResolver(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	listen := cfg.Listen
	if s.Listen != "" {
		listen = s.Listen
	}

	slog.Info("Starting calliope", "providers", resolver.EnabledProviders(), "cache", cfg.CacheBackend)

	srv := server.New(server.NewHandler(resolver), listen, cfg.Debug)
	return srv.Run(context.Background())
}
