// Package cmd defines the command line interface for calliope.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"

	"github.com/lepinkainen/calliope/internal/config"
)

// CLI represents the complete command structure for the calliope application
type CLI struct {
	// Global flags
	Config   string `short:"c" help:"Path to config file (defaults to ./config.yaml)"`
	LogLevel string `help:"Log level (debug, info, warn, error)" default:""`

	Serve   ServeCmd   `cmd:"" help:"Run the metadata resolution API server"`
	Resolve ResolveCmd `cmd:"" help:"Resolve a single identifier and print the result"`
	Search  SearchCmd  `cmd:"" help:"Search one provider by title"`
	Cache   CacheCmd   `cmd:"" help:"Manage the resolver cache"`
	Init    InitCmd    `cmd:"" help:"Write a starter config file"`
}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("calliope"),
		kong.Description("Resolve ISBNs, IMDb IDs and barcodes into normalized metadata."),
		kong.UsageOnError(),
	)

	initLogging(cli.LogLevel)

	// init writes the config file, so it must not require one to exist.
	if strings.HasPrefix(ctx.Command(), "init") {
		if err := ctx.Run((*config.Config)(nil)); err != nil {
			slog.Error("Command failed", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := ctx.Run(cfg); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// initLogging installs the human-readable slog handler. The flag wins over
// the CALLIOPE_LOG_LEVEL environment variable; anything unrecognized falls
// back to info.
func initLogging(level string) {
	if level == "" {
		level = os.Getenv("CALLIOPE_LOG_LEVEL")
	}

	slogLevel := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slogLevel,
	})
	slog.SetDefault(slog.New(handler))
}
