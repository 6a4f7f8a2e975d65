package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/lepinkainen/calliope/internal/config"
	"github.com/lepinkainen/calliope/internal/fileutil"
	"github.com/lepinkainen/calliope/internal/metadata"
	"github.com/lepinkainen/calliope/internal/tui"
)

// ResolveCmd looks up one identifier and prints the aggregate as JSON.
type ResolveCmd struct {
	Identifier    string `arg:"" help:"ISBN, IMDb ID, UPC/EAN barcode, or free-text title"`
	Type          string `short:"t" help:"Media type hint (movie, book, music, comic)"`
	Interactive   bool   `short:"i" help:"Pick among candidates with an interactive list"`
	DownloadCover bool   `help:"Download the best match's poster image"`
	CoverDir      string `help:"Directory for downloaded posters" default:"covers"`
	Output        string `short:"o" help:"Write the result to a JSON file instead of stdout"`
	Overwrite     bool   `help:"Overwrite existing output and poster files"`
}

func (r *ResolveCmd) Run(cfg *config.Config) error {
	hint, err := parseHintFlag(r.Type)
	if err != nil {
		return err
	}

	resolver, store, err := newResolver(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	agg, err := resolver.Lookup(context.Background(), r.Identifier, hint)
	if err != nil {
		return err
	}

	if r.Interactive && len(agg.Results) > 1 {
		selection, err := tui.Select(agg.Identifier, agg.Results)
		if err != nil {
			return fmt.Errorf("selection failed: %w", err)
		}
		switch selection.Action {
		case tui.ActionSelected:
			agg.BestMatch = selection.Selection
		case tui.ActionStopped:
			return nil
		}
	}

	if r.DownloadCover && agg.BestMatch != nil && agg.BestMatch.PosterURL != "" {
		result, err := fileutil.DownloadPoster(fileutil.PosterOptions{
			URL:       agg.BestMatch.PosterURL,
			OutputDir: r.CoverDir,
			Filename:  fileutil.BuildPosterFilename(agg.BestMatch.Title),
			Overwrite: r.Overwrite,
			Thumbnail: true,
		})
		if err != nil {
			slog.Warn("Poster download failed", "url", agg.BestMatch.PosterURL, "error", err)
		} else if result != nil && result.Downloaded {
			slog.Info("Saved poster", "path", result.LocalPath)
		}
	}

	if r.Output != "" {
		written, err := fileutil.WriteJSONFile(agg, r.Output, r.Overwrite)
		if err != nil {
			return err
		}
		if !written {
			return fmt.Errorf("output file already exists: %s (use --overwrite)", r.Output)
		}
		return nil
	}

	return printJSON(agg)
}

func parseHintFlag(raw string) (metadata.MediaType, error) {
	if raw == "" {
		return "", nil
	}
	return metadata.ParseMediaType(raw)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
