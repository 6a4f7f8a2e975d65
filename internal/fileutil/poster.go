package fileutil

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

const (
	thumbnailWidth  = 200
	thumbnailHeight = 300
)

// PosterOptions holds options for downloading poster images.
type PosterOptions struct {
	// URL is the source URL of the poster image
	URL string
	// OutputDir is the directory where the poster will be saved
	OutputDir string
	// Filename is the name of the poster file (e.g., "Title - poster.jpg")
	Filename string
	// Overwrite forces re-downloading even if the poster exists
	Overwrite bool
	// Thumbnail additionally writes a 200x300 thumbnail next to the poster
	Thumbnail bool
}

// PosterResult holds the result of a poster download.
type PosterResult struct {
	// Downloaded indicates if a new file was downloaded
	Downloaded bool
	// LocalPath is the full path to the downloaded poster
	LocalPath string
	// ThumbnailPath is the full path to the thumbnail, when one was written
	ThumbnailPath string
}

// DownloadPoster downloads a poster image into the output directory, with an
// optional scaled-down thumbnail. Downloading is skipped when the file already
// exists and Overwrite is false. An empty URL is a no-op, not an error.
func DownloadPoster(opts PosterOptions) (*PosterResult, error) {
	if opts.URL == "" {
		return nil, nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	localPath := filepath.Join(opts.OutputDir, opts.Filename)
	result := &PosterResult{LocalPath: localPath}

	if FileExists(localPath) && !opts.Overwrite {
		slog.Debug("Poster already exists, skipping download", "path", localPath)
		return result, nil
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download poster: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d downloading poster from %s", resp.StatusCode, opts.URL)
	}

	file, err := os.Create(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create poster file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to write poster file: %w", err)
	}

	slog.Info("Downloaded poster", "path", localPath)
	result.Downloaded = true

	if opts.Thumbnail {
		thumbPath, err := writeThumbnail(localPath)
		if err != nil {
			return nil, err
		}
		result.ThumbnailPath = thumbPath
	}

	return result, nil
}

// writeThumbnail scales the poster down to fit the thumbnail box and writes
// it next to the original with a "- thumb" suffix.
func writeThumbnail(posterPath string) (string, error) {
	img, err := imaging.Open(posterPath)
	if err != nil {
		return "", fmt.Errorf("failed to open poster for thumbnail: %w", err)
	}

	thumb := imaging.Fit(img, thumbnailWidth, thumbnailHeight, imaging.Lanczos)
	thumbPath := thumbnailPath(posterPath)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	slog.Debug("Wrote thumbnail", "path", thumbPath)
	return thumbPath, nil
}

func thumbnailPath(posterPath string) string {
	ext := filepath.Ext(posterPath)
	return strings.TrimSuffix(posterPath, ext) + " - thumb" + ext
}

// BuildPosterFilename creates a standard poster filename from a title.
// Returns: "Title - poster.jpg"
func BuildPosterFilename(title string) string {
	return SanitizeFilename(title) + " - poster.jpg"
}
