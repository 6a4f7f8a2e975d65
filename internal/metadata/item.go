// Package metadata defines the canonical item schema shared by all catalog
// providers, plus the completeness scoring used to pick a best match.
package metadata

import "fmt"

// MediaType identifies which kind of physical media an item describes.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaBook  MediaType = "book"
	MediaMusic MediaType = "music"
	MediaComic MediaType = "comic"
)

// ParseMediaType converts a user-supplied string into a MediaType.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaMovie, MediaBook, MediaMusic, MediaComic:
		return MediaType(s), nil
	}
	return "", fmt.Errorf("unknown media type: %q", s)
}

// Item is the provider-agnostic metadata record produced by a normalizer.
// Title is never empty on an item that is returned as a candidate; a provider
// whose payload lacks a usable title yields no item at all.
type Item struct {
	MediaType   MediaType      `json:"media_type"`
	Source      string         `json:"source"`
	Title       string         `json:"title"`
	Year        int            `json:"year,omitempty"`
	Creator     string         `json:"creator,omitempty"`
	Description string         `json:"description,omitempty"`
	PosterURL   string         `json:"poster_url,omitempty"`
	ExternalID  string         `json:"external_id,omitempty"`
	Details     map[string]any `json:"media_details,omitempty"`
	Categories  []string       `json:"categories,omitempty"`
}
