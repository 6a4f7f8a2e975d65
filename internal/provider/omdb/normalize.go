package omdb

import (
	"strings"

	"github.com/lepinkainen/calliope/internal/metadata"
)

// OMDb fills absent fields with the literal "N/A".
func field(s string) string {
	if s == "N/A" {
		return ""
	}
	return s
}

// normalize maps an OMDb payload to the canonical item. Returns nil when the
// payload has no usable title.
func normalize(resp *response) *metadata.Item {
	title := field(resp.Title)
	if title == "" {
		return nil
	}

	item := &metadata.Item{
		MediaType:   metadata.MediaMovie,
		Source:      "omdb",
		Title:       title,
		Year:        metadata.YearFromDate(field(resp.Year)),
		Creator:     field(resp.Director),
		Description: field(resp.Plot),
		PosterURL:   field(resp.Poster),
		ExternalID:  field(resp.ImdbID),
		Details:     map[string]any{},
	}

	if runtime := metadata.RuntimeMinutes(field(resp.Runtime)); runtime > 0 {
		item.Details["runtime"] = runtime
	}
	if rated := field(resp.Rated); rated != "" {
		item.Details["rated"] = rated
	}
	if kind := field(resp.Type); kind != "" {
		item.Details["type"] = kind
	}
	if actors := field(resp.Actors); actors != "" {
		item.Details["actors"] = actors
	}
	if language := field(resp.Language); language != "" {
		item.Details["language"] = language
	}
	if country := field(resp.Country); country != "" {
		item.Details["country"] = country
	}
	if len(item.Details) == 0 {
		item.Details = nil
	}

	if genre := field(resp.Genre); genre != "" {
		item.Categories = strings.Split(genre, ", ")
	}

	return item
}
