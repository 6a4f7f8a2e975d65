package discogs

import (
	"strconv"
	"strings"

	"github.com/lepinkainen/calliope/internal/metadata"
)

// formatNames maps Discogs release formats to the canonical format labels.
// Anything not listed falls back to "unknown".
var formatNames = map[string]string{
	"CD":       "cd",
	"Vinyl":    "vinyl",
	"LP":       "vinyl",
	"Cassette": "cassette",
	"SACD":     "cd",
	"DVD":      "dvd",
	"Blu-ray":  "blu-ray",
	"File":     "digital",
}

func releaseFormat(formats []string) string {
	for _, f := range formats {
		if name, ok := formatNames[f]; ok {
			return name
		}
	}
	return "unknown"
}

// normalize maps a Discogs search result to the canonical item. Returns nil
// when the result has no usable title.
func normalize(r *searchResult) *metadata.Item {
	artist, title := splitTitle(r.Title)
	if title == "" {
		return nil
	}

	item := &metadata.Item{
		MediaType:  metadata.MediaMusic,
		Source:     "discogs",
		Title:      title,
		Year:       metadata.YearFromDate(r.Year),
		Creator:    artist,
		PosterURL:  r.CoverImage,
		ExternalID: strconv.Itoa(r.ID),
		Details:    map[string]any{},
	}

	item.Details["format"] = releaseFormat(r.Format)
	if r.CatNo != "" {
		item.Details["catalog_number"] = r.CatNo
	}
	if len(r.Label) > 0 {
		item.Details["label"] = r.Label[0]
	}
	if r.Country != "" {
		item.Details["country"] = r.Country
	}
	if len(r.Barcode) > 0 {
		item.Details["barcode"] = r.Barcode[0]
	}

	item.Categories = append(item.Categories, r.Genre...)
	item.Categories = append(item.Categories, r.Style...)

	return item
}

// splitTitle separates a "Artist - Release" Discogs title. When there is no
// separator the whole string is the title and the artist is unknown.
func splitTitle(s string) (artist, title string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	parts := strings.SplitN(s, " - ", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return "", s
}
