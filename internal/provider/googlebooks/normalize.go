package googlebooks

import (
	"github.com/lepinkainen/calliope/internal/metadata"
)

// normalize maps a Google Books volume to the canonical item. Returns nil
// when the volume has no usable title.
func normalize(v *volume) *metadata.Item {
	info := v.VolumeInfo
	if info.Title == "" {
		return nil
	}

	item := &metadata.Item{
		MediaType:   metadata.MediaBook,
		Source:      "googlebooks",
		Title:       info.Title,
		Year:        metadata.YearFromDate(info.PublishedDate),
		Creator:     metadata.JoinNames(info.Authors),
		Description: info.Description,
		PosterURL:   coverURL(info.ImageLinks),
		ExternalID:  v.ID,
		Categories:  info.Categories,
		Details:     map[string]any{},
	}

	// Pick ISBNs out of the identifier list by type tag.
	for _, id := range info.IndustryIdentifiers {
		switch id.Type {
		case "ISBN_10":
			item.Details["isbn_10"] = id.Identifier
		case "ISBN_13":
			item.Details["isbn_13"] = id.Identifier
		}
	}
	if info.Subtitle != "" {
		item.Details["subtitle"] = info.Subtitle
	}
	if info.Publisher != "" {
		item.Details["publisher"] = info.Publisher
	}
	if info.PageCount > 0 {
		item.Details["page_count"] = info.PageCount
	}
	if len(item.Details) == 0 {
		item.Details = nil
	}

	return item
}

func coverURL(links imageLinks) string {
	if links.Thumbnail != "" {
		return links.Thumbnail
	}
	return links.SmallThumbnail
}
