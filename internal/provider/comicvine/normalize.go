package comicvine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lepinkainen/calliope/internal/metadata"
)

// normalize maps a Comic Vine issue to the canonical item. Unnamed issues
// take "Volume #N" as title; with neither name nor volume there is no usable
// title and the result is nil.
func normalize(is *issue) *metadata.Item {
	title := issueTitle(is)
	if title == "" {
		return nil
	}

	item := &metadata.Item{
		MediaType:   metadata.MediaComic,
		Source:      "comicvine",
		Title:       title,
		Year:        metadata.YearFromDate(is.CoverDate),
		Creator:     writers(is.Person),
		Description: is.Deck,
		PosterURL:   coverURL(is.Image),
		ExternalID:  strconv.Itoa(is.ID),
		Details:     map[string]any{},
	}

	if is.IssueNumber != "" {
		item.Details["issue_number"] = is.IssueNumber
	}
	if is.Volume.Name != "" {
		item.Details["volume"] = is.Volume.Name
	}
	if len(item.Details) == 0 {
		item.Details = nil
	}

	return item
}

func issueTitle(is *issue) string {
	if name := strings.TrimSpace(is.Name); name != "" {
		return name
	}
	if is.Volume.Name != "" && is.IssueNumber != "" {
		return fmt.Sprintf("%s #%s", is.Volume.Name, is.IssueNumber)
	}
	return strings.TrimSpace(is.Volume.Name)
}

func writers(credits persons) string {
	var names []string
	for _, p := range credits {
		if strings.Contains(strings.ToLower(p.Role), "writer") {
			names = append(names, p.Name)
		}
	}
	return metadata.JoinNames(names)
}

func coverURL(img image) string {
	if img.OriginalURL != "" {
		return img.OriginalURL
	}
	return img.MediumURL
}
