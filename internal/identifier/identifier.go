// Package identifier classifies raw user-supplied identifiers (barcodes,
// ISBNs, IMDb IDs, free text) so the resolver can route them to the right
// catalog providers.
package identifier

import (
	"regexp"
	"strings"
)

// Kind is the classified identifier type.
type Kind string

const (
	KindISBN    Kind = "isbn"
	KindIMDB    Kind = "imdb"
	KindUPC     Kind = "upc"
	KindEAN     Kind = "ean"
	KindUnknown Kind = "unknown"
)

// IMDb title IDs are matched on the raw string: stripping would not change
// them and the tt prefix is case-sensitive.
var imdbPattern = regexp.MustCompile(`^tt\d+$`)

// Classify maps a raw identifier string to its Kind. Rules are applied in
// priority order and the first match wins; anything unmatched is KindUnknown.
//
// Digit rules operate on a cleaned form with whitespace and hyphens removed,
// so "978-0-316-76948-0" classifies the same as "9780316769480".
func Classify(raw string) Kind {
	trimmed := strings.TrimSpace(raw)
	cleaned := stripSeparators(trimmed)
	numeric := isDigits(cleaned)

	switch {
	case numeric && len(cleaned) == 10:
		return KindISBN
	case numeric && len(cleaned) == 13 && isbn13Prefix(cleaned):
		return KindISBN
	case imdbPattern.MatchString(trimmed):
		return KindIMDB
	case numeric && len(cleaned) == 12:
		return KindUPC
	case numeric && len(cleaned) == 13 && !strings.HasPrefix(cleaned, "97"):
		return KindEAN
	default:
		return KindUnknown
	}
}

// Normalize returns the cleaned digit form used for provider code lookups.
// Non-barcode identifiers are returned trimmed but otherwise untouched.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	cleaned := stripSeparators(trimmed)
	if isDigits(cleaned) {
		return cleaned
	}
	return trimmed
}

// isbn13Prefix reports whether a 13-digit code carries the ISBN bookland
// prefix (978 or 979). Other 97x prefixes (e.g. 977 for serials) are not
// ISBNs and fall through to the remaining rules.
func isbn13Prefix(s string) bool {
	return strings.HasPrefix(s, "978") || strings.HasPrefix(s, "979")
}

func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '-' || r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
