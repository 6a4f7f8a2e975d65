package metadata

import (
	"regexp"
	"strconv"
	"strings"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// YearFromDate extracts the first 4-digit run from a date-like string.
// Returns 0 when no year is present.
func YearFromDate(s string) int {
	match := yearPattern.FindString(s)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// RuntimeMinutes parses a runtime string into whole minutes.
// Accepts "N min" style values (e.g. "136 min") and "HH:MM" clock values.
// Returns 0 when the string cannot be parsed.
func RuntimeMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0
		}
		minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0
		}
		return hours*60 + minutes
	}

	fields := strings.Fields(s)
	minutes, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return minutes
}

// JoinNames joins creator names with a comma, skipping empty entries.
func JoinNames(names []string) string {
	var kept []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, ", ")
}
