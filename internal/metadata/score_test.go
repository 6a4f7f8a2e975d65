package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		expected int
	}{
		{
			name:     "empty item",
			item:     Item{},
			expected: 0,
		},
		{
			name:     "title only",
			item:     Item{Title: "The Matrix"},
			expected: 10,
		},
		{
			name: "title and year and creator",
			item: Item{
				Title:   "The Matrix",
				Year:    1999,
				Creator: "Lana Wachowski, Lilly Wachowski",
			},
			expected: 20,
		},
		{
			name: "fully populated",
			item: Item{
				Title:       "The Matrix",
				Year:        1999,
				Creator:     "Lana Wachowski, Lilly Wachowski",
				Description: "A hacker discovers reality is a simulation.",
				PosterURL:   "https://example.com/matrix.jpg",
				Details:     map[string]any{"runtime": 136},
			},
			expected: 28,
		},
		{
			name: "description and poster without year",
			item: Item{
				Title:       "Effective Java",
				Description: "Best practices for the Java platform.",
				PosterURL:   "https://example.com/ej.jpg",
			},
			expected: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.item))
		})
	}
}

func TestSelectBest(t *testing.T) {
	t.Run("empty input returns nil", func(t *testing.T) {
		assert.Nil(t, SelectBest(nil))
		assert.Nil(t, SelectBest([]Item{}))
	})

	t.Run("highest score wins", func(t *testing.T) {
		// score 18: title + year + description
		sparse := Item{Source: "omdb", Title: "The Matrix", Year: 1999, Description: "d"}
		// score 23: title + year + creator + description
		rich := Item{Source: "discogs", Title: "The Matrix", Year: 1999, Creator: "c", Description: "d"}

		best := SelectBest([]Item{sparse, rich})
		assert.NotNil(t, best)
		assert.Equal(t, "discogs", best.Source)
		assert.Equal(t, 18, Score(sparse))
		assert.Equal(t, 23, Score(rich))
	})

	t.Run("ties broken by candidate order", func(t *testing.T) {
		first := Item{Source: "omdb", Title: "Dune", Year: 2021}
		second := Item{Source: "googlebooks", Title: "Dune", Year: 1965}
		assert.Equal(t, Score(first), Score(second))

		best := SelectBest([]Item{first, second})
		assert.NotNil(t, best)
		assert.Equal(t, "omdb", best.Source)
	})

	t.Run("single candidate", func(t *testing.T) {
		only := Item{Source: "comicvine", Title: "Watchmen #1"}
		best := SelectBest([]Item{only})
		assert.NotNil(t, best)
		assert.Equal(t, "comicvine", best.Source)
	})
}
