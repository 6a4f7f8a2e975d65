package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/calliope/internal/metadata"
)

func TestItemRoundTrip(t *testing.T) {
	store := NewMemory()
	key := Fingerprint("omdb", map[string]string{"i": "tt0133093"})

	item := &metadata.Item{
		MediaType:  metadata.MediaMovie,
		Source:     "omdb",
		Title:      "The Matrix",
		Year:       1999,
		ExternalID: "tt0133093",
		Details:    map[string]any{"runtime": 136},
	}
	SetItem(store, key, item, time.Hour)

	got, hit := GetItem(store, key)
	require.True(t, hit)
	require.NotNil(t, got)
	assert.Equal(t, "The Matrix", got.Title)
	assert.Equal(t, 1999, got.Year)
	assert.Equal(t, metadata.MediaMovie, got.MediaType)
}

func TestItemNegativeResultIsAHit(t *testing.T) {
	store := NewMemory()
	key := Fingerprint("googlebooks", map[string]string{"q": "isbn:0000000000"})

	SetItem(store, key, nil, time.Hour)

	got, hit := GetItem(store, key)
	assert.True(t, hit, "a cached no-match must count as a cache hit")
	assert.Nil(t, got)
}

func TestItemCorruptEntryIsAMiss(t *testing.T) {
	store := NewMemory()
	key := Fingerprint("omdb", map[string]string{"i": "tt1"})

	require.NoError(t, store.Set(key, []byte("{not json"), time.Hour))

	got, hit := GetItem(store, key)
	assert.False(t, hit)
	assert.Nil(t, got)

	// The corrupt entry was dropped.
	_, ok, err := store.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItemMiss(t *testing.T) {
	store := NewMemory()

	got, hit := GetItem(store, "absent")
	assert.False(t, hit)
	assert.Nil(t, got)
}
