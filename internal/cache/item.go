package cache

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lepinkainen/calliope/internal/metadata"
)

// itemEnvelope wraps a cached provider result. Found distinguishes a cached
// "provider had no match" from an actual cache miss, so negative results also
// avoid repeat network calls within the TTL window.
type itemEnvelope struct {
	Found bool           `json:"found"`
	Item  *metadata.Item `json:"item,omitempty"`
}

// GetItem reads a normalized item from the cache. The second return value
// reports a cache hit; on a hit the item may still be nil (cached negative
// result). Corrupt entries are treated as misses, never as errors.
func GetItem(store Store, key string) (*metadata.Item, bool) {
	data, ok, err := store.Get(key)
	if err != nil {
		slog.Warn("Cache read failed, treating as miss", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var envelope itemEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		slog.Warn("Corrupt cache entry, treating as miss", "key", key, "error", err)
		if err := store.Delete(key); err != nil {
			slog.Warn("Failed to delete corrupt cache entry", "key", key, "error", err)
		}
		return nil, false
	}
	if !envelope.Found {
		return nil, true
	}
	return envelope.Item, true
}

// SetItem stores a normalized item (or a negative result when item is nil)
// under key. Cache write failures are logged and swallowed: a failed store
// must never fail the lookup that produced the item.
func SetItem(store Store, key string, item *metadata.Item, ttl time.Duration) {
	envelope := itemEnvelope{Found: item != nil, Item: item}
	data, err := json.Marshal(envelope)
	if err != nil {
		slog.Warn("Failed to marshal item for caching", "key", key, "error", err)
		return
	}
	if err := store.Set(key, data, ttl); err != nil {
		slog.Warn("Failed to cache item", "key", key, "error", err)
	}
}
