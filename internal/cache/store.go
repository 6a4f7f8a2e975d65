// Package cache provides a TTL key/value store for normalized provider
// results. Keys are content-addressed fingerprints of the provider name and
// canonicalized query parameters, so identical queries hit the same entry.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// DefaultTTL is the default time-to-live for cached provider results.
const DefaultTTL = 24 * time.Hour

// Store is the cache contract. An entry past its expiry is logically absent:
// Get never returns stale data, and implementations purge expired entries
// opportunistically. Implementations must be safe for concurrent use with
// atomic per-key writes.
type Store interface {
	// Get returns the value for key, whether it was found, and any backend error.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key with the given time-to-live.
	Set(key string, value []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(key string) error

	// Clear removes all entries.
	Clear() error

	// Close releases backend resources. No-op for in-memory stores.
	Close() error
}

// Fingerprint derives the cache key for a provider query. Parameters are
// sorted by name so that maps with the same content always produce the same
// key regardless of construction order.
func Fingerprint(provider string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(provider)
	for _, name := range names {
		b.WriteByte('\n')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
