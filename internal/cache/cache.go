// Package cache caches connector API responses so repeated metric queries do
// not hammer the upstream services.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-value cache with per-entry TTLs.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a request URL. The full URL including query
// parameters goes into the hash, so different symbols and date ranges cache
// separately.
func Key(requestURL string) string {
	sum := sha256.Sum256([]byte(requestURL))
	return "macrograph:v1:" + hex.EncodeToString(sum[:])
}
