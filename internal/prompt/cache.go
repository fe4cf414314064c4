package prompt

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

// Cache memoizes derived results keyed by a content hash of the state
type Cache struct {
	store  *cache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats is a snapshot of cache counters
type CacheStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

// NewCache creates a memo whose entries expire after ttl
func NewCache(ttl time.Duration) *Cache {
	return &Cache{store: cache.New(ttl, 2*ttl)}
}

// StateKey returns the hex SHA-256 of the state's JSON encoding
func StateKey(state models.State) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// GetOrDerive returns the memoized result for state, deriving it on a miss
func (c *Cache) GetOrDerive(state models.State) Result {
	key, err := StateKey(state)
	if err != nil {
		c.misses.Add(1)
		return Derive(state)
	}
	if v, found := c.store.Get(key); found {
		c.hits.Add(1)
		return v.(Result)
	}
	c.misses.Add(1)
	r := Derive(state)
	c.store.Set(key, r, cache.DefaultExpiration)
	return r
}

// Stats returns the current counters
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.store.ItemCount(),
	}
}

// Flush drops every entry
func (c *Cache) Flush() {
	c.store.Flush()
}
