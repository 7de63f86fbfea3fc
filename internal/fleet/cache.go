package fleet

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Scavenger_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

type cachedScavengerEntry struct {
	Version   string
	Scavenger domain.Scavenger
	CachedAt  time.Time
}

// scavengerCache is an expiring LRU of scavengers keyed by name. Values are
// stored and returned by copy so callers cannot mutate cached state.
type scavengerCache struct {
	lru *expirable.LRU[string, *cachedScavengerEntry]
}

func newScavengerCache(size int, ttl time.Duration) *scavengerCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &scavengerCache{
		lru: expirable.NewLRU[string, *cachedScavengerEntry](size, nil, ttl),
	}
}

// Get returns the cached scavenger, dropping entries from an older schema version
func (c *scavengerCache) Get(name string) (domain.Scavenger, bool) {
	entry, found := c.lru.Get(name)
	if !found {
		return domain.Scavenger{}, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(name)
		return domain.Scavenger{}, false
	}

	return entry.Scavenger, true
}

func (c *scavengerCache) Set(s domain.Scavenger) {
	c.lru.Add(s.Name, &cachedScavengerEntry{
		Version:   CacheSchemaVersion,
		Scavenger: s,
		CachedAt:  time.Now(),
	})
}

func (c *scavengerCache) Invalidate(names ...string) {
	for _, name := range names {
		c.lru.Remove(name)
	}
}

func (c *scavengerCache) Clear() {
	c.lru.Purge()
}
