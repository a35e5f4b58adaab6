// Package selectorcache implements the site-wide logo selector slot with ttlcache.
package selectorcache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

var _ ports.SelectorCache = (*Cache)(nil)

// Cache stores at most one selector under domain.SelectorCacheKey.
// Reads never extend the TTL.
type Cache struct {
	items *ttlcache.Cache[string, string]
	ttl   time.Duration
}

// New creates a cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		items: ttlcache.New(
			ttlcache.WithTTL[string, string](ttl),
			ttlcache.WithDisableTouchOnHit[string, string](),
			ttlcache.WithCapacity[string, string](1),
		),
		ttl: ttl,
	}
}

// Get returns the cached selector if it has not expired.
func (c *Cache) Get() (domain.CachedSelector, bool) {
	item := c.items.Get(domain.SelectorCacheKey)
	if item == nil {
		return domain.CachedSelector{}, false
	}
	entry := domain.CachedSelector{Value: item.Value(), ExpiresAt: item.ExpiresAt()}
	if entry.Expired(time.Now()) {
		return domain.CachedSelector{}, false
	}
	return entry, true
}

// Set replaces the cached selector.
func (c *Cache) Set(value string) domain.CachedSelector {
	item := c.items.Set(domain.SelectorCacheKey, value, c.ttl)
	return domain.CachedSelector{Value: item.Value(), ExpiresAt: item.ExpiresAt()}
}

// Invalidate drops the cached selector.
func (c *Cache) Invalidate() {
	c.items.Delete(domain.SelectorCacheKey)
}
