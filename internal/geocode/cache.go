package geocode

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// CachedGeocoder wraps a Geocoder with an in-memory TTL cache. Misses from
// the provider are cached as negative entries so repeated lookups of unknown
// places do not burn rate-limited requests.
type CachedGeocoder struct {
	inner domain.Geocoder
	cache *ttlCache
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner domain.Geocoder, maxEntries int, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		inner: inner,
		cache: newTTLCache(maxEntries, ttl),
	}
}

func (c *CachedGeocoder) Search(ctx context.Context, query string) (domain.GeocodingResult, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if result, ok := c.cache.get(key); ok {
		if result == nil {
			return domain.GeocodingResult{}, nil
		}
		return *result, nil
	}

	result, err := c.inner.Search(ctx, query)
	if err != nil {
		// Errors are transient; only definitive answers are cached.
		return result, err
	}
	if result.DisplayName == "" {
		c.cache.put(key, nil)
		return result, nil
	}
	c.cache.put(key, &result)
	return result, nil
}

// Stats reports the current cache occupancy.
func (c *CachedGeocoder) Stats() (size, maxEntries int) {
	return c.cache.len(), c.cache.maxEntries
}

// ttlCache is a thread-safe cache with per-entry expiry and a hard size cap.
// When full it evicts the oldest inserted entry.
type ttlCache struct {
	maxEntries int
	ttl        time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
	order   []string // insertion order, oldest first
}

type cacheEntry struct {
	result   *domain.GeocodingResult // nil caches a provider miss
	storedAt time.Time
}

func newTTLCache(maxEntries int, ttl time.Duration) *ttlCache {
	return &ttlCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		entries:    make(map[string]cacheEntry),
	}
}

func (c *ttlCache) get(key string) (*domain.GeocodingResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if clock.Now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.result, true
}

func (c *ttlCache) put(key string, result *domain.GeocodingResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		if len(c.entries) >= c.maxEntries {
			c.evictOldest()
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{result: result, storedAt: clock.Now()}
}

func (c *ttlCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ttlCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
