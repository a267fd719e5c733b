package authclient

import (
	"sync"
	"time"
)

// tokenCache holds one validated profile per credential with a bounded TTL.
// Expired entries are treated as absent and refreshed synchronously by the
// caller; there is no background refresh.
type tokenCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	profile  *Profile
	cachedAt time.Time
}

func newTokenCache(ttl time.Duration) *tokenCache {
	return &tokenCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *tokenCache) get(token string) (*Profile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[token]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.cachedAt) >= c.ttl {
		delete(c.entries, token)
		return nil, false
	}
	return e.profile, true
}

func (c *tokenCache) put(token string, p *Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = cacheEntry{profile: p, cachedAt: c.now()}
}
