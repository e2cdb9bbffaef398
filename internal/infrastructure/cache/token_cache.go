package cache

import (
	"sync"
	"time"
)

// TokenCache holds the bearer token for the remote report API. A single
// token is cached at a time; expiry is enforced on read so callers never
// see a stale token.
type TokenCache struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewTokenCache() *TokenCache {
	return &TokenCache{}
}

// Get returns the cached token and whether it is still usable.
func (c *TokenCache) Get() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == "" || time.Now().After(c.expiresAt) {
		return "", false
	}
	return c.token, true
}

// Set stores a freshly issued token for the given TTL.
func (c *TokenCache) Set(token string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expiresAt = time.Now().Add(ttl)
}

// Clear drops the cached token, forcing the next caller to log in again.
// Used after the remote API answers 401 mid-TTL.
func (c *TokenCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
}

// IsExpired reports whether a refresh is needed without returning the token.
func (c *TokenCache) IsExpired() bool {
	_, ok := c.Get()
	return !ok
}
