package cache

import (
	"fmt"
	"sync"
)

// MemoryCache is an in-memory Cache backed by a map.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]float64
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]float64),
	}
}

// Has reports whether key is cached.
func (c *MemoryCache) Has(key string) bool {
	c.mu.RLock()
	_, ok := c.entries[key]
	c.mu.RUnlock()
	return ok
}

// Get returns the cached value or ErrNotFound.
func (c *MemoryCache) Get(key string) (float64, error) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return v, nil
}

// Set stores value under key.
func (c *MemoryCache) Set(key string, value float64) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
	return nil
}

// Clear drops all entries.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Ensure MemoryCache implements Cache
var _ Cache = (*MemoryCache)(nil)
