package cache

import (
	"context"
	"sync/atomic"
)

// ComputeFunc produces the value for a key on a cache miss.
type ComputeFunc func(ctx context.Context, key string) (float64, error)

// SkipRule determines whether a key bypasses the cache entirely.
// Returns true if the key must never be read from or written to the cache.
type SkipRule func(key string) bool

// NeverSkip caches every key.
func NeverSkip(string) bool { return false }

// SkipKeys returns a rule that bypasses the cache for the listed keys.
func SkipKeys(keys ...string) SkipRule {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(key string) bool {
		_, ok := set[key]
		return ok
	}
}

// Stats reports memoizer counters.
type Stats struct {
	Hits    uint64 // served from cache
	Misses  uint64 // computed and stored
	Skipped uint64 // computed, bypassing the cache
}

// Memoizer wraps a Cache with compute-on-miss semantics.
//
// Contract:
//   - Errors returned by a ComputeFunc are propagated and NOT cached.
//   - Skipped keys are computed on every call and never touch the cache.
//   - Concurrency: counters are atomic; the backing cache must be safe for
//     concurrent use. Swapping the cache with Reset is not synchronized
//     with Do.
type Memoizer struct {
	cache Cache
	skip  SkipRule

	hits    atomic.Uint64
	misses  atomic.Uint64
	skipped atomic.Uint64
}

// NewMemoizer creates a memoizer over c.
// If c is nil, a fresh MemoryCache is used. If skip is nil, NeverSkip is used.
func NewMemoizer(c Cache, skip SkipRule) *Memoizer {
	if c == nil {
		c = NewMemoryCache()
	}
	if skip == nil {
		skip = NeverSkip
	}
	return &Memoizer{cache: c, skip: skip}
}

// Do returns the value for key, calling compute only on a miss.
// hit reports whether the value was served from the cache.
func (m *Memoizer) Do(ctx context.Context, key string, compute ComputeFunc) (value float64, hit bool, err error) {
	if m.skip(key) {
		m.skipped.Add(1)
		value, err = compute(ctx, key)
		return value, false, err
	}

	if m.cache.Has(key) {
		if v, err := m.cache.Get(key); err == nil {
			m.hits.Add(1)
			return v, true, nil
		}
	}

	value, err = compute(ctx, key)
	if err != nil {
		// Don't cache errors
		return value, false, err
	}
	m.misses.Add(1)

	if err := m.cache.Set(key, value); err != nil {
		return value, false, err
	}
	return value, false, nil
}

// Cache returns the backing cache.
func (m *Memoizer) Cache() Cache {
	return m.cache
}

// Reset replaces the backing cache. A nil cache installs a fresh MemoryCache.
func (m *Memoizer) Reset(c Cache) {
	if c == nil {
		c = NewMemoryCache()
	}
	m.cache = c
}

// Clear empties the backing cache.
func (m *Memoizer) Clear() {
	m.cache.Clear()
}

// Stats returns a snapshot of the counters.
func (m *Memoizer) Stats() Stats {
	return Stats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Skipped: m.skipped.Load(),
	}
}
