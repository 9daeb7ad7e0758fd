// Package cache provides the per-epoch term cache used by the precession
// engine.
//
// It provides a Cache interface with a memory implementation and a
// Memoizer that serves hits, computes misses and honours skip rules for
// keys that must never be cached.
package cache
