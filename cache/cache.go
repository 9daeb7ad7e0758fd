package cache

import (
	"errors"
	"strings"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 64

// Sentinel errors for cache operations.
var (
	ErrNilCache   = errors.New("cache: cache is nil")
	ErrInvalidKey = errors.New("cache: key is invalid")
	ErrNotFound   = errors.New("cache: key not found")
)

// Cache stores computed term values for a single (epoch, model) scope.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Get returns ErrNotFound on miss; callers normally check Has first.
// - Lifetime: entries live until Clear; there is no eviction.
type Cache interface {
	// Has reports whether key holds a value.
	Has(key string) bool

	// Get returns the value stored under key.
	Get(key string) (float64, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value float64) error

	// Clear removes every entry. Idempotent.
	Clear()

	// Len returns the number of entries.
	Len() int
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrInvalidKey
	}
	if strings.ContainsAny(key, " \t\n\r") {
		return ErrInvalidKey
	}
	return nil
}
