package cache

import (
	"errors"
	"strings"
	"testing"
)

// TestCacheKey_Validation tests key validation rules.
func TestCacheKey_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"empty key", "", ErrInvalidKey},
		{"term name", "epsilon", nil},
		{"single letter", "P", nil},
		{"too long", strings.Repeat("x", MaxKeyLength+1), ErrInvalidKey},
		{"max length exactly", strings.Repeat("x", MaxKeyLength), nil},
		{"contains newline", "eta\n", ErrInvalidKey},
		{"contains space", "eta pi", ErrInvalidKey},
		{"whitespace only", "   ", ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateKey(%q) = %v, want nil", tt.key, err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateKey(%q) = %v, want %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

// TestCacheInterface_CompileCheck verifies the Cache interface contract.
func TestCacheInterface_CompileCheck(t *testing.T) {
	var _ Cache = (*mockCache)(nil)
}

// mockCache is a test double that implements Cache and records calls.
type mockCache struct {
	entries map[string]float64
	sets    int
	clears  int
}

func (m *mockCache) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *mockCache) Get(key string) (float64, error) {
	v, ok := m.entries[key]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (m *mockCache) Set(key string, value float64) error {
	if m.entries == nil {
		m.entries = make(map[string]float64)
	}
	m.sets++
	m.entries[key] = value
	return nil
}

func (m *mockCache) Clear() {
	m.clears++
	m.entries = nil
}

func (m *mockCache) Len() int { return len(m.entries) }

// TestSentinelErrors verifies sentinel errors are distinct and have expected messages.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"ErrNilCache", ErrNilCache, "cache: cache is nil"},
		{"ErrInvalidKey", ErrInvalidKey, "cache: key is invalid"},
		{"ErrNotFound", ErrNotFound, "cache: key not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, got, tt.wantMsg)
			}
		})
	}

	if errors.Is(ErrNotFound, ErrInvalidKey) || errors.Is(ErrNilCache, ErrNotFound) {
		t.Error("sentinel errors should be distinct")
	}
}
