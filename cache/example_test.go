package cache_test

import (
	"context"
	"fmt"

	"github.com/behaver/precession/cache"
)

func ExampleNewMemoryCache() {
	c := cache.NewMemoryCache()

	_ = c.Set("eta", 0.012)

	v, err := c.Get("eta")
	fmt.Println("Value:", v, "Error:", err)
	fmt.Println("Has psi:", c.Has("psi"))
	// Output:
	// Value: 0.012 Error: <nil>
	// Has psi: false
}

func ExampleMemoizer_Do() {
	m := cache.NewMemoizer(cache.NewMemoryCache(), cache.SkipKeys("epsilon0"))
	ctx := context.Background()
	computeCalls := 0

	compute := func(ctx context.Context, key string) (float64, error) {
		computeCalls++
		return 1.5, nil
	}

	// First call - miss
	_, hit, _ := m.Do(ctx, "theta", compute)
	fmt.Println("Call 1 hit:", hit)

	// Second call - hit
	_, hit, _ = m.Do(ctx, "theta", compute)
	fmt.Println("Call 2 hit:", hit)

	// Skipped key - always computed
	_, _, _ = m.Do(ctx, "epsilon0", compute)
	_, _, _ = m.Do(ctx, "epsilon0", compute)

	fmt.Println("Compute calls:", computeCalls)
	fmt.Printf("Stats: %+v\n", m.Stats())
	// Output:
	// Call 1 hit: false
	// Call 2 hit: true
	// Compute calls: 3
	// Stats: {Hits:1 Misses:1 Skipped:2}
}
