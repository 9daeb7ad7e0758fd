package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultTimeout = 10 * time.Second

// AggregatorConfig configures the health aggregator.
type AggregatorConfig struct {
	// Timeout is the maximum time to wait for all checks.
	// Default: 10 seconds
	Timeout time.Duration

	// Parallel runs health checks concurrently when true.
	Parallel bool

	// MaxConcurrency caps parallel checks. Zero means unlimited.
	MaxConcurrency int
}

// Aggregator combines multiple health checkers into a single composite check.
type Aggregator struct {
	config   AggregatorConfig
	mu       sync.RWMutex
	checkers map[string]Checker
	order    []string // registration order
}

// NewAggregator creates a new health aggregator. Without a config it runs
// checks in parallel with a 10 second timeout.
func NewAggregator(config ...AggregatorConfig) *Aggregator {
	cfg := AggregatorConfig{Timeout: defaultTimeout, Parallel: true}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Timeout <= 0 {
			cfg.Timeout = defaultTimeout
		}
	}

	return &Aggregator{
		config:   cfg,
		checkers: make(map[string]Checker),
	}
}

// Register adds a health checker, replacing any checker with the same name.
func (a *Aggregator) Register(name string, checker Checker) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.checkers[name]; !exists {
		a.order = append(a.order, name)
	}
	a.checkers[name] = checker
}

// CheckerNames returns the names of all registered checkers in
// registration order.
func (a *Aggregator) CheckerNames() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	names := make([]string, len(a.order))
	copy(names, a.order)
	return names
}

// Check runs a single named health check.
func (a *Aggregator) Check(ctx context.Context, name string) (Result, error) {
	a.mu.RLock()
	checker, ok := a.checkers[name]
	a.mu.RUnlock()

	if !ok {
		return Result{}, ErrCheckerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()
	return runCheck(ctx, checker), nil
}

// CheckAll runs all registered health checks and returns the results keyed
// by checker name.
func (a *Aggregator) CheckAll(ctx context.Context) map[string]Result {
	a.mu.RLock()
	names := make([]string, len(a.order))
	copy(names, a.order)
	checkers := make([]Checker, len(names))
	for i, name := range names {
		checkers[i] = a.checkers[name]
	}
	a.mu.RUnlock()

	results := make(map[string]Result, len(names))
	if len(names) == 0 {
		return results
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	if !a.config.Parallel {
		for i, name := range names {
			results[name] = runCheck(ctx, checkers[i])
		}
		return results
	}

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	if a.config.MaxConcurrency > 0 {
		g.SetLimit(a.config.MaxConcurrency)
	}
	for i, name := range names {
		name, checker := name, checkers[i]
		g.Go(func() error {
			result := runCheck(ctx, checker)
			mu.Lock()
			results[name] = result
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // checks report failures in their Result, never as errors

	return results
}

// OverallStatus folds results into one status: Unhealthy if any check is
// unhealthy, Degraded if any is degraded, Healthy otherwise.
func (a *Aggregator) OverallStatus(results map[string]Result) Status {
	overall := StatusHealthy
	for _, result := range results {
		if result.Status > overall {
			overall = result.Status
		}
	}
	return overall
}

func runCheck(ctx context.Context, checker Checker) Result {
	start := time.Now()
	resultCh := make(chan Result, 1)

	go func() {
		result := checker.Check(ctx)
		result.Duration = time.Since(start)
		if result.Timestamp.IsZero() {
			result.Timestamp = start
		}
		resultCh <- result
	}()

	select {
	case result := <-resultCh:
		return result
	case <-ctx.Done():
		return Result{
			Status:    StatusUnhealthy,
			Message:   "check timed out",
			Error:     ErrCheckTimeout,
			Duration:  time.Since(start),
			Timestamp: start,
		}
	}
}
