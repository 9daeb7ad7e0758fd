package precession

import (
	"context"
	"fmt"

	"github.com/behaver/precession/cache"
	"github.com/behaver/precession/observe"
)

// Option configures an Engine at construction.
type Option func(*Engine) error

// WithModel selects the model by name, case-insensitively.
func WithModel(name string) Option {
	return func(e *Engine) error {
		m, err := ParseModel(name)
		if err != nil {
			return err
		}
		e.model = m
		return nil
	}
}

// WithObserver routes evaluation traces, metrics and logs through obs.
func WithObserver(obs observe.Observer) Option {
	return func(e *Engine) error {
		mw, err := observe.MiddlewareFromObserver(obs)
		if err != nil {
			return err
		}
		e.mw = mw
		e.logger = obs.Logger()
		return nil
	}
}

// WithLogger installs a logging-only middleware. It replaces any earlier
// WithObserver; use WithObserver for tracing and metrics.
func WithLogger(logger observe.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			return invalidArgument("logger is nil")
		}
		e.mw = observe.NewMiddleware(nil, nil, logger)
		e.logger = logger
		return nil
	}
}

// WithCacheFactory sets how term caches are built. The factory runs at
// construction and on every SetEpoch, and must return an empty cache.
func WithCacheFactory(newCache func() cache.Cache) Option {
	return func(e *Engine) error {
		if newCache == nil {
			return invalidArgument("%v", cache.ErrNilCache)
		}
		e.newCache = newCache
		return nil
	}
}

// WithTable replaces the coefficients used for model m. The table must
// pass the same checks as TableChecker.
func WithTable(m Model, t Table) Option {
	return func(e *Engine) error {
		if !m.valid() {
			return invalidArgument("unknown model %v", m)
		}
		if err := validateTable(t); err != nil {
			return invalidArgument("table for %s: %v", m, err)
		}
		e.tables[m] = t.Clone()
		return nil
	}
}

// Config is the declarative form of the engine options.
type Config struct {
	// Model is the initial model name. Empty means DefaultModel.
	Model string

	// Observe, when set, builds an Observer owned by the engine and shut
	// down by Close.
	Observe *observe.Config
}

// Validate checks the configuration without building anything.
func (c Config) Validate() error {
	if c.Model != "" {
		if _, err := ParseModel(c.Model); err != nil {
			return err
		}
	}
	if c.Observe != nil {
		if err := c.Observe.Validate(); err != nil {
			return fmt.Errorf("observe: %w", err)
		}
	}
	return nil
}

// NewFromConfig validates cfg and constructs an Engine from it.
func NewFromConfig(ctx context.Context, ep Epoch, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []Option
	if cfg.Model != "" {
		opts = append(opts, WithModel(cfg.Model))
	}

	var obs observe.Observer
	if cfg.Observe != nil {
		var err error
		obs, err = observe.NewObserver(ctx, *cfg.Observe)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithObserver(obs))
	}

	e, err := New(ep, opts...)
	if err != nil {
		if obs != nil {
			_ = obs.Shutdown(ctx)
		}
		return nil, err
	}
	e.owned = obs
	return e, nil
}
