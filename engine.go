package precession

import (
	"context"
	"math"
	"reflect"

	"github.com/behaver/precession/cache"
	"github.com/behaver/precession/observe"
)

// Engine evaluates precession terms for one epoch under one model.
//
// Contract:
//   - Concurrency: not safe for concurrent use; give each goroutine its own
//     Engine or guard it externally.
//   - Caching: every term except epsilon0 is memoized until the epoch is
//     replaced or the model changes.
type Engine struct {
	epoch  Epoch
	model  Model
	tables [numModels]Table

	newCache func() cache.Cache
	memo     *cache.Memoizer

	mw       *observe.Middleware
	logger   observe.Logger
	evaluate observe.EvaluateFunc
	owned    observe.Observer // shut down by Close
}

// New creates an Engine for ep. The model defaults to IAU2006.
func New(ep Epoch, opts ...Option) (*Engine, error) {
	if err := checkEpoch(ep); err != nil {
		return nil, err
	}

	e := &Engine{
		epoch:    ep,
		model:    DefaultModel,
		tables:   builtinTables,
		newCache: func() cache.Cache { return cache.NewMemoryCache() },
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.mw == nil {
		e.mw = observe.NoopMiddleware()
	}
	if e.logger == nil {
		e.logger = e.mw.Logger()
	}

	e.memo = cache.NewMemoizer(e.newCache(), cache.SkipKeys(TermEpsilon0.String()))
	e.evaluate = e.mw.Wrap(e.lookup)
	return e, nil
}

// AsEpoch converts v into an Epoch, rejecting anything that is not one.
func AsEpoch(v any) (Epoch, error) {
	ep, ok := v.(Epoch)
	if !ok {
		return nil, invalidArgument("epoch has to implement Epoch, got %T", v)
	}
	if err := checkEpoch(ep); err != nil {
		return nil, err
	}
	return ep, nil
}

func checkEpoch(ep Epoch) error {
	if ep == nil {
		return invalidArgument("epoch is nil")
	}
	if v := reflect.ValueOf(ep); v.Kind() == reflect.Pointer && v.IsNil() {
		return invalidArgument("epoch is a nil %T", ep)
	}
	return nil
}

// Epoch returns the active epoch. It is the caller's reference, not a copy.
func (e *Engine) Epoch() Epoch {
	return e.epoch
}

// SetEpoch replaces the active epoch and starts a fresh, empty term cache.
func (e *Engine) SetEpoch(ep Epoch) error {
	if err := checkEpoch(ep); err != nil {
		e.logger.Warn(context.Background(), "epoch rejected", observe.Field{Key: "error", Value: err.Error()})
		return err
	}

	e.epoch = ep
	e.memo.Reset(e.newCache())
	e.logger.Debug(context.Background(), "epoch replaced", e.epochFields()...)
	return nil
}

// Model returns the normalized name of the active model.
func (e *Engine) Model() string {
	return e.model.String()
}

// ModelValue returns the active model.
func (e *Engine) ModelValue() Model {
	return e.model
}

// SetModel selects a model by name, case-insensitively. Selecting the
// active model is a no-op that keeps the cache.
func (e *Engine) SetModel(name string) error {
	m, err := ParseModel(name)
	if err != nil {
		e.logger.Warn(context.Background(), "model rejected", observe.Field{Key: "error", Value: err.Error()})
		return err
	}
	return e.SetModelValue(m)
}

// SetModelValue selects a model. Selecting the active model is a no-op
// that keeps the cache.
func (e *Engine) SetModelValue(m Model) error {
	if !m.valid() {
		return invalidArgument("unknown model %v", m)
	}
	if m == e.model {
		return nil
	}

	from := e.model
	e.model = m
	e.memo.Clear()
	e.logger.Debug(context.Background(), "model switched",
		observe.Field{Key: "from", Value: from.String()},
		observe.Field{Key: "to", Value: m.String()},
	)
	return nil
}

// Table returns a copy of the active model's coefficients.
func (e *Engine) Table() Table {
	return e.tables[e.model].Clone()
}

// Get returns the value of the term named name, in arcseconds.
func (e *Engine) Get(name string) (float64, error) {
	return e.GetContext(context.Background(), name)
}

// GetContext is Get with a caller-supplied context for telemetry.
func (e *Engine) GetContext(ctx context.Context, name string) (float64, error) {
	t, err := ParseTerm(name)
	if err != nil {
		e.logger.Warn(ctx, "term rejected", observe.Field{Key: "error", Value: err.Error()})
		return 0, err
	}
	return e.ValueContext(ctx, t)
}

// Value returns the value of t, in arcseconds.
func (e *Engine) Value(t Term) (float64, error) {
	return e.ValueContext(context.Background(), t)
}

// ValueContext is Value with a caller-supplied context for telemetry.
func (e *Engine) ValueContext(ctx context.Context, t Term) (float64, error) {
	if !t.valid() {
		return 0, invalidArgument("illegal key %v", t)
	}

	meta := observe.TermMeta{Model: e.model.String(), Term: t.String()}
	if j, ok := e.epoch.(interface{ JDE() float64 }); ok {
		meta.JDE = j.JDE()
	}

	v, _, err := e.evaluate(ctx, meta)
	return v, err
}

// Snapshot evaluates every term under the current epoch and model.
func (e *Engine) Snapshot() (map[Term]float64, error) {
	out := make(map[Term]float64, numTerms)
	for _, t := range Terms() {
		v, err := e.Value(t)
		if err != nil {
			return nil, err
		}
		out[t] = v
	}
	return out, nil
}

// CacheStats reports term cache hits, misses and epsilon0 bypasses since
// construction.
func (e *Engine) CacheStats() cache.Stats {
	return e.memo.Stats()
}

// Close shuts down an Observer created by NewFromConfig. Engines built with
// New own nothing and Close is a no-op.
func (e *Engine) Close(ctx context.Context) error {
	if e.owned == nil {
		return nil
	}
	obs := e.owned
	e.owned = nil
	return obs.Shutdown(ctx)
}

func (e *Engine) lookup(ctx context.Context, meta observe.TermMeta) (float64, bool, error) {
	return e.memo.Do(ctx, meta.Term, e.compute)
}

func (e *Engine) compute(_ context.Context, key string) (float64, error) {
	t, err := ParseTerm(key)
	if err != nil {
		return 0, err
	}

	table := e.tables[e.model]
	if t == TermEpsilon0 {
		eps0, ok := table.Epsilon0()
		if !ok {
			return 0, invalidArgument("model %s has no epsilon coefficients", e.model)
		}
		return eps0, nil
	}

	coeffs, ok := table[t]
	if !ok {
		return 0, invalidArgument("model %s has no coefficients for %s", e.model, t)
	}
	return Evaluate(coeffs, e.epoch), nil
}

func (e *Engine) epochFields() []observe.Field {
	fields := []observe.Field{{Key: "model", Value: e.model.String()}}
	if j, ok := e.epoch.(interface{ JDE() float64 }); ok {
		fields = append(fields, observe.Field{Key: "jde", Value: j.JDE()})
	}
	return fields
}

func (e *Engine) must(t Term) float64 {
	v, err := e.Value(t)
	if err != nil {
		return math.NaN()
	}
	return v
}

// P returns P_A in arcseconds. Accessors return NaN only if the active
// table lacks the term, which built-in tables never do.
func (e *Engine) P() float64 { return e.must(TermP) }

// Q returns Q_A in arcseconds.
func (e *Engine) Q() float64 { return e.must(TermQ) }

// Eta returns π_A, the ecliptic inclination, in arcseconds.
func (e *Engine) Eta() float64 { return e.must(TermEta) }

// Pi returns Π_A, the ecliptic node longitude, in arcseconds.
func (e *Engine) Pi() float64 { return e.must(TermPi) }

// SmallP returns p_A, the general precession in longitude, in arcseconds.
func (e *Engine) SmallP() float64 { return e.must(TermSmallP) }

// Epsilon0 returns the J2000.0 obliquity of the active model in arcseconds.
func (e *Engine) Epsilon0() float64 { return e.must(TermEpsilon0) }

// Epsilon returns ε_A, the mean obliquity of date, in arcseconds.
func (e *Engine) Epsilon() float64 { return e.must(TermEpsilon) }

// Chi returns χ_A in arcseconds.
func (e *Engine) Chi() float64 { return e.must(TermChi) }

// Omega returns ω_A in arcseconds.
func (e *Engine) Omega() float64 { return e.must(TermOmega) }

// Psi returns ψ_A in arcseconds.
func (e *Engine) Psi() float64 { return e.must(TermPsi) }

// Theta returns θ_A in arcseconds.
func (e *Engine) Theta() float64 { return e.must(TermTheta) }

// Zeta returns ζ_A in arcseconds.
func (e *Engine) Zeta() float64 { return e.must(TermZeta) }

// Z returns z_A in arcseconds.
func (e *Engine) Z() float64 { return e.must(TermZ) }
