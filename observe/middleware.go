package observe

import (
	"context"
	"time"
)

// EvaluateFunc resolves one term. hit reports whether the value came from
// the term cache.
type EvaluateFunc func(ctx context.Context, meta TermMeta) (value float64, hit bool, err error)

// Middleware wraps term evaluation with observability (tracing, metrics, logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe EvaluateFunc if fn is.
//   - Errors: Errors from the wrapped function are recorded and propagated unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability
// components. Nil components are replaced with no-ops.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = &noopMetrics{}
	}
	if logger == nil {
		logger = NoopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// NoopMiddleware returns a Middleware that records nothing.
func NoopMiddleware() *Middleware {
	return NewMiddleware(nil, nil, nil)
}

// Logger returns the middleware's logger.
func (m *Middleware) Logger() Logger {
	return m.logger
}

// Wrap wraps an EvaluateFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn EvaluateFunc) EvaluateFunc {
	return func(ctx context.Context, meta TermMeta) (float64, bool, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		value, hit, err := fn(ctx, meta)

		duration := time.Since(start)
		m.tracer.EndSpan(span, hit, err)
		m.metrics.RecordEvaluation(ctx, meta, duration, hit, err)

		termLogger := m.logger.WithTerm(meta)
		fields := []Field{
			{Key: "duration_us", Value: float64(duration.Nanoseconds()) / 1e3},
			{Key: "cache_hit", Value: hit},
		}

		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			termLogger.Error(ctx, "term evaluation failed", fields...)
		} else if !hit {
			fields = append(fields, Field{Key: "value", Value: value})
			termLogger.Debug(ctx, "term evaluated", fields...)
		}

		return value, hit, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
