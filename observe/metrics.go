package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metric instrument names.
const (
	MetricRequests  = "precession.term.requests"
	MetricCacheHits = "precession.term.cache_hits"
	MetricErrors    = "precession.term.errors"
	MetricDuration  = "precession.term.duration_us"
)

// Metrics records term evaluation metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordEvaluation records one term request with its duration, cache
	// outcome and error status.
	RecordEvaluation(ctx context.Context, meta TermMeta, duration time.Duration, cacheHit bool, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	requests     metric.Int64Counter
	cacheHits    metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates a Metrics instance on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	return newMetrics(meter)
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	requests, err := meter.Int64Counter(
		MetricRequests,
		metric.WithDescription("Total number of term requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter(
		MetricCacheHits,
		metric.WithDescription("Term requests served from the term cache"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		MetricErrors,
		metric.WithDescription("Term requests that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		MetricDuration,
		metric.WithDescription("Term request duration in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		requests:     requests,
		cacheHits:    cacheHits,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// RecordEvaluation records metrics for a term request.
func (m *metricsImpl) RecordEvaluation(ctx context.Context, meta TermMeta, duration time.Duration, cacheHit bool, err error) {
	opt := metric.WithAttributes(meta.attributes()...)

	m.requests.Add(ctx, 1, opt)
	if cacheHit {
		m.cacheHits.Add(ctx, 1, opt)
	}
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Nanoseconds())/1e3, opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordEvaluation(context.Context, TermMeta, time.Duration, bool, error) {}
