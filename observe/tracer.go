package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// TermMeta describes one term evaluation for telemetry purposes.
type TermMeta struct {
	Model string  // Normalized model name, e.g. "iau2006"
	Term  string  // Term name, e.g. "psi" (required)
	JDE   float64 // Julian Ephemeris Date of the epoch (optional)
}

// SpanName returns the deterministic span name for this term.
// Format: precession.term.<model>.<term> or precession.term.<term>
func (m TermMeta) SpanName() string {
	if m.Model != "" {
		return "precession.term." + m.Model + "." + m.Term
	}
	return "precession.term." + m.Term
}

// Validate checks that the metadata names a term.
func (m TermMeta) Validate() error {
	if m.Term == "" {
		return ErrMissingTermName
	}
	return nil
}

func (m TermMeta) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("precession.term", m.Term),
	}
	if m.Model != "" {
		attrs = append(attrs, attribute.String("precession.model", m.Model))
	}
	return attrs
}

// Tracer wraps OpenTelemetry tracing with term-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a term evaluation.
	StartSpan(ctx context.Context, meta TermMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording the cache outcome and any error.
	EndSpan(span trace.Span, cacheHit bool, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with term metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta TermMeta) (context.Context, trace.Span) {
	attrs := meta.attributes()
	if meta.JDE != 0 {
		attrs = append(attrs, attribute.Float64("precession.jde", meta.JDE))
	}
	attrs = append(attrs, attribute.Bool("precession.error", false))

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, cacheHit bool, err error) {
	span.SetAttributes(attribute.Bool("precession.cache_hit", cacheHit))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("precession.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta TermMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, _ bool, _ error) {
	span.End()
}
