// Package observe provides observability primitives for precession term
// evaluation.
//
// It is a pure instrumentation library: a JSON structured logger, an
// OpenTelemetry tracer and meter, and a Middleware that wraps a single term
// evaluation with all three. The engine defaults to the no-op Observer, so
// nothing is emitted unless a caller wires a configured one in.
package observe
