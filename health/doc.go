// Package health provides health checking primitives.
//
// A Checker reports a Result with a Status of Healthy, Degraded or
// Unhealthy. An Aggregator runs a set of checkers, in parallel by default,
// and folds their results into one overall Status. The precession package
// uses it to validate its coefficient tables.
//
//	agg := health.NewAggregator()
//	agg.Register("tables", checker)
//	results := agg.CheckAll(ctx)
//	status := agg.OverallStatus(results)
package health
