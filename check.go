package precession

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/behaver/precession/health"
)

var errEmptyEpsilon = errors.New("epsilon has no coefficients")

// validateTable reports the first structural problem in t.
func validateTable(t Table) error {
	if _, ok := t.Epsilon0(); !ok {
		return errEmptyEpsilon
	}
	for _, term := range PolynomialTerms() {
		coeffs, ok := t[term]
		if !ok {
			return fmt.Errorf("missing term %s", term)
		}
		for i, c := range coeffs {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("term %s coefficient %d is %v", term, i, c)
			}
		}
	}
	return nil
}

// NewTableChecker returns a health.Checker that validates t under name.
// The table is copied, so later changes by the caller are not observed.
func NewTableChecker(name string, t Table) health.Checker {
	t = t.Clone()
	return health.NewCheckerFunc(name, func(context.Context) health.Result {
		if err := validateTable(t); err != nil {
			return health.Unhealthy("coefficient table is invalid", fmt.Errorf("%w: %v", health.ErrCheckFailed, err))
		}
		return health.Healthy("coefficient table is valid").WithDetails(map[string]any{
			"terms": len(t),
		})
	})
}

// TableChecker returns a checker for the built-in table of m.
// An unknown model yields a checker that always reports unhealthy.
func TableChecker(m Model) health.Checker {
	var t Table
	if m.valid() {
		t = builtinTables[m]
	}
	return NewTableChecker(m.String(), t)
}

// CheckTables validates every built-in table. Results are keyed by model
// name.
func CheckTables(ctx context.Context) (health.Status, map[string]health.Result) {
	agg := health.NewAggregator()
	for _, m := range Models() {
		agg.Register(m.String(), TableChecker(m))
	}
	results := agg.CheckAll(ctx)
	return agg.OverallStatus(results), results
}
