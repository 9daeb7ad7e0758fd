package precession

import (
	"testing"

	"github.com/behaver/precession/epoch"
)

func BenchmarkEngine_CachedValue(b *testing.B) {
	e, _ := New(epoch.MustNew(2460000.5))
	e.Zeta()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Zeta()
	}
}

func BenchmarkEngine_SnapshotFreshEpoch(b *testing.B) {
	e, _ := New(epoch.AtJ2000())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.SetEpoch(epoch.MustNew(2451545.0 + float64(i)))
		_, _ = e.Snapshot()
	}
}

func BenchmarkEvaluate(b *testing.B) {
	ep := epoch.MustNew(2460000.5)
	coeffs := builtinTables[IAU2006][TermPsi]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(coeffs, ep)
	}
}
