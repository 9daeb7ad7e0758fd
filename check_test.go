package precession

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/behaver/precession/epoch"
	"github.com/behaver/precession/health"
)

func TestTableFor(t *testing.T) {
	table, err := TableFor(IAU2000)
	if err != nil {
		t.Fatal(err)
	}
	table[TermEpsilon][0] = 0
	if eps0, _ := builtinTables[IAU2000].Epsilon0(); eps0 != 84381.448 {
		t.Errorf("TableFor must return a copy; built-in epsilon0 is now %v", eps0)
	}

	if _, err := TableFor(Model(3)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TableFor(3) error = %v, want ErrInvalidArgument", err)
	}
}

func TestBuiltinTablesEpsilon0(t *testing.T) {
	want := map[Model]float64{IAU1976: 84381.448, IAU2000: 84381.448, IAU2006: 84381.406}
	for m, w := range want {
		if got, ok := builtinTables[m].Epsilon0(); !ok || got != w {
			t.Errorf("%s epsilon0 = %v, %v; want %v", m, got, ok, w)
		}
	}
}

func TestCheckTables(t *testing.T) {
	status, results := CheckTables(context.Background())
	if status != health.StatusHealthy {
		t.Errorf("CheckTables() status = %v, want healthy", status)
	}
	if len(results) != len(Models()) {
		t.Fatalf("CheckTables() returned %d results", len(results))
	}
	for _, m := range Models() {
		if r, ok := results[m.String()]; !ok || r.Status != health.StatusHealthy {
			t.Errorf("%s result = %+v", m, r)
		}
	}
}

func TestNewTableChecker(t *testing.T) {
	base, _ := TableFor(IAU2006)

	tests := []struct {
		name   string
		mutate func(Table)
		want   health.Status
	}{
		{"valid", func(Table) {}, health.StatusHealthy},
		{"empty epsilon", func(tb Table) { tb[TermEpsilon] = nil }, health.StatusUnhealthy},
		{"missing epsilon", func(tb Table) { delete(tb, TermEpsilon) }, health.StatusUnhealthy},
		{"missing term", func(tb Table) { delete(tb, TermOmega) }, health.StatusUnhealthy},
		{"nan coefficient", func(tb Table) { tb[TermQ][2] = math.NaN() }, health.StatusUnhealthy},
		{"inf coefficient", func(tb Table) { tb[TermPi][0] = math.Inf(-1) }, health.StatusUnhealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := base.Clone()
			tt.mutate(table)
			r := NewTableChecker("custom", table).Check(context.Background())
			if r.Status != tt.want {
				t.Errorf("Status = %v, want %v", r.Status, tt.want)
			}
			if tt.want == health.StatusUnhealthy && !errors.Is(r.Error, health.ErrCheckFailed) {
				t.Errorf("Error = %v, want ErrCheckFailed", r.Error)
			}
		})
	}
}

func TestTableChecker_UnknownModel(t *testing.T) {
	r := TableChecker(Model(9)).Check(context.Background())
	if r.Status != health.StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", r.Status)
	}
}

func TestEvaluate(t *testing.T) {
	two, _ := epoch.FromCenturies(2)
	tests := []struct {
		name   string
		coeffs []float64
		ep     Epoch
		want   float64
	}{
		{"empty", nil, two, 0},
		{"constant", []float64{5}, two, 5},
		{"quadratic at t=2", []float64{1, 1, 1}, &countingEpoch{t: 2}, 7},
		{"cubic at J2000", []float64{3, 4, 5, 6}, epoch.AtJ2000(), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.coeffs, tt.ep); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}
