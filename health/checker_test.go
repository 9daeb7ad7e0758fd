package health

import (
	"context"
	"errors"
	"testing"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultConstructors(t *testing.T) {
	errBad := errors.New("bad")
	tests := []struct {
		name       string
		result     Result
		wantStatus Status
		wantErr    error
	}{
		{"healthy", Healthy("ok"), StatusHealthy, nil},
		{"degraded", Degraded("slow"), StatusDegraded, nil},
		{"unhealthy", Unhealthy("down", errBad), StatusUnhealthy, errBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", tt.result.Status, tt.wantStatus)
			}
			if tt.result.Error != tt.wantErr {
				t.Errorf("Error = %v, want %v", tt.result.Error, tt.wantErr)
			}
			if tt.result.Timestamp.IsZero() {
				t.Error("Timestamp should not be zero")
			}
		})
	}
}

func TestResult_WithDetails(t *testing.T) {
	r := Healthy("ok").WithDetails(map[string]any{"terms": 12})
	if r.Details["terms"] != 12 {
		t.Errorf("Details[terms] = %v, want 12", r.Details["terms"])
	}
}

func TestCheckerFunc(t *testing.T) {
	called := false
	c := NewCheckerFunc("tables", func(ctx context.Context) Result {
		called = true
		return Healthy("ok")
	})

	if c.Name() != "tables" {
		t.Errorf("Name() = %q, want tables", c.Name())
	}
	if r := c.Check(context.Background()); r.Status != StatusHealthy {
		t.Errorf("Check().Status = %v, want healthy", r.Status)
	}
	if !called {
		t.Error("underlying function was not called")
	}

	var _ Checker = c
}

func TestSentinelErrors(t *testing.T) {
	for _, err := range []error{ErrCheckFailed, ErrCheckTimeout, ErrCheckerNotFound} {
		if err == nil || err.Error() == "" {
			t.Errorf("sentinel error %v should have a message", err)
		}
	}
}
