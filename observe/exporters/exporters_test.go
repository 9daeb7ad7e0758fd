package exporters

import (
	"context"
	"strings"
	"testing"
)

func TestNewTracingExporter(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string // substring; empty means success
	}{
		{name: Stdout},
		{name: None},
		{name: ""},
		{name: OTLP, env: map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": "", "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT": ""}, wantErr: "endpoint"},
		{name: OTLP, env: map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": "http://localhost:4317"}},
		{name: Jaeger, env: map[string]string{"OTEL_EXPORTER_JAEGER_ENDPOINT": ""}, wantErr: "endpoint"},
		{name: "zipkin", wantErr: "unknown exporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.wantErr, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			exp, err := NewTracingExporter(context.Background(), tt.name)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.wantErr)
				}
				if !strings.Contains(strings.ToLower(err.Error()), tt.wantErr) {
					t.Errorf("error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exp == nil {
				t.Fatal("expected non-nil exporter")
			}
			_ = exp.Shutdown(context.Background())
		})
	}
}

func TestNewMetricsReader(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: Stdout},
		{name: None},
		{name: Prometheus},
		{name: OTLP, env: map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": "", "OTEL_EXPORTER_OTLP_METRICS_ENDPOINT": ""}, wantErr: "endpoint"},
		{name: "badvalue", wantErr: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			reader, err := NewMetricsReader(context.Background(), tt.name)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.wantErr)
				}
				if !strings.Contains(strings.ToLower(err.Error()), tt.wantErr) {
					t.Errorf("error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reader == nil {
				t.Fatal("expected non-nil reader")
			}
		})
	}
}

func TestFirstEnv(t *testing.T) {
	t.Setenv("PRECESSION_TEST_A", "")
	t.Setenv("PRECESSION_TEST_B", "b")

	if got := firstEnv("PRECESSION_TEST_A", "PRECESSION_TEST_B"); got != "b" {
		t.Errorf("firstEnv = %q, want %q", got, "b")
	}
	if got := firstEnv("PRECESSION_TEST_A"); got != "" {
		t.Errorf("firstEnv = %q, want empty", got)
	}
}
