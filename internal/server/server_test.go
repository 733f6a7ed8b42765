package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newspulse/internal/telemetry"
)

func TestHealthz(t *testing.T) {
	e := newEcho(telemetry.New())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("expected body ok, got %q", rec.Body.String())
	}
}

func TestMetricsExposesCounters(t *testing.T) {
	m := telemetry.New()
	m.Interactions.WithLabelValues("category").Inc()
	e := newEcho(m)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "newspulse_interactions_total") {
		t.Fatalf("expected interactions counter in metrics output")
	}
}
