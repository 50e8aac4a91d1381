package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"hrms/internal/platform/config"
	"hrms/internal/platform/metrics"
	"hrms/internal/transport/http/handlers/handlertest"
)

func testConfig() config.Config {
	return config.Config{
		Environment:             "development",
		AllowedOrigins:          []string{"http://localhost:5173"},
		MaxBodyBytes:            4096,
		LoginRateLimitPerMinute: 100,
	}
}

func newTestRouter(collector *metrics.Collector, ready func(context.Context) error) http.Handler {
	return NewRouter(Services{}, Options{
		Config:  testConfig(),
		Metrics: collector,
		Gate:    handlertest.NewGate(),
		Ready:   ready,
	})
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(metrics.New(), func(context.Context) error { return errors.New("down") })

	rec := handlertest.Do(t, router, http.MethodGet, "/healthz", "", "")
	handlertest.ExpectStatus(t, rec, http.StatusOK)
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" || rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected secure headers and request id, got %v", rec.Header())
	}

	rec = handlertest.Do(t, router, http.MethodGet, "/readyz", "", "")
	handlertest.ExpectStatus(t, rec, http.StatusServiceUnavailable)
}

func TestAPIRequiresCredential(t *testing.T) {
	router := newTestRouter(metrics.New(), nil)

	paths := []string{"/api/v1/me", "/api/v1/organization", "/api/v1/employees", "/api/v1/me/leaves", "/api/v1/dashboard"}
	for _, path := range paths {
		rec := handlertest.Do(t, router, http.MethodGet, path, "", "")
		handlertest.ExpectStatus(t, rec, http.StatusUnauthorized)
		env := handlertest.Decode(t, rec, nil)
		if env.Error == nil || env.Error.Code != "unauthorized" {
			t.Fatalf("%s: unexpected envelope %+v", path, env)
		}
	}
}

func TestHROnlyRoutesRejectEmployees(t *testing.T) {
	router := newTestRouter(metrics.New(), nil)

	paths := []string{"/api/v1/employees", "/api/v1/salaries", "/api/v1/applicants", "/api/v1/dashboard", "/api/v1/metrics"}
	for _, path := range paths {
		rec := handlertest.Do(t, router, http.MethodGet, path, handlertest.EmpToken, "")
		handlertest.ExpectStatus(t, rec, http.StatusForbidden)
	}
}

func TestMetricsCountDeniedRequests(t *testing.T) {
	collector := metrics.New()
	router := newTestRouter(collector, nil)

	handlertest.ExpectStatus(t, handlertest.Do(t, router, http.MethodGet, "/api/v1/me", "", ""), http.StatusUnauthorized)
	handlertest.ExpectStatus(t, handlertest.Do(t, router, http.MethodGet, "/api/v1/dashboard", handlertest.EmpToken, ""), http.StatusForbidden)

	rec := handlertest.Do(t, router, http.MethodGet, "/api/v1/metrics", handlertest.HRToken, "")
	handlertest.ExpectStatus(t, rec, http.StatusOK)
	var got metrics.Snapshot
	handlertest.Decode(t, rec, &got)
	if got.DeniedTotal != 2 || got.RequestsTotal != 2 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestBodyLimit(t *testing.T) {
	router := newTestRouter(metrics.New(), nil)
	body := `{"name":"` + strings.Repeat("x", 8192) + `"}`
	rec := handlertest.Do(t, router, http.MethodPost, "/api/v1/departments", handlertest.HRToken, body)
	handlertest.ExpectStatus(t, rec, http.StatusRequestEntityTooLarge)
}
