package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/core"
)

var noContent = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func jsonRequest(method, path, body, addr string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = addr
	return req
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLimiterWindowResetsAndReportsRetry(t *testing.T) {
	now := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC)
	l := newLimiter(1, time.Minute, actorKey)
	l.now = func() time.Time { return now }
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.allow(w, r) {
			w.WriteHeader(http.StatusNoContent)
		}
	})

	if rec := serve(handler, jsonRequest(http.MethodPost, "/x", "", "192.0.2.20:1111")); rec.Code != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}
	rec := serve(handler, jsonRequest(http.MethodPost, "/x", "", "192.0.2.20:2222"))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected same ip to be throttled, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "60" || rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("unexpected headers: %v", rec.Header())
	}

	now = now.Add(time.Minute)
	if rec := serve(handler, jsonRequest(http.MethodPost, "/x", "", "192.0.2.20:1111")); rec.Code != http.StatusNoContent {
		t.Fatalf("expected request after the window to pass, got %d", rec.Code)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		method, path string
		want         routeClass
	}{
		{http.MethodPost, "/api/v1/auth/login", routeCredential},
		{http.MethodPost, "/api/v1/auth/forgot-password", routeCredential},
		{http.MethodPost, "/api/v1/auth/reset-password", routeCredential},
		{http.MethodPut, "/api/v1/me", routeActor},
		{http.MethodPost, "/api/v1/leaves/l1/decision", routeActor},
		{http.MethodPost, "/api/v1/requests/r1/decision", routeActor},
		{http.MethodGet, "/api/v1/me", routeOpen},
		{http.MethodPost, "/api/v1/notices", routeOpen},
	}
	for _, tc := range tests {
		if got := classify(httptest.NewRequest(tc.method, tc.path, nil)); got != tc.want {
			t.Errorf("%s %s: got %d want %d", tc.method, tc.path, got, tc.want)
		}
	}
}

func TestSensitiveRateLimitScopesByCaller(t *testing.T) {
	limited := SensitiveRateLimit(4, time.Minute)(noContent)

	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		if rec := serve(limited, req); rec.Code != http.StatusNoContent {
			t.Fatalf("expected read %d to bypass limits, got %d", i+1, rec.Code)
		}
	}

	hr := WithIdentity(context.Background(), auth.Identity{OrganizationID: "org-1", Kind: core.KindHR, SubjectID: "hr-1"})
	other := WithIdentity(context.Background(), auth.Identity{OrganizationID: "org-1", Kind: core.KindHR, SubjectID: "hr-2"})
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves/l1/decision", nil).WithContext(hr)
		req.RemoteAddr = "198.51.100.41:9999"
		rec := serve(limited, req)
		if i < 2 && rec.Code != http.StatusNoContent {
			t.Fatalf("expected decision %d to pass, got %d", i+1, rec.Code)
		}
		if i == 2 && rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected third decision to be throttled, got %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves/l1/decision", nil).WithContext(other)
	req.RemoteAddr = "198.51.100.41:9999"
	if rec := serve(limited, req); rec.Code != http.StatusNoContent {
		t.Fatalf("expected another caller on the same ip to pass, got %d", rec.Code)
	}
}

func TestSensitiveRateLimitLoginByEmail(t *testing.T) {
	limited := SensitiveRateLimit(4, time.Minute)(noContent)
	body := `{"email":"Jane@Example.com","password":"x"}`

	if rec := serve(limited, jsonRequest(http.MethodPost, "/api/v1/auth/login", body, "192.0.2.50:1000")); rec.Code != http.StatusNoContent {
		t.Fatalf("expected first login to pass, got %d", rec.Code)
	}
	if rec := serve(limited, jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"jane@example.com"}`, "192.0.2.51:1000")); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second login for the same email to be throttled, got %d", rec.Code)
	}
}

func TestEmailKeyRestoresBody(t *testing.T) {
	body := `{"email":"a@example.com","password":"long-enough"}`
	req := jsonRequest(http.MethodPost, "/api/v1/auth/login", body, "192.0.2.60:1000")

	if key := emailKey(req); key != "email:a@example.com" {
		t.Fatalf("unexpected key %q", key)
	}
	rest, err := io.ReadAll(req.Body)
	if err != nil || string(rest) != body {
		t.Fatalf("expected body restored, got %q (%v)", rest, err)
	}
}
