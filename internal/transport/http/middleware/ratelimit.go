package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"hrms/internal/transport/http/api"
)

type keyFunc func(r *http.Request) string

type window struct {
	count int
	reset time.Time
}

// limiter is a fixed-window counter per key.
type limiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	key     keyFunc
	windows map[string]*window
	now     func() time.Time
}

func newLimiter(limit int, period time.Duration, key keyFunc) *limiter {
	return &limiter{limit: limit, period: period, key: key, windows: map[string]*window{}, now: time.Now}
}

// allow counts the request and writes 429 once the key is over its limit.
func (l *limiter) allow(w http.ResponseWriter, r *http.Request) bool {
	key := l.key(r)
	if key == "" {
		key = "ip:" + clientIP(r)
	}
	now := l.now()

	l.mu.Lock()
	win, ok := l.windows[key]
	if !ok || !now.Before(win.reset) {
		win = &window{reset: now.Add(l.period)}
		l.windows[key] = win
	}
	win.count++
	count, reset := win.count, win.reset
	l.mu.Unlock()

	resetIn := int((reset.Sub(now) + time.Second - 1) / time.Second)
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(l.limit-count, 0)))
	w.Header().Set("X-RateLimit-Reset", strconv.Itoa(resetIn))
	if count <= l.limit {
		return true
	}

	w.Header().Set("Retry-After", strconv.Itoa(max(resetIn, 1)))
	slog.WarnContext(r.Context(), "rate limit exceeded", "key", key, "method", r.Method, "path", r.URL.Path, "limit", l.limit)
	api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(r.Context()))
	return false
}

type routeClass int

const (
	routeOpen routeClass = iota
	// routeCredential is an unauthenticated route that accepts an email or token.
	routeCredential
	// routeActor is an authenticated write worth throttling per caller.
	routeActor
)

var credentialRoutes = map[string]bool{
	"/auth/login":           true,
	"/auth/signup":          true,
	"/auth/forgot-password": true,
	"/auth/reset-password":  true,
}

var actorRoutes = map[string]bool{
	"/me":                        true,
	"/auth/verify-email":         true,
	"/auth/verify-email/request": true,
	"/me/attendance/clock-in":    true,
	"/me/attendance/clock-out":   true,
	"/salaries":                  true,
}

func classify(r *http.Request) routeClass {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return routeOpen
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	switch {
	case credentialRoutes[path]:
		return routeCredential
	case actorRoutes[path]:
		return routeActor
	case strings.HasSuffix(path, "/decision") &&
		(strings.HasPrefix(path, "/leaves/") || strings.HasPrefix(path, "/requests/")):
		return routeActor
	}
	return routeOpen
}

// SensitiveRateLimit throttles credential routes per client IP and per
// submitted email, and selected writes per authenticated caller. Credential
// routes get a quarter of limit per window, caller writes half.
func SensitiveRateLimit(limit int, period time.Duration) func(http.Handler) http.Handler {
	byIP := newLimiter(max(limit/4, 1), period, func(r *http.Request) string { return "ip:" + clientIP(r) })
	byEmail := newLimiter(max(limit/4, 1), period, emailKey)
	byActor := newLimiter(max(limit/2, 1), period, actorKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch classify(r) {
			case routeCredential:
				if !byIP.allow(w, r) || !byEmail.allow(w, r) {
					return
				}
			case routeActor:
				if !byActor.allow(w, r) {
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func actorKey(r *http.Request) string {
	if id, ok := GetIdentity(r.Context()); ok && id.SubjectID != "" {
		return "subject:" + id.OrganizationID + ":" + string(id.Kind) + ":" + id.SubjectID
	}
	return ""
}

// emailKey reads the email field of a JSON body and restores the body for
// the handler. Requests without one share the client IP key.
func emailKey(r *http.Request) string {
	if r.Body == nil || !strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "application/json") {
		return ""
	}
	body := r.Body
	raw, err := io.ReadAll(io.LimitReader(body, 64*1024))
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), body))
	if err != nil {
		return ""
	}
	var payload struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(raw, &payload) != nil {
		return ""
	}
	if email := strings.ToLower(strings.TrimSpace(payload.Email)); email != "" {
		return "email:" + email
	}
	return ""
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
