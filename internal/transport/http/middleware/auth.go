package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/enums"
	"hrms/internal/transport/http/api"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// Gate is the access gate the middleware delegates to.
type Gate interface {
	Authenticate(ctx context.Context, credential string) (auth.Identity, error)
	Authorize(ctx context.Context, id auth.Identity, required enums.Role) error
}

var _ Gate = (*auth.Gate)(nil)

// Authenticate rejects requests without a valid bearer credential and
// stores the resolved Identity in the request context.
func Authenticate(gate Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := gate.Authenticate(r.Context(), bearerToken(r))
			if err != nil {
				api.FailErr(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole runs after Authenticate and admits only callers whose current
// role equals role.
func RequireRole(gate Gate, role enums.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				api.FailErr(w, r, apperr.ErrUnauthorized)
				return
			}
			if err := gate.Authorize(r.Context(), identity, role); err != nil {
				api.FailErr(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(auth.Identity)
	return id, ok
}
