// Package handlertest provides an in-memory access gate and request helpers
// for handler tests.
package handlertest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/core"
	"hrms/internal/domain/enums"
	"hrms/internal/transport/http/middleware"
)

const (
	OrgID      = "org-1"
	HRID       = "hr-1"
	EmployeeID = "emp-1"
	OtherID    = "emp-2"
	AdminEmpID = "emp-3"
	DeptID     = "dep-1"

	HRToken       = "hr-token"
	EmpToken      = "emp-token"
	OtherToken    = "other-token"
	AdminEmpToken = "admin-emp-token"
)

// Gate resolves fixed tokens to identities and checks a fixed role table.
type Gate struct {
	Tokens map[string]auth.Identity
	Roles  map[string]enums.Role
}

func NewGate() *Gate {
	return &Gate{
		Tokens: map[string]auth.Identity{
			HRToken:    {SubjectID: HRID, Kind: core.KindHR, OrganizationID: OrgID, SessionID: "s-hr"},
			EmpToken:   {SubjectID: EmployeeID, Kind: core.KindEmployee, OrganizationID: OrgID, DepartmentID: DeptID, SessionID: "s-emp"},
			OtherToken: {SubjectID: OtherID, Kind: core.KindEmployee, OrganizationID: OrgID, SessionID: "s-other"},
			// An employee account promoted to HR-Admin.
			AdminEmpToken: {SubjectID: AdminEmpID, Kind: core.KindEmployee, OrganizationID: OrgID, DepartmentID: DeptID, SessionID: "s-admin-emp"},
		},
		Roles: map[string]enums.Role{
			HRID:       enums.RoleHRAdmin,
			EmployeeID: enums.RoleEmployee,
			OtherID:    enums.RoleEmployee,
			AdminEmpID: enums.RoleHRAdmin,
		},
	}
}

func (g *Gate) Authenticate(_ context.Context, credential string) (auth.Identity, error) {
	id, ok := g.Tokens[credential]
	if !ok {
		return auth.Identity{}, fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)
	}
	return id, nil
}

func (g *Gate) Authorize(_ context.Context, id auth.Identity, required enums.Role) error {
	if g.Roles[id.SubjectID] != required {
		return fmt.Errorf("%w: requires role %s", apperr.ErrForbidden, required)
	}
	return nil
}

// Router mounts register behind the Authenticate middleware.
func Router(gate middleware.Gate, register func(chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(gate))
		register(r)
	})
	return r
}

// Do sends a JSON request with the bearer token (if any) and records the response.
func Do(t *testing.T, handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details []apperr.Issue `json:"details"`
	} `json:"error"`
}

// Decode parses the response envelope, unmarshalling data into dst when non-nil.
func Decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	if dst != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}

// ExpectStatus fails the test when rec has another status code.
func ExpectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
