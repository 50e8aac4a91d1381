package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/core"
	"hrms/internal/domain/enums"
	"hrms/internal/platform/crypto"
)

type memSessions struct {
	sessions map[string]*Session
}

func (m *memSessions) CreateSession(_ context.Context, s Session) error {
	m.sessions[s.ID] = &s
	return nil
}

func (m *memSessions) GetSession(_ context.Context, id string) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *s
	return &out, nil
}

func (m *memSessions) RevokeSession(_ context.Context, orgID, id string) error {
	s, ok := m.sessions[id]
	if !ok || s.OrganizationID != orgID || s.RevokedAt != nil {
		return apperr.ErrNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

type memAccounts struct {
	accounts map[string]*core.Account
	touched  int
}

func (m *memAccounts) Account(_ context.Context, _ core.AccountKind, orgID, id string) (*core.Account, error) {
	a, ok := m.accounts[id]
	if !ok || a.OrganizationID != orgID {
		return nil, apperr.ErrNotFound
	}
	out := *a
	return &out, nil
}

func (m *memAccounts) FindByEmail(_ context.Context, _ core.AccountKind, email string) (*core.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			out := *a
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (m *memAccounts) TouchLastLogin(context.Context, core.AccountKind, string, string) error {
	m.touched++
	return nil
}

func newTestGate(t *testing.T) (*Gate, *memAccounts, *memSessions) {
	t.Helper()
	hash, err := crypto.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	accounts := &memAccounts{accounts: map[string]*core.Account{
		"hr-1": {ID: "hr-1", OrganizationID: "org-1", Email: "boss@example.com", PasswordHash: hash, Role: enums.RoleHRAdmin},
		"emp-1": {ID: "emp-1", OrganizationID: "org-1", DepartmentID: "dep-1", Email: "worker@example.com",
			PasswordHash: hash, Role: enums.RoleEmployee},
	}}
	sessions := &memSessions{sessions: map[string]*Session{}}
	return NewGate(sessions, accounts, "test-secret", time.Hour), accounts, sessions
}

func TestLoginAndAuthenticate(t *testing.T) {
	gate, accounts, _ := newTestGate(t)
	ctx := context.Background()

	res, err := gate.Login(ctx, core.KindEmployee, "worker@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if accounts.touched != 1 {
		t.Fatal("expected last login to be stamped")
	}

	id, err := gate.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if id.SubjectID != "emp-1" || id.OrganizationID != "org-1" || id.DepartmentID != "dep-1" || id.Kind != core.KindEmployee {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	gate, _, _ := newTestGate(t)
	ctx := context.Background()

	if _, err := gate.Login(ctx, core.KindHR, "boss@example.com", "wrong"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}
	if _, err := gate.Login(ctx, core.KindHR, "nobody@example.com", "correct-horse"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
	if _, err := gate.Login(ctx, "admin", "boss@example.com", "correct-horse"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for unknown kind, got %v", err)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	gate, accounts, sessions := newTestGate(t)
	ctx := context.Background()

	res, err := gate.Login(ctx, core.KindHR, "boss@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	tests := []struct {
		name  string
		setup func() string
	}{
		{"empty", func() string { return "" }},
		{"garbage", func() string { return "not-a-jwt" }},
		{"fixed token", func() string { return "Bearer admin" }},
		{"wrong secret", func() string {
			other := NewGate(sessions, accounts, "other-secret", time.Hour)
			forged, _ := GenerateToken(other.Secret, Claims{SubjectID: "hr-1", Kind: core.KindHR, OrganizationID: "org-1", SessionID: "s"}, time.Now(), time.Now().Add(time.Hour))
			return forged
		}},
		{"unknown session", func() string {
			token, _ := GenerateToken(gate.Secret, Claims{SubjectID: "hr-1", Kind: core.KindHR, OrganizationID: "org-1", SessionID: "missing"}, time.Now(), time.Now().Add(time.Hour))
			return token
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gate.Authenticate(ctx, tc.setup()); !errors.Is(err, apperr.ErrUnauthorized) {
				t.Fatalf("expected unauthorized, got %v", err)
			}
		})
	}

	t.Run("expired", func(t *testing.T) {
		later := *gate
		later.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		if _, err := later.Authenticate(ctx, res.Token); !errors.Is(err, apperr.ErrUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("deleted subject", func(t *testing.T) {
		saved := accounts.accounts["hr-1"]
		delete(accounts.accounts, "hr-1")
		defer func() { accounts.accounts["hr-1"] = saved }()
		if _, err := gate.Authenticate(ctx, res.Token); !errors.Is(err, apperr.ErrUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("logged out", func(t *testing.T) {
		id, err := gate.Authenticate(ctx, res.Token)
		if err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		if err := gate.Logout(ctx, id); err != nil {
			t.Fatalf("logout: %v", err)
		}
		if _, err := gate.Authenticate(ctx, res.Token); !errors.Is(err, apperr.ErrUnauthorized) {
			t.Fatalf("expected unauthorized after logout, got %v", err)
		}
	})
}

func TestAuthorizeUsesCurrentRole(t *testing.T) {
	gate, accounts, _ := newTestGate(t)
	ctx := context.Background()
	id := Identity{SubjectID: "emp-1", Kind: core.KindEmployee, OrganizationID: "org-1"}

	if err := gate.Authorize(ctx, id, enums.RoleEmployee); err != nil {
		t.Fatalf("expected employee to pass, got %v", err)
	}
	if err := gate.Authorize(ctx, id, enums.RoleHRAdmin); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	accounts.accounts["emp-1"].Role = enums.RoleHRAdmin
	if err := gate.Authorize(ctx, id, enums.RoleHRAdmin); err != nil {
		t.Fatalf("expected promoted role to pass, got %v", err)
	}
}
