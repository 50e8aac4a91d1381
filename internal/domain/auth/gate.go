// Package auth is the access gate: Authenticate resolves a bearer credential
// to an Identity and Authorize checks the caller's current role.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/core"
	"hrms/internal/domain/enums"
	"hrms/internal/platform/crypto"
)

type Gate struct {
	Sessions SessionStore
	Accounts Accounts
	Secret   []byte
	TTL      time.Duration
	Now      func() time.Time
}

func NewGate(sessions SessionStore, accounts Accounts, secret string, ttl time.Duration) *Gate {
	return &Gate{Sessions: sessions, Accounts: accounts, Secret: []byte(secret), TTL: ttl, Now: time.Now}
}

func unauthorized(reason string) error {
	return fmt.Errorf("%w: %s", apperr.ErrUnauthorized, reason)
}

// Authenticate accepts a credential only when its signature and expiry hold,
// its session is live and its subject still exists.
func (g *Gate) Authenticate(ctx context.Context, credential string) (Identity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return Identity{}, unauthorized("missing credential")
	}
	claims, err := ParseToken(g.Secret, credential, g.Now)
	if err != nil {
		return Identity{}, unauthorized("invalid token")
	}

	session, err := g.Sessions.GetSession(ctx, claims.SessionID)
	if errors.Is(err, apperr.ErrNotFound) {
		return Identity{}, unauthorized("unknown session")
	}
	if err != nil {
		return Identity{}, err
	}
	switch {
	case session.RevokedAt != nil:
		return Identity{}, unauthorized("session revoked")
	case !g.Now().Before(session.ExpiresAt):
		return Identity{}, unauthorized("session expired")
	case session.TokenHash != crypto.HashToken(credential),
		session.SubjectID != claims.SubjectID,
		session.OrganizationID != claims.OrganizationID,
		session.SubjectKind != claims.Kind:
		return Identity{}, unauthorized("session mismatch")
	}

	account, err := g.Accounts.Account(ctx, claims.Kind, claims.OrganizationID, claims.SubjectID)
	if errors.Is(err, apperr.ErrNotFound) {
		return Identity{}, unauthorized("subject no longer exists")
	}
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		SubjectID:      account.ID,
		Kind:           claims.Kind,
		OrganizationID: account.OrganizationID,
		DepartmentID:   account.DepartmentID,
		SessionID:      session.ID,
	}, nil
}

// Authorize permits the identity only when its current role equals required.
func (g *Gate) Authorize(ctx context.Context, id Identity, required enums.Role) error {
	account, err := g.Accounts.Account(ctx, id.Kind, id.OrganizationID, id.SubjectID)
	if errors.Is(err, apperr.ErrNotFound) {
		return unauthorized("subject no longer exists")
	}
	if err != nil {
		return err
	}
	if account.Role != required {
		return fmt.Errorf("%w: requires role %s", apperr.ErrForbidden, required)
	}
	return nil
}

// Login verifies the password and opens a session. Unknown emails and wrong
// passwords fail the same way.
func (g *Gate) Login(ctx context.Context, kind core.AccountKind, email, password string) (*LoginResult, error) {
	if !kind.Valid() {
		return nil, apperr.Invalid("kind", "must be employee or hr")
	}
	account, err := g.Accounts.FindByEmail(ctx, kind, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if crypto.CheckPassword(account.PasswordHash, password) != nil {
		return nil, unauthorized("invalid email or password")
	}

	now := g.Now()
	expires := now.Add(g.TTL)
	claims := Claims{
		SubjectID:      account.ID,
		Kind:           kind,
		OrganizationID: account.OrganizationID,
		SessionID:      uuid.NewString(),
	}
	token, err := GenerateToken(g.Secret, claims, now, expires)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	if err := g.Sessions.CreateSession(ctx, Session{
		ID:             claims.SessionID,
		OrganizationID: account.OrganizationID,
		SubjectID:      account.ID,
		SubjectKind:    kind,
		TokenHash:      crypto.HashToken(token),
		ExpiresAt:      expires,
	}); err != nil {
		return nil, err
	}
	if err := g.Accounts.TouchLastLogin(ctx, kind, account.OrganizationID, account.ID); err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: expires, Account: account}, nil
}

// Logout revokes the identity's session; its token stops authenticating.
func (g *Gate) Logout(ctx context.Context, id Identity) error {
	return g.Sessions.RevokeSession(ctx, id.OrganizationID, id.SessionID)
}
