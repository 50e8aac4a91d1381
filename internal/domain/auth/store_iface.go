package auth

import (
	"context"

	"hrms/internal/domain/core"
)

type SessionStore interface {
	CreateSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	RevokeSession(ctx context.Context, orgID, id string) error
}

// Accounts is the slice of the account service the gate relies on.
type Accounts interface {
	Account(ctx context.Context, kind core.AccountKind, orgID, id string) (*core.Account, error)
	FindByEmail(ctx context.Context, kind core.AccountKind, email string) (*core.Account, error)
	TouchLastLogin(ctx context.Context, kind core.AccountKind, orgID, id string) error
}

var (
	_ SessionStore     = (*Store)(nil)
	_ SessionRevoker   = (*Store)(nil)
	_ Accounts         = (*core.Service)(nil)
	_ RecoveryAccounts = (*core.Store)(nil)
)
