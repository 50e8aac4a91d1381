package core

import "context"

type StoreAPI interface {
	InsertAccount(ctx context.Context, kind AccountKind, a Account) (*Account, error)
	GetAccount(ctx context.Context, kind AccountKind, orgID, id string) (*Account, error)
	FindAccountByEmail(ctx context.Context, kind AccountKind, email string) (*Account, error)
	FindAccountByResetToken(ctx context.Context, kind AccountKind, tokenHash string) (*Account, error)
	UpdateAccount(ctx context.Context, kind AccountKind, orgID, id string, apply func(*Account) error) (*Account, error)
	ListAccounts(ctx context.Context, kind AccountKind, orgID string, f Filter) ([]Account, error)
	TouchLastLogin(ctx context.Context, kind AccountKind, orgID, id string) error

	InsertDepartment(ctx context.Context, d Department) (*Department, error)
	GetDepartment(ctx context.Context, orgID, id string) (*Department, error)
	UpdateDepartment(ctx context.Context, orgID, id string, apply func(*Department) error) (*Department, error)
	ListDepartments(ctx context.Context, orgID string, f Filter) ([]Department, error)
	DeleteDepartment(ctx context.Context, orgID, id string) error
}

var _ StoreAPI = (*Store)(nil)
