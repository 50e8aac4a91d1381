package organization

import (
	"context"

	"hrms/internal/domain/core"
)

type StoreAPI interface {
	Insert(ctx context.Context, o Organization) (*Organization, error)
	InsertWithAdmin(ctx context.Context, o Organization, admin core.Account) (*Organization, *core.Account, error)
	Get(ctx context.Context, id string) (*Organization, error)
	Update(ctx context.Context, id string, apply func(*Organization) error) (*Organization, error)
}

var _ StoreAPI = (*Store)(nil)
