package schedule

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, s Shift) (*Shift, error)
	Get(ctx context.Context, orgID, id string) (*Shift, error)
	Update(ctx context.Context, orgID, id string, apply func(*Shift) error) (*Shift, error)
	Delete(ctx context.Context, orgID, id string) error
	List(ctx context.Context, orgID string, f Filter) ([]Shift, error)
}

var _ StoreAPI = (*Store)(nil)
