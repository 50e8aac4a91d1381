package requests

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, r Request) (*Request, error)
	Get(ctx context.Context, orgID, id string) (*Request, error)
	Update(ctx context.Context, orgID, id string, apply func(*Request) error) (*Request, error)
	List(ctx context.Context, orgID string, f Filter) ([]Request, error)
}

var _ StoreAPI = (*Store)(nil)
