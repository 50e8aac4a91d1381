package calendar

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, e Event) (*Event, error)
	Get(ctx context.Context, orgID, id string) (*Event, error)
	Update(ctx context.Context, orgID, id string, apply func(*Event) error) (*Event, error)
	Delete(ctx context.Context, orgID, id string) error
	List(ctx context.Context, orgID string, f Filter) ([]Event, error)
}

var _ StoreAPI = (*Store)(nil)
