package leave

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, l Leave) (*Leave, error)
	Get(ctx context.Context, orgID, id string) (*Leave, error)
	Update(ctx context.Context, orgID, id string, apply func(*Leave) error) (*Leave, error)
	List(ctx context.Context, orgID string, f Filter) ([]Leave, error)
}

var _ StoreAPI = (*Store)(nil)
