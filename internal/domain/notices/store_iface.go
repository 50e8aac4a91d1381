package notices

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, n Notice) (*Notice, error)
	Get(ctx context.Context, orgID, id string) (*Notice, error)
	Update(ctx context.Context, orgID, id string, apply func(*Notice) error) (*Notice, error)
	Delete(ctx context.Context, orgID, id string) error
	List(ctx context.Context, orgID string, f Filter) ([]Notice, error)
	ListAddressedTo(ctx context.Context, orgID, employeeID, departmentID string, limit, offset int) ([]Notice, error)
}

var _ StoreAPI = (*Store)(nil)
