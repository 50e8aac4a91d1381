package notices

import "context"

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) Create(ctx context.Context, orgID, createdByID string, n Notice) (*Notice, error) {
	n.OrganizationID = orgID
	n.CreatedByID = createdByID
	normalize(&n)
	if err := validate(n); err != nil {
		return nil, err
	}
	return s.Store.Insert(ctx, n)
}

func (s *Service) Get(ctx context.Context, orgID, id string) (*Notice, error) {
	return s.Store.Get(ctx, orgID, id)
}

func (s *Service) Update(ctx context.Context, orgID, id string, mutate func(*Notice) error) (*Notice, error) {
	return s.Store.Update(ctx, orgID, id, func(current *Notice) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.OrganizationID = snapshot.OrganizationID
		current.CreatedByID = snapshot.CreatedByID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		normalize(current)
		return validate(*current)
	})
}

func (s *Service) Delete(ctx context.Context, orgID, id string) error {
	return s.Store.Delete(ctx, orgID, id)
}

func (s *Service) List(ctx context.Context, orgID string, f Filter) ([]Notice, error) {
	return s.Store.List(ctx, orgID, f)
}

// ListForEmployee returns what the employee may read: notices addressed to
// them and to their department.
func (s *Service) ListForEmployee(ctx context.Context, orgID, employeeID, departmentID string, limit, offset int) ([]Notice, error) {
	return s.Store.ListAddressedTo(ctx, orgID, employeeID, departmentID, limit, offset)
}
