package schedule

import "context"

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) Create(ctx context.Context, orgID, createdByID string, sh Shift) (*Shift, error) {
	sh.OrganizationID = orgID
	sh.CreatedByID = createdByID
	normalize(&sh)
	if err := validate(sh); err != nil {
		return nil, err
	}
	return s.Store.Insert(ctx, sh)
}

func (s *Service) Get(ctx context.Context, orgID, id string) (*Shift, error) {
	return s.Store.Get(ctx, orgID, id)
}

func (s *Service) Update(ctx context.Context, orgID, id string, mutate func(*Shift) error) (*Shift, error) {
	return s.Store.Update(ctx, orgID, id, func(current *Shift) error {
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
		if err := validate(*current); err != nil {
			return err
		}
		return checkTransition(snapshot.Status, current.Status)
	})
}

func (s *Service) Delete(ctx context.Context, orgID, id string) error {
	return s.Store.Delete(ctx, orgID, id)
}

func (s *Service) List(ctx context.Context, orgID string, f Filter) ([]Shift, error) {
	return s.Store.List(ctx, orgID, f)
}
