package reports

import "context"

type StoreAPI interface {
	Dashboard(ctx context.Context, orgID string) (Dashboard, error)
}

var _ StoreAPI = (*Store)(nil)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) Dashboard(ctx context.Context, orgID string) (Dashboard, error) {
	return s.Store.Dashboard(ctx, orgID)
}
