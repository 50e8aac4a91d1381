package calendar

import (
	"context"
	"strings"

	"hrms/internal/domain/validation"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func validate(e Event) error {
	v := validation.New()
	v.Required("title", e.Title)
	v.MaxLen("title", e.Title, 100)
	v.RequiredTime("eventDate", e.EventDate)
	v.Required("description", e.Description)
	v.MaxLen("description", e.Description, 500)
	v.Required("audience", e.Audience)
	v.MaxLen("audience", e.Audience, 100)
	return v.Err()
}

func normalize(e *Event) {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Audience = strings.TrimSpace(e.Audience)
	e.EventDate = e.EventDate.UTC()
}

func (s *Service) Create(ctx context.Context, orgID string, e Event) (*Event, error) {
	e.OrganizationID = orgID
	normalize(&e)
	if err := validate(e); err != nil {
		return nil, err
	}
	return s.Store.Insert(ctx, e)
}

func (s *Service) Get(ctx context.Context, orgID, id string) (*Event, error) {
	return s.Store.Get(ctx, orgID, id)
}

func (s *Service) Update(ctx context.Context, orgID, id string, mutate func(*Event) error) (*Event, error) {
	return s.Store.Update(ctx, orgID, id, func(current *Event) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.OrganizationID = snapshot.OrganizationID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		normalize(current)
		return validate(*current)
	})
}

func (s *Service) Delete(ctx context.Context, orgID, id string) error {
	return s.Store.Delete(ctx, orgID, id)
}

func (s *Service) List(ctx context.Context, orgID string, f Filter) ([]Event, error) {
	return s.Store.List(ctx, orgID, f)
}
