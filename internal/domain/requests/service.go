package requests

import (
	"context"
	"fmt"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) Create(ctx context.Context, orgID string, r Request) (*Request, error) {
	r.OrganizationID = orgID
	normalize(&r)
	if err := validate(r); err != nil {
		return nil, err
	}
	return s.Store.Insert(ctx, r)
}

// Submit files a Pending request for the employee. departmentID is used when
// the payload names none.
func (s *Service) Submit(ctx context.Context, orgID, employeeID, departmentID string, r Request) (*Request, error) {
	r.EmployeeID = employeeID
	if r.DepartmentID == "" {
		r.DepartmentID = departmentID
	}
	r.Status = enums.RequestPending
	r.ApprovedByID = ""
	return s.Create(ctx, orgID, r)
}

func (s *Service) Get(ctx context.Context, orgID, id string) (*Request, error) {
	return s.Store.Get(ctx, orgID, id)
}

func (s *Service) Update(ctx context.Context, orgID, id string, mutate func(*Request) error) (*Request, error) {
	return s.Store.Update(ctx, orgID, id, func(current *Request) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		keepImmutables(current, snapshot)
		normalize(current)
		if err := validate(*current); err != nil {
			return err
		}
		return checkTransition(snapshot.Status, current.Status)
	})
}

// UpdateOwn lets the requesting employee edit title and content while Pending.
func (s *Service) UpdateOwn(ctx context.Context, orgID, employeeID, id string, mutate func(*Request) error) (*Request, error) {
	return s.Store.Update(ctx, orgID, id, func(current *Request) error {
		if current.EmployeeID != employeeID {
			return apperr.ErrNotFound
		}
		if current.Status != enums.RequestPending {
			return fmt.Errorf("%w: request already %s", apperr.ErrConflict, current.Status)
		}
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		keepImmutables(current, snapshot)
		current.Status = snapshot.Status
		current.ApprovedByID = snapshot.ApprovedByID
		normalize(current)
		return validate(*current)
	})
}

func (s *Service) Decide(ctx context.Context, orgID, id, approverID string, status enums.RequestStatus) (*Request, error) {
	if status != enums.RequestApproved && status != enums.RequestDenied {
		v := validation.New()
		v.Enum("status", false, []string{string(enums.RequestApproved), string(enums.RequestDenied)})
		return nil, v.Err()
	}
	return s.Update(ctx, orgID, id, func(current *Request) error {
		if current.Status != enums.RequestPending {
			return fmt.Errorf("%w: request already %s", apperr.ErrConflict, current.Status)
		}
		current.Status = status
		current.ApprovedByID = approverID
		return nil
	})
}

func (s *Service) List(ctx context.Context, orgID string, f Filter) ([]Request, error) {
	return s.Store.List(ctx, orgID, f)
}

func keepImmutables(current *Request, snapshot Request) {
	current.ID = snapshot.ID
	current.OrganizationID = snapshot.OrganizationID
	current.EmployeeID = snapshot.EmployeeID
	current.CreatedAt = snapshot.CreatedAt
	current.UpdatedAt = snapshot.UpdatedAt
}
