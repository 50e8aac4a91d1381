package leave

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

func (s *Service) Create(ctx context.Context, orgID string, l Leave) (*Leave, error) {
	l.OrganizationID = orgID
	normalize(&l)
	if err := validate(l); err != nil {
		return nil, err
	}
	return s.Store.Insert(ctx, l)
}

// Apply files a Pending leave on behalf of the employee.
func (s *Service) Apply(ctx context.Context, orgID, employeeID string, l Leave) (*Leave, error) {
	l.EmployeeID = employeeID
	l.Status = enums.LeavePending
	l.ApprovedByID = ""
	return s.Create(ctx, orgID, l)
}

func (s *Service) Get(ctx context.Context, orgID, id string) (*Leave, error) {
	return s.Store.Get(ctx, orgID, id)
}

func (s *Service) Update(ctx context.Context, orgID, id string, mutate func(*Leave) error) (*Leave, error) {
	return s.Store.Update(ctx, orgID, id, func(current *Leave) error {
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

// UpdateOwn lets the owning employee edit a leave while it is Pending.
// Status and approver stay as they are.
func (s *Service) UpdateOwn(ctx context.Context, orgID, employeeID, id string, mutate func(*Leave) error) (*Leave, error) {
	return s.Store.Update(ctx, orgID, id, func(current *Leave) error {
		if current.EmployeeID != employeeID {
			return apperr.ErrNotFound
		}
		if current.Status != enums.LeavePending {
			return fmt.Errorf("%w: leave already %s", apperr.ErrConflict, current.Status)
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

// Decide records an HR decision on a Pending leave. Decided leaves are final.
func (s *Service) Decide(ctx context.Context, orgID, id, approverID string, status enums.LeaveStatus) (*Leave, error) {
	if status != enums.LeaveApproved && status != enums.LeaveRejected {
		v := validation.New()
		v.Enum("status", false, []string{string(enums.LeaveApproved), string(enums.LeaveRejected)})
		return nil, v.Err()
	}
	return s.Update(ctx, orgID, id, func(current *Leave) error {
		if current.Status != enums.LeavePending {
			return fmt.Errorf("%w: leave already %s", apperr.ErrConflict, current.Status)
		}
		current.Status = status
		current.ApprovedByID = approverID
		return nil
	})
}

func (s *Service) List(ctx context.Context, orgID string, f Filter) ([]Leave, error) {
	return s.Store.List(ctx, orgID, f)
}

func keepImmutables(current *Leave, snapshot Leave) {
	current.ID = snapshot.ID
	current.OrganizationID = snapshot.OrganizationID
	current.EmployeeID = snapshot.EmployeeID
	current.CreatedAt = snapshot.CreatedAt
	current.UpdatedAt = snapshot.UpdatedAt
}
