package core

import (
	"context"

	"hrms/internal/domain/enums"
	"hrms/internal/platform/crypto"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// PrepareAccount normalizes, defaults, validates and hashes a new account.
func PrepareAccount(a *Account, orgID string, defaultRole enums.Role) error {
	NormalizeAccount(a)
	a.OrganizationID = orgID
	if a.Role == "" {
		a.Role = defaultRole
	}
	if err := validateAccount(*a, true); err != nil {
		return err
	}
	return hashPassword(a)
}

func hashPassword(a *Account) error {
	if a.Password == "" {
		return nil
	}
	hash, err := crypto.HashPassword(a.Password)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	a.Password = ""
	return nil
}

func (s *Service) createAccount(ctx context.Context, kind AccountKind, orgID string, a Account, defaultRole enums.Role) (*Account, error) {
	if err := PrepareAccount(&a, orgID, defaultRole); err != nil {
		return nil, err
	}
	return s.Store.InsertAccount(ctx, kind, a)
}

func (s *Service) updateAccount(ctx context.Context, kind AccountKind, orgID, id string, mutate func(*Account) error) (*Account, error) {
	return s.Store.UpdateAccount(ctx, kind, orgID, id, func(current *Account) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		keepAccountImmutables(current, snapshot)
		NormalizeAccount(current)
		if err := validateAccount(*current, false); err != nil {
			return err
		}
		return hashPassword(current)
	})
}

func (s *Service) CreateEmployee(ctx context.Context, orgID string, e Employee) (*Employee, error) {
	out, err := s.createAccount(ctx, KindEmployee, orgID, Account(e), enums.RoleEmployee)
	if err != nil {
		return nil, err
	}
	return (*Employee)(out), nil
}

func (s *Service) GetEmployee(ctx context.Context, orgID, id string) (*Employee, error) {
	out, err := s.Store.GetAccount(ctx, KindEmployee, orgID, id)
	if err != nil {
		return nil, err
	}
	return (*Employee)(out), nil
}

func (s *Service) UpdateEmployee(ctx context.Context, orgID, id string, mutate func(*Employee) error) (*Employee, error) {
	out, err := s.updateAccount(ctx, KindEmployee, orgID, id, func(a *Account) error {
		return mutate((*Employee)(a))
	})
	if err != nil {
		return nil, err
	}
	return (*Employee)(out), nil
}

func (s *Service) ListEmployees(ctx context.Context, orgID string, f Filter) ([]Employee, error) {
	accounts, err := s.Store.ListAccounts(ctx, KindEmployee, orgID, f)
	if err != nil {
		return nil, err
	}
	out := make([]Employee, len(accounts))
	for i, a := range accounts {
		out[i] = Employee(a)
	}
	return out, nil
}

func (s *Service) CreateHR(ctx context.Context, orgID string, h HumanResources) (*HumanResources, error) {
	out, err := s.createAccount(ctx, KindHR, orgID, Account(h), enums.RoleHRAdmin)
	if err != nil {
		return nil, err
	}
	return (*HumanResources)(out), nil
}

func (s *Service) GetHR(ctx context.Context, orgID, id string) (*HumanResources, error) {
	out, err := s.Store.GetAccount(ctx, KindHR, orgID, id)
	if err != nil {
		return nil, err
	}
	return (*HumanResources)(out), nil
}

func (s *Service) UpdateHR(ctx context.Context, orgID, id string, mutate func(*HumanResources) error) (*HumanResources, error) {
	out, err := s.updateAccount(ctx, KindHR, orgID, id, func(a *Account) error {
		return mutate((*HumanResources)(a))
	})
	if err != nil {
		return nil, err
	}
	return (*HumanResources)(out), nil
}

func (s *Service) ListHR(ctx context.Context, orgID string, f Filter) ([]HumanResources, error) {
	accounts, err := s.Store.ListAccounts(ctx, KindHR, orgID, f)
	if err != nil {
		return nil, err
	}
	out := make([]HumanResources, len(accounts))
	for i, a := range accounts {
		out[i] = HumanResources(a)
	}
	return out, nil
}

// Account returns either kind of account; the Access Gate uses it for
// existence and role lookups.
func (s *Service) Account(ctx context.Context, kind AccountKind, orgID, id string) (*Account, error) {
	return s.Store.GetAccount(ctx, kind, orgID, id)
}

// UpdateProfile is the account holder's own edit: names, contact number and
// password. Email, role, department and verification keep their stored values.
func (s *Service) UpdateProfile(ctx context.Context, kind AccountKind, orgID, id string, mutate func(*Account) error) (*Account, error) {
	return s.updateAccount(ctx, kind, orgID, id, func(a *Account) error {
		snapshot := *a
		if err := mutate(a); err != nil {
			return err
		}
		a.Email = snapshot.Email
		a.Role = snapshot.Role
		a.DepartmentID = snapshot.DepartmentID
		a.IsVerified = snapshot.IsVerified
		return nil
	})
}

func (s *Service) FindByEmail(ctx context.Context, kind AccountKind, email string) (*Account, error) {
	lookup := Account{Email: email}
	NormalizeAccount(&lookup)
	return s.Store.FindAccountByEmail(ctx, kind, lookup.Email)
}

func (s *Service) TouchLastLogin(ctx context.Context, kind AccountKind, orgID, id string) error {
	return s.Store.TouchLastLogin(ctx, kind, orgID, id)
}

func (s *Service) CreateDepartment(ctx context.Context, orgID string, d Department) (*Department, error) {
	d.OrganizationID = orgID
	if err := validateDepartment(d); err != nil {
		return nil, err
	}
	return s.Store.InsertDepartment(ctx, d)
}

func (s *Service) GetDepartment(ctx context.Context, orgID, id string) (*Department, error) {
	return s.Store.GetDepartment(ctx, orgID, id)
}

func (s *Service) UpdateDepartment(ctx context.Context, orgID, id string, mutate func(*Department) error) (*Department, error) {
	return s.Store.UpdateDepartment(ctx, orgID, id, func(current *Department) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.OrganizationID = snapshot.OrganizationID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		return validateDepartment(*current)
	})
}

func (s *Service) ListDepartments(ctx context.Context, orgID string, f Filter) ([]Department, error) {
	return s.Store.ListDepartments(ctx, orgID, f)
}

// DeleteDepartment fails with ErrConflict while anything still references the department.
func (s *Service) DeleteDepartment(ctx context.Context, orgID, id string) error {
	return s.Store.DeleteDepartment(ctx, orgID, id)
}
