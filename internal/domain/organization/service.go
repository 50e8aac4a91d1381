package organization

import (
	"context"
	"strings"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/core"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func normalize(o *Organization) {
	o.Name = strings.TrimSpace(o.Name)
	o.Description = strings.TrimSpace(o.Description)
	o.URL = strings.TrimSpace(o.URL)
	o.Mail = strings.ToLower(strings.TrimSpace(o.Mail))
}

func validate(o Organization) error {
	v := validation.New()
	v.Required("name", o.Name)
	v.MaxLen("name", o.Name, 100)
	v.MaxLen("description", o.Description, 500)
	v.Required("organizationUrl", o.URL)
	v.MaxLen("organizationUrl", o.URL, 200)
	v.Email("organizationMail", o.Mail)
	v.MaxLen("organizationMail", o.Mail, 100)
	return v.Err()
}

func (s *Service) Create(ctx context.Context, o Organization) (*Organization, error) {
	normalize(&o)
	if err := validate(o); err != nil {
		return nil, err
	}
	return s.Store.Insert(ctx, o)
}

// Signup creates an organization and its first HR-Admin in one transaction.
// Any uniqueness clash on either record rolls back both.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*SignupResult, error) {
	normalize(&in.Organization)
	orgErr := apperr.Prefix(validate(in.Organization), "organization.")
	admin := core.Account(in.Admin)
	admin.Role = enums.RoleHRAdmin
	admin.DepartmentID = ""
	adminErr := apperr.Prefix(core.PrepareAccount(&admin, "", enums.RoleHRAdmin), "admin.")
	if err := mergeValidation(orgErr, adminErr); err != nil {
		return nil, err
	}

	org, hr, err := s.Store.InsertWithAdmin(ctx, in.Organization, admin)
	if err != nil {
		return nil, err
	}
	return &SignupResult{Organization: org, Admin: (*core.HumanResources)(hr)}, nil
}

func mergeValidation(errs ...error) error {
	var issues []apperr.Issue
	for _, err := range errs {
		if err == nil {
			continue
		}
		found := apperr.Issues(err)
		if found == nil {
			return err
		}
		issues = append(issues, found...)
	}
	if len(issues) == 0 {
		return nil
	}
	return apperr.NewValidationError(issues)
}

func (s *Service) Get(ctx context.Context, id string) (*Organization, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, mutate func(*Organization) error) (*Organization, error) {
	return s.Store.Update(ctx, id, func(current *Organization) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		normalize(current)
		return validate(*current)
	})
}
