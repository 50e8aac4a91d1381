package organization

import (
	"context"
	"errors"
	"testing"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/core"
	"hrms/internal/domain/enums"
)

type memStore struct {
	orgs   map[string]*Organization
	admins []core.Account
}

func newMemStore() *memStore {
	return &memStore{orgs: map[string]*Organization{}}
}

func (m *memStore) Insert(_ context.Context, o Organization) (*Organization, error) {
	for _, existing := range m.orgs {
		if existing.Name == o.Name || existing.URL == o.URL || existing.Mail == o.Mail {
			return nil, apperr.ErrConflict
		}
	}
	o.ID = "org-" + o.Name
	m.orgs[o.ID] = &o
	out := o
	return &out, nil
}

func (m *memStore) InsertWithAdmin(ctx context.Context, o Organization, admin core.Account) (*Organization, *core.Account, error) {
	org, err := m.Insert(ctx, o)
	if err != nil {
		return nil, nil, err
	}
	admin.ID = "hr-1"
	admin.OrganizationID = org.ID
	m.admins = append(m.admins, admin)
	return org, &admin, nil
}

func (m *memStore) Get(_ context.Context, id string) (*Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *o
	return &out, nil
}

func (m *memStore) Update(_ context.Context, id string, apply func(*Organization) error) (*Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	next := *o
	if err := apply(&next); err != nil {
		return nil, err
	}
	m.orgs[id] = &next
	return &next, nil
}

func acme() Organization {
	return Organization{Name: "Acme", URL: "https://acme.example.com", Mail: "HR@acme.example.com"}
}

func TestCreateDuplicateURLConflicts(t *testing.T) {
	svc := NewService(newMemStore())
	if _, err := svc.Create(context.Background(), acme()); err != nil {
		t.Fatalf("create: %v", err)
	}
	other := Organization{Name: "Other", URL: "https://acme.example.com", Mail: "other@example.com"}
	if _, err := svc.Create(context.Background(), other); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateValidatesMail(t *testing.T) {
	svc := NewService(newMemStore())
	o := acme()
	o.Mail = "hr@acme"
	_, err := svc.Create(context.Background(), o)
	issues := apperr.Issues(err)
	if len(issues) != 1 || issues[0].Field != "organizationMail" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestSignupCreatesHRAdmin(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	res, err := svc.Signup(context.Background(), SignupInput{
		Organization: acme(),
		Admin: core.HumanResources{
			FirstName: "Grace", LastName: "Hopper", Email: "grace@acme.example.com",
			ContactNumber: "555", Password: "long-password", Role: enums.RoleEmployee,
		},
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if res.Admin.Role != enums.RoleHRAdmin || res.Admin.OrganizationID != res.Organization.ID {
		t.Fatalf("unexpected admin: %+v", res.Admin)
	}
	if store.admins[0].PasswordHash == "" || store.admins[0].Password != "" {
		t.Fatal("expected hashed password only")
	}
	if res.Organization.Mail != "hr@acme.example.com" {
		t.Fatalf("expected normalized mail, got %q", res.Organization.Mail)
	}
}

func TestSignupReportsNestedIssues(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	_, err := svc.Signup(context.Background(), SignupInput{
		Organization: Organization{Name: "Acme", URL: "https://acme.example.com", Mail: "bad"},
		Admin:        core.HumanResources{FirstName: "G", LastName: "H", Email: "bad", ContactNumber: "1", Password: "long-password"},
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	issues := apperr.Issues(err)
	if len(issues) != 2 || issues[0].Field != "admin.email" || issues[1].Field != "organization.organizationMail" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	if len(store.orgs) != 0 {
		t.Fatal("expected no partial write")
	}
}

func TestUpdateKeepsID(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	org, _ := svc.Create(context.Background(), acme())
	updated, err := svc.Update(context.Background(), org.ID, func(o *Organization) error {
		o.ID = "other"
		o.Description = "Widgets"
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != org.ID || updated.Description != "Widgets" {
		t.Fatalf("unexpected update: %+v", updated)
	}
}
