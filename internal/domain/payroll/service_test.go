package payroll

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
)

type memStore struct {
	StoreAPI
	salaries map[string]*Salary
	balances map[string]*Balance
}

func newMemStore() *memStore {
	return &memStore{salaries: map[string]*Salary{}, balances: map[string]*Balance{}}
}

func (m *memStore) InsertSalary(_ context.Context, s Salary) (*Salary, error) {
	for _, existing := range m.salaries {
		if existing.EmployeeID == s.EmployeeID && existing.DueDate.Equal(s.DueDate) {
			return nil, apperr.ErrConflict
		}
	}
	s.ID = "sal-" + strconv.Itoa(len(m.salaries)+1)
	m.salaries[s.ID] = &s
	out := s
	return &out, nil
}

func (m *memStore) UpdateSalary(_ context.Context, orgID, id string, apply func(*Salary) error) (*Salary, error) {
	current, ok := m.salaries[id]
	if !ok || current.OrganizationID != orgID {
		return nil, apperr.ErrNotFound
	}
	next := *current
	if err := apply(&next); err != nil {
		return nil, err
	}
	m.salaries[id] = &next
	out := next
	return &out, nil
}

func (m *memStore) SlipData(_ context.Context, orgID, id string) (SlipData, error) {
	current, ok := m.salaries[id]
	if !ok || current.OrganizationID != orgID {
		return SlipData{}, apperr.ErrNotFound
	}
	return SlipData{Organization: "Acme", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Salary: *current}, nil
}

func (m *memStore) InsertBalance(_ context.Context, b Balance) (*Balance, error) {
	b.ID = "bal-" + strconv.Itoa(len(m.balances)+1)
	m.balances[b.ID] = &b
	out := b
	return &out, nil
}

func newTestService() (*Service, *memStore) {
	store := newMemStore()
	svc := NewService(store)
	svc.Now = func() time.Time { return time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC) }
	return svc, store
}

func sampleSalary() Salary {
	return Salary{
		EmployeeID: "emp-1",
		BasicPay:   decimal.RequireFromString("3000"),
		Bonuses:    decimal.RequireFromString("200.50"),
		Deductions: decimal.RequireFromString("150"),
		Currency:   "usd",
		DueDate:    dates.New(2025, time.May, 31),
	}
}

func TestCreateSalaryComputesNetPay(t *testing.T) {
	svc, _ := newTestService()
	sal, err := svc.CreateSalary(context.Background(), "org-1", sampleSalary())
	if err != nil {
		t.Fatalf("create salary: %v", err)
	}
	if !sal.NetPay.Equal(decimal.RequireFromString("3050.50")) {
		t.Fatalf("expected net pay 3050.50, got %s", sal.NetPay)
	}
	if sal.Currency != "USD" || sal.Status != enums.SalaryPending || sal.PaymentDate != nil {
		t.Fatalf("unexpected salary: %+v", sal)
	}
}

func TestCreateSalaryValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Salary)
		field  string
	}{
		{"negative basic", func(s *Salary) { s.BasicPay = decimal.NewFromInt(-1) }, "basicPay"},
		{"basic beyond column", func(s *Salary) { s.BasicPay = decimal.RequireFromString("1000000000000") }, "basicPay"},
		{"bonus rounds past column", func(s *Salary) { s.Bonuses = decimal.RequireFromString("999999999999.999") }, "bonuses"},
		{"deductions exceed pay", func(s *Salary) { s.Deductions = decimal.NewFromInt(10000) }, "netPay"},
		{"past due date", func(s *Salary) { s.DueDate = dates.New(2025, time.May, 9) }, "dueDate"},
		{"missing currency", func(s *Salary) { s.Currency = " " }, "currency"},
		{"unknown status", func(s *Salary) { s.Status = "Late" }, "status"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService()
			sal := sampleSalary()
			tc.mutate(&sal)
			_, err := svc.CreateSalary(context.Background(), "org-1", sal)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			found := false
			for _, issue := range apperr.Issues(err) {
				if issue.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected issue on %s, got %+v", tc.field, apperr.Issues(err))
			}
		})
	}
}

func TestCreateSalaryDuplicateDueDate(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.CreateSalary(context.Background(), "org-1", sampleSalary()); err != nil {
		t.Fatalf("first salary: %v", err)
	}
	if _, err := svc.CreateSalary(context.Background(), "org-1", sampleSalary()); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdateSalaryPaidStampsPaymentDate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	sal, err := svc.CreateSalary(ctx, "org-1", sampleSalary())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	paid, err := svc.UpdateSalary(ctx, "org-1", sal.ID, func(s *Salary) error {
		s.Status = enums.SalaryPaid
		s.Bonuses = decimal.Zero
		return nil
	})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if paid.PaymentDate == nil || !paid.PaymentDate.Equal(dates.New(2025, time.May, 10)) {
		t.Fatalf("expected payment date stamped, got %+v", paid.PaymentDate)
	}
	if !paid.NetPay.Equal(decimal.RequireFromString("2850")) {
		t.Fatalf("expected recomputed net pay, got %s", paid.NetPay)
	}

	_, err = svc.UpdateSalary(ctx, "org-1", sal.ID, func(s *Salary) error {
		s.Status = enums.SalaryDelayed
		return nil
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected paid salary to be final, got %v", err)
	}
}

func TestSalarySlipPDF(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	sal, err := svc.CreateSalary(ctx, "org-1", sampleSalary())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pdf, err := svc.SalarySlipPDF(ctx, "org-1", sal.ID)
	if err != nil {
		t.Fatalf("slip: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected a pdf document, got %q", pdf[:min(len(pdf), 8)])
	}

	if _, err := svc.SalarySlipPDF(ctx, "org-2", sal.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected other organization to get not found, got %v", err)
	}
}

func TestCreateBalanceDefaultsSubmitDate(t *testing.T) {
	svc, _ := newTestService()
	b, err := svc.CreateBalance(context.Background(), "org-1", Balance{
		Title:           "May expenses",
		Description:     "office supplies",
		AvailableAmount: decimal.RequireFromString("1000"),
		TotalExpenses:   decimal.RequireFromString("250.456"),
		ExpenseMonth:    "2025-05",
	})
	if err != nil {
		t.Fatalf("create balance: %v", err)
	}
	if b.SubmitDate.IsZero() || !b.TotalExpenses.Equal(decimal.RequireFromString("250.46")) {
		t.Fatalf("unexpected balance: %+v", b)
	}

	_, err = svc.CreateBalance(context.Background(), "org-1", Balance{Title: "x"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.CreateBalance(context.Background(), "org-1", Balance{
		Title:           "Huge",
		Description:     "overflow",
		AvailableAmount: decimal.RequireFromString("5000000000000"),
		ExpenseMonth:    "2025-05",
	})
	issues := apperr.Issues(err)
	if len(issues) != 1 || issues[0].Field != "availableAmount" {
		t.Fatalf("expected availableAmount issue, got %v", err)
	}
}
