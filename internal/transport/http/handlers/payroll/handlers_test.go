package payrollhandler

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/payroll"
	"hrms/internal/transport/http/handlers/handlertest"
)

type memStore struct {
	payroll.StoreAPI
	salaries map[string]payroll.Salary
}

func (m *memStore) GetSalary(_ context.Context, orgID, id string) (*payroll.Salary, error) {
	s, ok := m.salaries[id]
	if !ok || s.OrganizationID != orgID {
		return nil, apperr.ErrNotFound
	}
	return &s, nil
}

func (m *memStore) SlipData(_ context.Context, orgID, id string) (payroll.SlipData, error) {
	s, ok := m.salaries[id]
	if !ok || s.OrganizationID != orgID {
		return payroll.SlipData{}, apperr.ErrNotFound
	}
	return payroll.SlipData{Organization: "Acme", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Salary: s}, nil
}

func newRouter() http.Handler {
	store := &memStore{salaries: map[string]payroll.Salary{
		"sal-1": {
			ID:             "sal-1",
			OrganizationID: handlertest.OrgID,
			EmployeeID:     handlertest.EmployeeID,
			BasicPay:       decimal.RequireFromString("3000"),
			Bonuses:        decimal.RequireFromString("250.50"),
			Deductions:     decimal.RequireFromString("100"),
			NetPay:         decimal.RequireFromString("3150.50"),
			Currency:       "USD",
			DueDate:        dates.New(2025, time.June, 30),
			Status:         enums.SalaryPending,
		},
	}}
	gate := handlertest.NewGate()
	h := NewHandler(payroll.NewService(store), gate)
	return handlertest.Router(gate, func(r chi.Router) { h.RegisterRoutes(r) })
}

func TestSlipAccess(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name  string
		token string
		path  string
		want  int
	}{
		{"owner", handlertest.EmpToken, "/salaries/sal-1/slip", http.StatusOK},
		{"hr", handlertest.HRToken, "/salaries/sal-1/slip", http.StatusOK},
		{"colleague", handlertest.OtherToken, "/salaries/sal-1/slip", http.StatusForbidden},
		{"missing", handlertest.HRToken, "/salaries/sal-9/slip", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := handlertest.Do(t, router, http.MethodGet, tc.path, tc.token, "")
			handlertest.ExpectStatus(t, rec, tc.want)
			if tc.want == http.StatusOK {
				if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
					t.Fatalf("expected pdf content type, got %q", ct)
				}
				if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
					t.Fatal("expected a PDF body")
				}
			}
		})
	}
}

func TestOwnSalaryVisibility(t *testing.T) {
	router := newRouter()

	rec := handlertest.Do(t, router, http.MethodGet, "/me/salaries/sal-1", handlertest.EmpToken, "")
	handlertest.ExpectStatus(t, rec, http.StatusOK)

	rec = handlertest.Do(t, router, http.MethodGet, "/me/salaries/sal-1", handlertest.OtherToken, "")
	handlertest.ExpectStatus(t, rec, http.StatusNotFound)

	rec = handlertest.Do(t, router, http.MethodGet, "/salaries/sal-1", handlertest.EmpToken, "")
	handlertest.ExpectStatus(t, rec, http.StatusForbidden)
}
