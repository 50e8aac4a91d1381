package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/dates"
)

type Service struct {
	Store StoreAPI
	Now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store, Now: time.Now}
}

func (s *Service) today() dates.Date {
	return dates.Of(s.Now().UTC())
}

func (s *Service) CreateSalary(ctx context.Context, orgID string, sal Salary) (*Salary, error) {
	sal.OrganizationID = orgID
	normalizeSalary(&sal)
	stampPayment(&sal, s.today())
	if err := validateSalary(sal); err != nil {
		return nil, err
	}
	if sal.DueDate.Before(s.today()) {
		return nil, apperr.Invalid("dueDate", "must not be in the past")
	}
	return s.Store.InsertSalary(ctx, sal)
}

func (s *Service) GetSalary(ctx context.Context, orgID, id string) (*Salary, error) {
	return s.Store.GetSalary(ctx, orgID, id)
}

// UpdateSalary recomputes the net pay and enforces status transitions.
// A changed due date must not be in the past.
func (s *Service) UpdateSalary(ctx context.Context, orgID, id string, mutate func(*Salary) error) (*Salary, error) {
	today := s.today()
	return s.Store.UpdateSalary(ctx, orgID, id, func(current *Salary) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.OrganizationID = snapshot.OrganizationID
		current.EmployeeID = snapshot.EmployeeID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		normalizeSalary(current)
		stampPayment(current, today)
		if err := validateSalary(*current); err != nil {
			return err
		}
		if !current.DueDate.Equal(snapshot.DueDate) && current.DueDate.Before(today) {
			return apperr.Invalid("dueDate", "must not be in the past")
		}
		return checkSalaryTransition(snapshot.Status, current.Status)
	})
}

func (s *Service) ListSalaries(ctx context.Context, orgID string, f SalaryFilter) ([]Salary, error) {
	return s.Store.ListSalaries(ctx, orgID, f)
}

// SalarySlipPDF renders a one-page payslip.
func (s *Service) SalarySlipPDF(ctx context.Context, orgID, id string) ([]byte, error) {
	data, err := s.Store.SlipData(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return renderSlip(data)
}

func renderSlip(data SlipData) ([]byte, error) {
	sal := data.Salary
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Organization: %s", data.Organization))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s", data.FirstName, data.LastName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", data.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Due date: %s", sal.DueDate))
	pdf.Ln(7)
	paid := "-"
	if sal.PaymentDate != nil {
		paid = sal.PaymentDate.String()
	}
	pdf.Cell(0, 8, fmt.Sprintf("Payment date: %s", paid))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic pay: %s %s", sal.BasicPay.StringFixed(2), sal.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonuses: %s %s", sal.Bonuses.StringFixed(2), sal.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s %s", sal.Deductions.StringFixed(2), sal.Currency))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %s %s", sal.NetPay.StringFixed(2), sal.Currency))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", sal.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Service) CreateBalance(ctx context.Context, orgID string, b Balance) (*Balance, error) {
	b.OrganizationID = orgID
	if b.SubmitDate.IsZero() {
		b.SubmitDate = s.Now().UTC()
	}
	normalizeBalance(&b)
	if err := validateBalance(b); err != nil {
		return nil, err
	}
	return s.Store.InsertBalance(ctx, b)
}

func (s *Service) GetBalance(ctx context.Context, orgID, id string) (*Balance, error) {
	return s.Store.GetBalance(ctx, orgID, id)
}

func (s *Service) UpdateBalance(ctx context.Context, orgID, id string, mutate func(*Balance) error) (*Balance, error) {
	return s.Store.UpdateBalance(ctx, orgID, id, func(current *Balance) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.OrganizationID = snapshot.OrganizationID
		current.CreatedByID = snapshot.CreatedByID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		if current.SubmitDate.IsZero() {
			current.SubmitDate = snapshot.SubmitDate
		}
		normalizeBalance(current)
		return validateBalance(*current)
	})
}

func (s *Service) ListBalances(ctx context.Context, orgID string, f BalanceFilter) ([]Balance, error) {
	return s.Store.ListBalances(ctx, orgID, f)
}
