package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
)

type Salary struct {
	ID             string             `json:"id"`
	OrganizationID string             `json:"organizationId"`
	EmployeeID     string             `json:"employeeId"`
	BasicPay       decimal.Decimal    `json:"basicPay"`
	Bonuses        decimal.Decimal    `json:"bonuses"`
	Deductions     decimal.Decimal    `json:"deductions"`
	NetPay         decimal.Decimal    `json:"netPay"`
	Currency       string             `json:"currency"`
	DueDate        dates.Date         `json:"dueDate"`
	PaymentDate    *dates.Date        `json:"paymentDate"`
	Status         enums.SalaryStatus `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type SalaryFilter struct {
	EmployeeID string
	Status     enums.SalaryStatus
	Limit      int
	Offset     int
}

// Balance is a monthly expense statement for the organization.
type Balance struct {
	ID              string          `json:"id"`
	OrganizationID  string          `json:"organizationId"`
	CreatedByID     string          `json:"createdById"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	AvailableAmount decimal.Decimal `json:"availableAmount"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	ExpenseMonth    string          `json:"expenseMonth"`
	SubmitDate      time.Time       `json:"submitDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type BalanceFilter struct {
	ExpenseMonth string
	Limit        int
	Offset       int
}

// SlipData is what a payslip prints.
type SlipData struct {
	Organization string
	FirstName    string
	LastName     string
	Email        string
	Salary       Salary
}
