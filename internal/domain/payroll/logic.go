package payroll

import (
	"strings"

	"github.com/shopspring/decimal"

	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

// maxAmount is the first value a NUMERIC(14,2) column cannot hold.
var maxAmount = decimal.New(1, 12)

func checkAmount(v *validation.Validator, field string, d decimal.Decimal) {
	v.NonNegative(field, d.IsNegative())
	if !d.Round(2).LessThan(maxAmount) {
		v.Add(field, "must be less than "+maxAmount.String())
	}
}

func normalizeSalary(s *Salary) {
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	if s.Status == "" {
		s.Status = enums.SalaryPending
	}
	s.NetPay = ComputeNetPay(s.BasicPay, s.Bonuses, s.Deductions)
}

func validateSalary(s Salary) error {
	v := validation.New()
	v.Required("employeeId", s.EmployeeID)
	checkAmount(v, "basicPay", s.BasicPay)
	checkAmount(v, "bonuses", s.Bonuses)
	checkAmount(v, "deductions", s.Deductions)
	checkAmount(v, "netPay", s.NetPay)
	v.Required("currency", s.Currency)
	v.MaxLen("currency", s.Currency, 10)
	v.RequiredTime("dueDate", s.DueDate.Time)
	v.Enum("status", s.Status.Valid(), enums.SalaryStatuses())
	if s.PaymentDate != nil && s.Status != enums.SalaryPaid {
		v.Add("paymentDate", "is only set on paid salaries")
	}
	return v.Err()
}

// stampPayment fills the payment date when a salary becomes Paid.
func stampPayment(s *Salary, today dates.Date) {
	if s.Status == enums.SalaryPaid && s.PaymentDate == nil {
		s.PaymentDate = &today
	}
}

func checkSalaryTransition(from, to enums.SalaryStatus) error {
	if from.CanTransition(to) {
		return nil
	}
	v := validation.New()
	v.Add("status", "cannot move from "+string(from)+" to "+string(to))
	return v.Err()
}

func normalizeBalance(b *Balance) {
	b.Title = strings.TrimSpace(b.Title)
	b.Description = strings.TrimSpace(b.Description)
	b.ExpenseMonth = strings.TrimSpace(b.ExpenseMonth)
	b.AvailableAmount = b.AvailableAmount.Round(2)
	b.TotalExpenses = b.TotalExpenses.Round(2)
}

func validateBalance(b Balance) error {
	v := validation.New()
	v.Required("title", b.Title)
	v.MaxLen("title", b.Title, 100)
	v.Required("description", b.Description)
	v.MaxLen("description", b.Description, 500)
	checkAmount(v, "availableAmount", b.AvailableAmount)
	checkAmount(v, "totalExpenses", b.TotalExpenses)
	v.Required("expenseMonth", b.ExpenseMonth)
	v.MaxLen("expenseMonth", b.ExpenseMonth, 20)
	return v.Err()
}
