package payroll

import "context"

type StoreAPI interface {
	InsertSalary(ctx context.Context, s Salary) (*Salary, error)
	GetSalary(ctx context.Context, orgID, id string) (*Salary, error)
	UpdateSalary(ctx context.Context, orgID, id string, apply func(*Salary) error) (*Salary, error)
	ListSalaries(ctx context.Context, orgID string, f SalaryFilter) ([]Salary, error)
	SlipData(ctx context.Context, orgID, id string) (SlipData, error)

	InsertBalance(ctx context.Context, b Balance) (*Balance, error)
	GetBalance(ctx context.Context, orgID, id string) (*Balance, error)
	UpdateBalance(ctx context.Context, orgID, id string, apply func(*Balance) error) (*Balance, error)
	ListBalances(ctx context.Context, orgID string, f BalanceFilter) ([]Balance, error)
}

var _ StoreAPI = (*Store)(nil)
