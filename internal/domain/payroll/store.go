package payroll

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/platform/db"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const salaryColumns = `
    id, organization_id, employee_id, basic_pay, bonuses, deductions, net_pay, currency,
    due_date, payment_date, status, created_at, updated_at`

func scanSalary(row pgx.Row) (*Salary, error) {
	var s Salary
	if err := row.Scan(
		&s.ID, &s.OrganizationID, &s.EmployeeID, &s.BasicPay, &s.Bonuses, &s.Deductions, &s.NetPay, &s.Currency,
		&s.DueDate, &s.PaymentDate, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Store) InsertSalary(ctx context.Context, sal Salary) (*Salary, error) {
	out, err := scanSalary(s.DB.QueryRow(ctx, `
    INSERT INTO salaries (organization_id, employee_id, basic_pay, bonuses, deductions, net_pay, currency, due_date, payment_date, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING `+salaryColumns,
		sal.OrganizationID, sal.EmployeeID, sal.BasicPay, sal.Bonuses, sal.Deductions, sal.NetPay, sal.Currency,
		sal.DueDate, sal.PaymentDate, sal.Status))
	return out, db.MapError(err)
}

func (s *Store) GetSalary(ctx context.Context, orgID, id string) (*Salary, error) {
	out, err := scanSalary(s.DB.QueryRow(ctx, `
    SELECT `+salaryColumns+`
    FROM salaries
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) UpdateSalary(ctx context.Context, orgID, id string, apply func(*Salary) error) (*Salary, error) {
	var out *Salary
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanSalary(tx.QueryRow(ctx, `
      SELECT `+salaryColumns+`
      FROM salaries
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanSalary(tx.QueryRow(ctx, `
      UPDATE salaries
      SET basic_pay = $3, bonuses = $4, deductions = $5, net_pay = $6, currency = $7,
          due_date = $8, payment_date = $9, status = $10, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+salaryColumns,
			orgID, id, current.BasicPay, current.Bonuses, current.Deductions, current.NetPay, current.Currency,
			current.DueDate, current.PaymentDate, current.Status))
		return err
	})
	return out, err
}

func (s *Store) ListSalaries(ctx context.Context, orgID string, f SalaryFilter) ([]Salary, error) {
	where := db.ForOrganization("organization_id", orgID).
		ID("employee_id", "employeeId", f.EmployeeID).
		Eq("status", string(f.Status))
	if err := where.Err(); err != nil {
		return nil, err
	}
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+salaryColumns+`
    FROM salaries
    `+where.SQL()+`
    ORDER BY due_date DESC, created_at DESC
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Salary{}
	for rows.Next() {
		sal, err := scanSalary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sal)
	}
	return out, rows.Err()
}

func (s *Store) SlipData(ctx context.Context, orgID, id string) (SlipData, error) {
	var data SlipData
	sal := &data.Salary
	err := s.DB.QueryRow(ctx, `
    SELECT o.name, e.first_name, e.last_name, e.email,
           s.id, s.organization_id, s.employee_id, s.basic_pay, s.bonuses, s.deductions, s.net_pay,
           s.currency, s.due_date, s.payment_date, s.status, s.created_at, s.updated_at
    FROM salaries s
    JOIN employees e ON e.organization_id = s.organization_id AND e.id = s.employee_id
    JOIN organizations o ON o.id = s.organization_id
    WHERE s.organization_id = $1 AND s.id = $2
  `, orgID, id).Scan(
		&data.Organization, &data.FirstName, &data.LastName, &data.Email,
		&sal.ID, &sal.OrganizationID, &sal.EmployeeID, &sal.BasicPay, &sal.Bonuses, &sal.Deductions, &sal.NetPay,
		&sal.Currency, &sal.DueDate, &sal.PaymentDate, &sal.Status, &sal.CreatedAt, &sal.UpdatedAt,
	)
	if err != nil {
		return SlipData{}, db.MapError(err)
	}
	return data, nil
}

const balanceColumns = `
    id, organization_id, COALESCE(created_by_id::text, ''), title, description, available_amount,
    total_expenses, expense_month, submit_date, created_at, updated_at`

func scanBalance(row pgx.Row) (*Balance, error) {
	var b Balance
	if err := row.Scan(
		&b.ID, &b.OrganizationID, &b.CreatedByID, &b.Title, &b.Description, &b.AvailableAmount,
		&b.TotalExpenses, &b.ExpenseMonth, &b.SubmitDate, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) InsertBalance(ctx context.Context, b Balance) (*Balance, error) {
	out, err := scanBalance(s.DB.QueryRow(ctx, `
    INSERT INTO balances (organization_id, created_by_id, title, description, available_amount, total_expenses, expense_month, submit_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+balanceColumns,
		b.OrganizationID, db.NullIfEmpty(&b.CreatedByID), b.Title, b.Description, b.AvailableAmount,
		b.TotalExpenses, b.ExpenseMonth, b.SubmitDate))
	return out, db.MapError(err)
}

func (s *Store) GetBalance(ctx context.Context, orgID, id string) (*Balance, error) {
	out, err := scanBalance(s.DB.QueryRow(ctx, `
    SELECT `+balanceColumns+`
    FROM balances
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) UpdateBalance(ctx context.Context, orgID, id string, apply func(*Balance) error) (*Balance, error) {
	var out *Balance
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanBalance(tx.QueryRow(ctx, `
      SELECT `+balanceColumns+`
      FROM balances
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanBalance(tx.QueryRow(ctx, `
      UPDATE balances
      SET title = $3, description = $4, available_amount = $5, total_expenses = $6,
          expense_month = $7, submit_date = $8, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+balanceColumns,
			orgID, id, current.Title, current.Description, current.AvailableAmount, current.TotalExpenses,
			current.ExpenseMonth, current.SubmitDate))
		return err
	})
	return out, err
}

func (s *Store) ListBalances(ctx context.Context, orgID string, f BalanceFilter) ([]Balance, error) {
	where := db.ForOrganization("organization_id", orgID).Eq("expense_month", f.ExpenseMonth)
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+balanceColumns+`
    FROM balances
    `+where.SQL()+`
    ORDER BY submit_date DESC
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Balance{}
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}
