package requests

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

const requestColumns = `
    id, organization_id, employee_id, department_id, COALESCE(approved_by_id::text, ''),
    title, content, status, created_at, updated_at`

func scanRequest(row pgx.Row) (*Request, error) {
	var r Request
	if err := row.Scan(
		&r.ID, &r.OrganizationID, &r.EmployeeID, &r.DepartmentID, &r.ApprovedByID,
		&r.Title, &r.Content, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Insert(ctx context.Context, r Request) (*Request, error) {
	out, err := scanRequest(s.DB.QueryRow(ctx, `
    INSERT INTO generate_requests (organization_id, employee_id, department_id, approved_by_id, title, content, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING `+requestColumns,
		r.OrganizationID, r.EmployeeID, r.DepartmentID, db.NullIfEmpty(&r.ApprovedByID), r.Title, r.Content, r.Status))
	return out, db.MapError(err)
}

func (s *Store) Get(ctx context.Context, orgID, id string) (*Request, error) {
	out, err := scanRequest(s.DB.QueryRow(ctx, `
    SELECT `+requestColumns+`
    FROM generate_requests
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) Update(ctx context.Context, orgID, id string, apply func(*Request) error) (*Request, error) {
	var out *Request
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanRequest(tx.QueryRow(ctx, `
      SELECT `+requestColumns+`
      FROM generate_requests
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanRequest(tx.QueryRow(ctx, `
      UPDATE generate_requests
      SET department_id = $3, approved_by_id = $4, title = $5, content = $6, status = $7, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+requestColumns,
			orgID, id, current.DepartmentID, db.NullIfEmpty(&current.ApprovedByID), current.Title, current.Content, current.Status))
		return err
	})
	return out, err
}

func (s *Store) List(ctx context.Context, orgID string, f Filter) ([]Request, error) {
	where := db.ForOrganization("organization_id", orgID).
		ID("employee_id", "employeeId", f.EmployeeID).
		ID("department_id", "departmentId", f.DepartmentID).
		Eq("status", string(f.Status))
	if err := where.Err(); err != nil {
		return nil, err
	}
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM generate_requests
    `+where.SQL()+`
    ORDER BY created_at DESC
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Request{}
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}
