package leave

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

const leaveColumns = `
    id, organization_id, employee_id, COALESCE(approved_by_id::text, ''), start_date, end_date,
    title, reason, status, created_at, updated_at`

func scanLeave(row pgx.Row) (*Leave, error) {
	var l Leave
	if err := row.Scan(
		&l.ID, &l.OrganizationID, &l.EmployeeID, &l.ApprovedByID, &l.StartDate, &l.EndDate,
		&l.Title, &l.Reason, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	l.Days = CalculateDays(l.StartDate, l.EndDate)
	return &l, nil
}

func (s *Store) Insert(ctx context.Context, l Leave) (*Leave, error) {
	out, err := scanLeave(s.DB.QueryRow(ctx, `
    INSERT INTO leaves (organization_id, employee_id, approved_by_id, start_date, end_date, title, reason, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+leaveColumns,
		l.OrganizationID, l.EmployeeID, db.NullIfEmpty(&l.ApprovedByID), l.StartDate, l.EndDate, l.Title, l.Reason, l.Status))
	return out, db.MapError(err)
}

func (s *Store) Get(ctx context.Context, orgID, id string) (*Leave, error) {
	out, err := scanLeave(s.DB.QueryRow(ctx, `
    SELECT `+leaveColumns+`
    FROM leaves
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) Update(ctx context.Context, orgID, id string, apply func(*Leave) error) (*Leave, error) {
	var out *Leave
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanLeave(tx.QueryRow(ctx, `
      SELECT `+leaveColumns+`
      FROM leaves
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanLeave(tx.QueryRow(ctx, `
      UPDATE leaves
      SET approved_by_id = $3, start_date = $4, end_date = $5, title = $6, reason = $7,
          status = $8, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+leaveColumns,
			orgID, id, db.NullIfEmpty(&current.ApprovedByID), current.StartDate, current.EndDate,
			current.Title, current.Reason, current.Status))
		return err
	})
	return out, err
}

func (s *Store) List(ctx context.Context, orgID string, f Filter) ([]Leave, error) {
	where := db.ForOrganization("organization_id", orgID).
		ID("employee_id", "employeeId", f.EmployeeID).
		Eq("status", string(f.Status))
	if !f.From.IsZero() {
		where.Raw("end_date >= $?", f.From)
	}
	if !f.To.IsZero() {
		where.Raw("start_date <= $?", f.To)
	}
	if err := where.Err(); err != nil {
		return nil, err
	}
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+leaveColumns+`
    FROM leaves
    `+where.SQL()+`
    ORDER BY start_date DESC, created_at DESC
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}
