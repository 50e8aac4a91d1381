package schedule

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

const shiftColumns = `
    id, organization_id, employee_id, created_by_id, date, start_time, end_time, shift,
    location, notes, status, created_at, updated_at`

func scanShift(row pgx.Row) (*Shift, error) {
	var s Shift
	if err := row.Scan(
		&s.ID, &s.OrganizationID, &s.EmployeeID, &s.CreatedByID, &s.Date, &s.StartTime, &s.EndTime, &s.Shift,
		&s.Location, &s.Notes, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Store) Insert(ctx context.Context, sh Shift) (*Shift, error) {
	out, err := scanShift(s.DB.QueryRow(ctx, `
    INSERT INTO schedules (organization_id, employee_id, created_by_id, date, start_time, end_time, shift, location, notes, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING `+shiftColumns,
		sh.OrganizationID, sh.EmployeeID, sh.CreatedByID, sh.Date, sh.StartTime, sh.EndTime, sh.Shift,
		sh.Location, sh.Notes, sh.Status))
	return out, db.MapError(err)
}

func (s *Store) Get(ctx context.Context, orgID, id string) (*Shift, error) {
	out, err := scanShift(s.DB.QueryRow(ctx, `
    SELECT `+shiftColumns+`
    FROM schedules
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) Update(ctx context.Context, orgID, id string, apply func(*Shift) error) (*Shift, error) {
	var out *Shift
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanShift(tx.QueryRow(ctx, `
      SELECT `+shiftColumns+`
      FROM schedules
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanShift(tx.QueryRow(ctx, `
      UPDATE schedules
      SET employee_id = $3, date = $4, start_time = $5, end_time = $6, shift = $7, location = $8,
          notes = $9, status = $10, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+shiftColumns,
			orgID, id, current.EmployeeID, current.Date, current.StartTime, current.EndTime, current.Shift,
			current.Location, current.Notes, current.Status))
		return err
	})
	return out, err
}

func (s *Store) Delete(ctx context.Context, orgID, id string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM schedules
    WHERE organization_id = $1 AND id = $2
  `, orgID, id)
	if err != nil {
		return db.MapDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.MapError(pgx.ErrNoRows)
	}
	return nil
}

func (s *Store) List(ctx context.Context, orgID string, f Filter) ([]Shift, error) {
	where := db.ForOrganization("organization_id", orgID).
		ID("employee_id", "employeeId", f.EmployeeID).
		Eq("status", string(f.Status))
	if !f.From.IsZero() {
		where.Raw("date >= $?", f.From)
	}
	if !f.To.IsZero() {
		where.Raw("date <= $?", f.To)
	}
	if err := where.Err(); err != nil {
		return nil, err
	}
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+shiftColumns+`
    FROM schedules
    `+where.SQL()+`
    ORDER BY date, start_time
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Shift{}
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sh)
	}
	return out, rows.Err()
}
