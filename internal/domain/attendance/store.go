package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/dates"
	"hrms/internal/platform/db"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const attendanceColumns = `
    id, organization_id, employee_id, date, status, COALESCE(check_in_time, ''),
    COALESCE(check_out_time, ''), work_hours, comments, created_at, updated_at`

func scanAttendance(row pgx.Row) (*Attendance, error) {
	var a Attendance
	if err := row.Scan(
		&a.ID, &a.OrganizationID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckInTime,
		&a.CheckOutTime, &a.WorkHours, &a.Comments, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func nullTime(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func (s *Store) Insert(ctx context.Context, a Attendance) (*Attendance, error) {
	out, err := scanAttendance(s.DB.QueryRow(ctx, `
    INSERT INTO attendances (organization_id, employee_id, date, status, check_in_time, check_out_time, work_hours, comments)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+attendanceColumns,
		a.OrganizationID, a.EmployeeID, a.Date, a.Status, nullTime(a.CheckInTime), nullTime(a.CheckOutTime), a.WorkHours, a.Comments))
	return out, db.MapError(err)
}

func (s *Store) Get(ctx context.Context, orgID, id string) (*Attendance, error) {
	out, err := scanAttendance(s.DB.QueryRow(ctx, `
    SELECT `+attendanceColumns+`
    FROM attendances
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) ForDay(ctx context.Context, orgID, employeeID string, day dates.Date) (*Attendance, error) {
	out, err := scanAttendance(s.DB.QueryRow(ctx, `
    SELECT `+attendanceColumns+`
    FROM attendances
    WHERE organization_id = $1 AND employee_id = $2 AND date = $3
  `, orgID, employeeID, day))
	return out, db.MapError(err)
}

func (s *Store) Update(ctx context.Context, orgID, id string, apply func(*Attendance) error) (*Attendance, error) {
	return s.updateLocked(ctx, "organization_id = $1 AND id = $2", []any{orgID, id}, apply)
}

func (s *Store) UpdateForDay(ctx context.Context, orgID, employeeID string, day dates.Date, apply func(*Attendance) error) (*Attendance, error) {
	return s.updateLocked(ctx, "organization_id = $1 AND employee_id = $2 AND date = $3", []any{orgID, employeeID, day}, apply)
}

func (s *Store) updateLocked(ctx context.Context, match string, args []any, apply func(*Attendance) error) (*Attendance, error) {
	var out *Attendance
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanAttendance(tx.QueryRow(ctx, `
      SELECT `+attendanceColumns+`
      FROM attendances
      WHERE `+match+`
      FOR UPDATE
    `, args...))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanAttendance(tx.QueryRow(ctx, `
      UPDATE attendances
      SET date = $3, status = $4, check_in_time = $5, check_out_time = $6, work_hours = $7,
          comments = $8, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+attendanceColumns,
			current.OrganizationID, current.ID, current.Date, current.Status, nullTime(current.CheckInTime),
			nullTime(current.CheckOutTime), current.WorkHours, current.Comments))
		return err
	})
	return out, err
}

// ClockIn records at as the day's check-in, creating the day's row when
// needed. A second check-in for the same day is a conflict.
func (s *Store) ClockIn(ctx context.Context, orgID, employeeID string, day dates.Date, at string) (*Attendance, error) {
	out, err := scanAttendance(s.DB.QueryRow(ctx, `
    INSERT INTO attendances (organization_id, employee_id, date, status, check_in_time)
    VALUES ($1,$2,$3,'Present',$4)
    ON CONFLICT (employee_id, date) DO UPDATE
      SET check_in_time = EXCLUDED.check_in_time, status = EXCLUDED.status, updated_at = now()
      WHERE attendances.check_in_time IS NULL
    RETURNING `+attendanceColumns, orgID, employeeID, day, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: already clocked in for %s", apperr.ErrConflict, day)
	}
	return out, db.MapError(err)
}

func (s *Store) List(ctx context.Context, orgID string, f Filter) ([]Attendance, error) {
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
    SELECT `+attendanceColumns+`
    FROM attendances
    `+where.SQL()+`
    ORDER BY date DESC, created_at DESC
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}
