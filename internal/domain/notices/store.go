package notices

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

const noticeColumns = `
    id, organization_id, COALESCE(department_id::text, ''), COALESCE(employee_id::text, ''),
    created_by_id, title, content, audience, created_at, updated_at`

func scanNotice(row pgx.Row) (*Notice, error) {
	var n Notice
	if err := row.Scan(
		&n.ID, &n.OrganizationID, &n.DepartmentID, &n.EmployeeID,
		&n.CreatedByID, &n.Title, &n.Content, &n.Audience, &n.CreatedAt, &n.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Store) Insert(ctx context.Context, n Notice) (*Notice, error) {
	out, err := scanNotice(s.DB.QueryRow(ctx, `
    INSERT INTO notices (organization_id, department_id, employee_id, created_by_id, title, content, audience)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING `+noticeColumns,
		n.OrganizationID, db.NullIfEmpty(&n.DepartmentID), db.NullIfEmpty(&n.EmployeeID), n.CreatedByID,
		n.Title, n.Content, n.Audience))
	return out, db.MapError(err)
}

func (s *Store) Get(ctx context.Context, orgID, id string) (*Notice, error) {
	out, err := scanNotice(s.DB.QueryRow(ctx, `
    SELECT `+noticeColumns+`
    FROM notices
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) Update(ctx context.Context, orgID, id string, apply func(*Notice) error) (*Notice, error) {
	var out *Notice
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanNotice(tx.QueryRow(ctx, `
      SELECT `+noticeColumns+`
      FROM notices
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanNotice(tx.QueryRow(ctx, `
      UPDATE notices
      SET department_id = $3, employee_id = $4, title = $5, content = $6, audience = $7, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+noticeColumns,
			orgID, id, db.NullIfEmpty(&current.DepartmentID), db.NullIfEmpty(&current.EmployeeID),
			current.Title, current.Content, current.Audience))
		return err
	})
	return out, err
}

func (s *Store) Delete(ctx context.Context, orgID, id string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM notices
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

func (s *Store) List(ctx context.Context, orgID string, f Filter) ([]Notice, error) {
	where := db.ForOrganization("organization_id", orgID).
		ID("department_id", "departmentId", f.DepartmentID).
		ID("employee_id", "employeeId", f.EmployeeID).
		Eq("audience", string(f.Audience))
	if err := where.Err(); err != nil {
		return nil, err
	}
	return s.list(ctx, where, f.Limit, f.Offset)
}

// ListAddressedTo returns notices targeting the employee directly or their department.
func (s *Store) ListAddressedTo(ctx context.Context, orgID, employeeID, departmentID string, limit, offset int) ([]Notice, error) {
	where := db.ForOrganization("organization_id", orgID)
	if departmentID == "" {
		where.Raw("employee_id = $?", employeeID)
	} else {
		where.Raw("(employee_id = $? OR department_id = $?)", employeeID, departmentID)
	}
	return s.list(ctx, where, limit, offset)
}

func (s *Store) list(ctx context.Context, where *db.Where, limit, offset int) ([]Notice, error) {
	page := where.Page(limit, offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+noticeColumns+`
    FROM notices
    `+where.SQL()+`
    ORDER BY created_at DESC
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Notice{}
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}
