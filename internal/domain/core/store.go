package core

import (
	"context"
	"fmt"

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

const accountColumns = `
    id, organization_id, COALESCE(department_id::text, ''), first_name, last_name, email,
    password_hash, contact_number, role, is_verified, COALESCE(verification_token, ''),
    verification_token_expires, COALESCE(reset_password_token, ''), reset_password_expires,
    last_login, created_at, updated_at`

func accountTable(kind AccountKind) (string, error) {
	switch kind {
	case KindEmployee:
		return "employees", nil
	case KindHR:
		return "human_resources", nil
	}
	return "", fmt.Errorf("unknown account kind %q", kind)
}

func scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	if err := row.Scan(
		&a.ID, &a.OrganizationID, &a.DepartmentID, &a.FirstName, &a.LastName, &a.Email,
		&a.PasswordHash, &a.ContactNumber, &a.Role, &a.IsVerified, &a.VerificationToken,
		&a.VerificationTokenExpires, &a.ResetPasswordToken, &a.ResetPasswordExpires,
		&a.LastLogin, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) InsertAccount(ctx context.Context, kind AccountKind, a Account) (*Account, error) {
	return InsertAccountTx(ctx, s.DB, kind, a)
}

// InsertAccountTx inserts through q so callers can compose it into a wider transaction.
func InsertAccountTx(ctx context.Context, q db.Querier, kind AccountKind, a Account) (*Account, error) {
	table, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	row := q.QueryRow(ctx, `
    INSERT INTO `+table+` (organization_id, department_id, first_name, last_name, email, password_hash,
      contact_number, role, is_verified)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING `+accountColumns,
		a.OrganizationID, db.NullIfEmpty(&a.DepartmentID), a.FirstName, a.LastName, a.Email, a.PasswordHash,
		a.ContactNumber, a.Role, a.IsVerified)
	out, err := scanAccount(row)
	return out, db.MapError(err)
}

func (s *Store) GetAccount(ctx context.Context, kind AccountKind, orgID, id string) (*Account, error) {
	table, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	out, err := scanAccount(s.DB.QueryRow(ctx, `
    SELECT `+accountColumns+`
    FROM `+table+`
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

// FindAccountByEmail looks across organizations; emails are unique per table.
func (s *Store) FindAccountByEmail(ctx context.Context, kind AccountKind, email string) (*Account, error) {
	table, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	out, err := scanAccount(s.DB.QueryRow(ctx, `
    SELECT `+accountColumns+`
    FROM `+table+`
    WHERE email = $1
  `, email))
	return out, db.MapError(err)
}

// FindAccountByResetToken matches the stored reset token hash. Expiry is the
// caller's check.
func (s *Store) FindAccountByResetToken(ctx context.Context, kind AccountKind, tokenHash string) (*Account, error) {
	table, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	out, err := scanAccount(s.DB.QueryRow(ctx, `
    SELECT `+accountColumns+`
    FROM `+table+`
    WHERE reset_password_token = $1
  `, tokenHash))
	return out, db.MapError(err)
}

func (s *Store) UpdateAccount(ctx context.Context, kind AccountKind, orgID, id string, apply func(*Account) error) (*Account, error) {
	table, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	var out *Account
	err = db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanAccount(tx.QueryRow(ctx, `
      SELECT `+accountColumns+`
      FROM `+table+`
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanAccount(tx.QueryRow(ctx, `
      UPDATE `+table+`
      SET department_id = $3, first_name = $4, last_name = $5, email = $6, password_hash = $7,
          contact_number = $8, role = $9, is_verified = $10,
          verification_token = $11, verification_token_expires = $12,
          reset_password_token = $13, reset_password_expires = $14, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+accountColumns,
			orgID, id, db.NullIfEmpty(&current.DepartmentID), current.FirstName, current.LastName, current.Email,
			current.PasswordHash, current.ContactNumber, current.Role, current.IsVerified,
			db.NullIfEmpty(&current.VerificationToken), current.VerificationTokenExpires,
			db.NullIfEmpty(&current.ResetPasswordToken), current.ResetPasswordExpires))
		return err
	})
	return out, err
}

func (s *Store) ListAccounts(ctx context.Context, kind AccountKind, orgID string, f Filter) ([]Account, error) {
	table, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	where := db.ForOrganization("organization_id", orgID).
		ID("department_id", "departmentId", f.DepartmentID).
		Eq("role", string(f.Role))
	if err := where.Err(); err != nil {
		return nil, err
	}
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+accountColumns+`
    FROM `+table+`
    `+where.SQL()+`
    ORDER BY last_name, first_name, id
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) TouchLastLogin(ctx context.Context, kind AccountKind, orgID, id string) error {
	table, err := accountTable(kind)
	if err != nil {
		return err
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE `+table+`
    SET last_login = now()
    WHERE organization_id = $1 AND id = $2
  `, orgID, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.MapError(pgx.ErrNoRows)
	}
	return nil
}

const departmentColumns = `id, organization_id, name, description, created_at, updated_at`

func scanDepartment(row pgx.Row) (*Department, error) {
	var d Department
	if err := row.Scan(&d.ID, &d.OrganizationID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) InsertDepartment(ctx context.Context, d Department) (*Department, error) {
	out, err := scanDepartment(s.DB.QueryRow(ctx, `
    INSERT INTO departments (organization_id, name, description)
    VALUES ($1,$2,$3)
    RETURNING `+departmentColumns, d.OrganizationID, d.Name, d.Description))
	return out, db.MapError(err)
}

func (s *Store) GetDepartment(ctx context.Context, orgID, id string) (*Department, error) {
	out, err := scanDepartment(s.DB.QueryRow(ctx, `
    SELECT `+departmentColumns+`
    FROM departments
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) UpdateDepartment(ctx context.Context, orgID, id string, apply func(*Department) error) (*Department, error) {
	var out *Department
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanDepartment(tx.QueryRow(ctx, `
      SELECT `+departmentColumns+`
      FROM departments
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanDepartment(tx.QueryRow(ctx, `
      UPDATE departments
      SET name = $3, description = $4, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+departmentColumns, orgID, id, current.Name, current.Description))
		return err
	})
	return out, err
}

func (s *Store) ListDepartments(ctx context.Context, orgID string, f Filter) ([]Department, error) {
	where := db.ForOrganization("organization_id", orgID)
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+departmentColumns+`
    FROM departments
    `+where.SQL()+`
    ORDER BY name, id
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (s *Store) DeleteDepartment(ctx context.Context, orgID, id string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM departments
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
