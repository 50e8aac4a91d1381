package recruitment

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

const recruitmentColumns = `
    id, organization_id, COALESCE(department_id::text, ''), job_title, description, created_at, updated_at`

func scanRecruitment(row pgx.Row) (*Recruitment, error) {
	var r Recruitment
	if err := row.Scan(&r.ID, &r.OrganizationID, &r.DepartmentID, &r.JobTitle, &r.Description, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) InsertRecruitment(ctx context.Context, r Recruitment) (*Recruitment, error) {
	out, err := scanRecruitment(s.DB.QueryRow(ctx, `
    INSERT INTO recruitments (organization_id, department_id, job_title, description)
    VALUES ($1,$2,$3,$4)
    RETURNING `+recruitmentColumns,
		r.OrganizationID, db.NullIfEmpty(&r.DepartmentID), r.JobTitle, r.Description))
	return out, db.MapError(err)
}

func (s *Store) GetRecruitment(ctx context.Context, orgID, id string) (*Recruitment, error) {
	out, err := scanRecruitment(s.DB.QueryRow(ctx, `
    SELECT `+recruitmentColumns+`
    FROM recruitments
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) UpdateRecruitment(ctx context.Context, orgID, id string, apply func(*Recruitment) error) (*Recruitment, error) {
	var out *Recruitment
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanRecruitment(tx.QueryRow(ctx, `
      SELECT `+recruitmentColumns+`
      FROM recruitments
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanRecruitment(tx.QueryRow(ctx, `
      UPDATE recruitments
      SET department_id = $3, job_title = $4, description = $5, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+recruitmentColumns,
			orgID, id, db.NullIfEmpty(&current.DepartmentID), current.JobTitle, current.Description))
		return err
	})
	return out, err
}

// DeleteRecruitment also drops its applicant links.
func (s *Store) DeleteRecruitment(ctx context.Context, orgID, id string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM recruitments
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

func (s *Store) ListRecruitments(ctx context.Context, orgID string, f Filter) ([]Recruitment, error) {
	where := db.ForOrganization("r.organization_id", orgID).ID("r.department_id", "departmentId", f.DepartmentID)
	if f.ApplicantID != "" {
		if err := db.CheckID("applicantId", f.ApplicantID); err != nil {
			return nil, err
		}
		where.Raw("EXISTS (SELECT 1 FROM applicant_recruitments ar WHERE ar.recruitment_id = r.id AND ar.applicant_id = $?)", f.ApplicantID)
	}
	if err := where.Err(); err != nil {
		return nil, err
	}
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT r.id, r.organization_id, COALESCE(r.department_id::text, ''), r.job_title, r.description, r.created_at, r.updated_at
    FROM recruitments r
    `+where.SQL()+`
    ORDER BY r.created_at DESC
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Recruitment{}
	for rows.Next() {
		r, err := scanRecruitment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// Link is idempotent.
func (s *Store) Link(ctx context.Context, orgID, recruitmentID, applicantID string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO applicant_recruitments (organization_id, applicant_id, recruitment_id)
    VALUES ($1,$2,$3)
    ON CONFLICT (applicant_id, recruitment_id) DO NOTHING
  `, orgID, applicantID, recruitmentID)
	return db.MapError(err)
}

func (s *Store) Unlink(ctx context.Context, orgID, recruitmentID, applicantID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM applicant_recruitments
    WHERE organization_id = $1 AND recruitment_id = $2 AND applicant_id = $3
  `, orgID, recruitmentID, applicantID)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.MapError(pgx.ErrNoRows)
	}
	return nil
}
