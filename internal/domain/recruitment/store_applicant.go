package recruitment

import (
	"context"

	"github.com/jackc/pgx/v5"

	"hrms/internal/platform/db"
)

const applicantColumns = `
    id, organization_id, first_name, last_name, email, contact_number, applied_role,
    recruitment_status, created_at, updated_at`

func scanApplicant(row pgx.Row) (*Applicant, error) {
	var a Applicant
	if err := row.Scan(
		&a.ID, &a.OrganizationID, &a.FirstName, &a.LastName, &a.Email, &a.ContactNumber, &a.AppliedRole,
		&a.RecruitmentStatus, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) InsertApplicant(ctx context.Context, a Applicant) (*Applicant, error) {
	out, err := scanApplicant(s.DB.QueryRow(ctx, `
    INSERT INTO applicants (organization_id, first_name, last_name, email, contact_number, applied_role, recruitment_status)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING `+applicantColumns,
		a.OrganizationID, a.FirstName, a.LastName, a.Email, a.ContactNumber, a.AppliedRole, a.RecruitmentStatus))
	return out, db.MapError(err)
}

func (s *Store) GetApplicant(ctx context.Context, orgID, id string) (*Applicant, error) {
	out, err := scanApplicant(s.DB.QueryRow(ctx, `
    SELECT `+applicantColumns+`
    FROM applicants
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) UpdateApplicant(ctx context.Context, orgID, id string, apply func(*Applicant) error) (*Applicant, error) {
	var out *Applicant
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanApplicant(tx.QueryRow(ctx, `
      SELECT `+applicantColumns+`
      FROM applicants
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanApplicant(tx.QueryRow(ctx, `
      UPDATE applicants
      SET first_name = $3, last_name = $4, email = $5, contact_number = $6, applied_role = $7,
          recruitment_status = $8, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+applicantColumns,
			orgID, id, current.FirstName, current.LastName, current.Email, current.ContactNumber,
			current.AppliedRole, current.RecruitmentStatus))
		return err
	})
	return out, err
}

func (s *Store) ListApplicants(ctx context.Context, orgID string, f Filter) ([]Applicant, error) {
	where := db.ForOrganization("a.organization_id", orgID).
		Eq("a.recruitment_status", string(f.RecruitmentStatus))
	if f.RecruitmentID != "" {
		if err := db.CheckID("recruitmentId", f.RecruitmentID); err != nil {
			return nil, err
		}
		where.Raw("EXISTS (SELECT 1 FROM applicant_recruitments ar WHERE ar.applicant_id = a.id AND ar.recruitment_id = $?)", f.RecruitmentID)
	}
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.organization_id, a.first_name, a.last_name, a.email, a.contact_number, a.applied_role,
           a.recruitment_status, a.created_at, a.updated_at
    FROM applicants a
    `+where.SQL()+`
    ORDER BY a.last_name, a.first_name, a.id
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Applicant{}
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}
