package recruitment

import (
	"context"

	"github.com/jackc/pgx/v5"

	"hrms/internal/platform/db"
)

const interviewColumns = `
    id, organization_id, applicant_id, interviewer_id, feedback, interview_date, response_date,
    status, created_at, updated_at`

func scanInterview(row pgx.Row) (*InterviewInsight, error) {
	var i InterviewInsight
	if err := row.Scan(
		&i.ID, &i.OrganizationID, &i.ApplicantID, &i.InterviewerID, &i.Feedback, &i.InterviewDate, &i.ResponseDate,
		&i.Status, &i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Store) InsertInterview(ctx context.Context, i InterviewInsight) (*InterviewInsight, error) {
	out, err := scanInterview(s.DB.QueryRow(ctx, `
    INSERT INTO interview_insights (organization_id, applicant_id, interviewer_id, feedback, interview_date, response_date, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING `+interviewColumns,
		i.OrganizationID, i.ApplicantID, i.InterviewerID, i.Feedback, i.InterviewDate, i.ResponseDate, i.Status))
	return out, db.MapError(err)
}

func (s *Store) GetInterview(ctx context.Context, orgID, id string) (*InterviewInsight, error) {
	out, err := scanInterview(s.DB.QueryRow(ctx, `
    SELECT `+interviewColumns+`
    FROM interview_insights
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) UpdateInterview(ctx context.Context, orgID, id string, apply func(*InterviewInsight) error) (*InterviewInsight, error) {
	var out *InterviewInsight
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanInterview(tx.QueryRow(ctx, `
      SELECT `+interviewColumns+`
      FROM interview_insights
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanInterview(tx.QueryRow(ctx, `
      UPDATE interview_insights
      SET interviewer_id = $3, feedback = $4, interview_date = $5, response_date = $6, status = $7,
          updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+interviewColumns,
			orgID, id, current.InterviewerID, current.Feedback, current.InterviewDate, current.ResponseDate, current.Status))
		return err
	})
	return out, err
}

func (s *Store) ListInterviews(ctx context.Context, orgID string, f Filter) ([]InterviewInsight, error) {
	where := db.ForOrganization("organization_id", orgID).
		ID("applicant_id", "applicantId", f.ApplicantID).
		ID("interviewer_id", "interviewerId", f.InterviewerID).
		Eq("status", string(f.InterviewStatus))
	if err := where.Err(); err != nil {
		return nil, err
	}
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+interviewColumns+`
    FROM interview_insights
    `+where.SQL()+`
    ORDER BY interview_date NULLS LAST, created_at
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []InterviewInsight{}
	for rows.Next() {
		i, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *i)
	}
	return out, rows.Err()
}
