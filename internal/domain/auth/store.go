package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/core"
	"hrms/internal/platform/db"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) CreateSession(ctx context.Context, session Session) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO sessions (id, organization_id, subject_id, subject_kind, token_hash, expires_at)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, session.ID, session.OrganizationID, session.SubjectID, session.SubjectKind, session.TokenHash, session.ExpiresAt)
	return db.MapError(err)
}

func (s *Store) GetSession(ctx context.Context, id string) (*Session, error) {
	var out Session
	err := s.DB.QueryRow(ctx, `
    SELECT id, organization_id, subject_id, subject_kind, token_hash, expires_at, revoked_at, created_at
    FROM sessions
    WHERE id = $1
  `, id).Scan(&out.ID, &out.OrganizationID, &out.SubjectID, &out.SubjectKind, &out.TokenHash, &out.ExpiresAt, &out.RevokedAt, &out.CreatedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &out, nil
}

func (s *Store) RevokeSession(ctx context.Context, orgID, id string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE sessions SET revoked_at = now()
    WHERE organization_id = $1 AND id = $2 AND revoked_at IS NULL
  `, orgID, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.MapError(pgx.ErrNoRows)
	}
	return nil
}

// RevokeSubjectSessions revokes every live session of one account.
func (s *Store) RevokeSubjectSessions(ctx context.Context, orgID, subjectID string, kind core.AccountKind) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE sessions SET revoked_at = now()
    WHERE organization_id = $1 AND subject_id = $2 AND subject_kind = $3 AND revoked_at IS NULL
  `, orgID, subjectID, kind)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}

// PurgeSessions deletes sessions that expired or were revoked before cutoff.
func (s *Store) PurgeSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM sessions
    WHERE expires_at < $1 OR revoked_at < $1
  `, cutoff)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}
