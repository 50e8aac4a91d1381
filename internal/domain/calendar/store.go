package calendar

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

const eventColumns = `id, organization_id, title, event_date, description, audience, created_at, updated_at`

func scanEvent(row pgx.Row) (*Event, error) {
	var e Event
	if err := row.Scan(&e.ID, &e.OrganizationID, &e.Title, &e.EventDate, &e.Description, &e.Audience, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) Insert(ctx context.Context, e Event) (*Event, error) {
	out, err := scanEvent(s.DB.QueryRow(ctx, `
    INSERT INTO corporate_calendar_events (organization_id, title, event_date, description, audience)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING `+eventColumns,
		e.OrganizationID, e.Title, e.EventDate, e.Description, e.Audience))
	return out, db.MapError(err)
}

func (s *Store) Get(ctx context.Context, orgID, id string) (*Event, error) {
	out, err := scanEvent(s.DB.QueryRow(ctx, `
    SELECT `+eventColumns+`
    FROM corporate_calendar_events
    WHERE organization_id = $1 AND id = $2
  `, orgID, id))
	return out, db.MapError(err)
}

func (s *Store) Update(ctx context.Context, orgID, id string, apply func(*Event) error) (*Event, error) {
	var out *Event
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanEvent(tx.QueryRow(ctx, `
      SELECT `+eventColumns+`
      FROM corporate_calendar_events
      WHERE organization_id = $1 AND id = $2
      FOR UPDATE
    `, orgID, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanEvent(tx.QueryRow(ctx, `
      UPDATE corporate_calendar_events
      SET title = $3, event_date = $4, description = $5, audience = $6, updated_at = now()
      WHERE organization_id = $1 AND id = $2
      RETURNING `+eventColumns,
			orgID, id, current.Title, current.EventDate, current.Description, current.Audience))
		return err
	})
	return out, err
}

func (s *Store) Delete(ctx context.Context, orgID, id string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM corporate_calendar_events
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

func (s *Store) List(ctx context.Context, orgID string, f Filter) ([]Event, error) {
	where := db.ForOrganization("organization_id", orgID)
	if !f.From.IsZero() {
		where.Raw("event_date >= $?", f.From)
	}
	if !f.To.IsZero() {
		where.Raw("event_date <= $?", f.To)
	}
	page := where.Page(f.Limit, f.Offset)
	rows, err := s.DB.Query(ctx, `
    SELECT `+eventColumns+`
    FROM corporate_calendar_events
    `+where.SQL()+`
    ORDER BY event_date
    `+page, where.Args()...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}
