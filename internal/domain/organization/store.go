package organization

import (
	"context"

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

const organizationColumns = `id, name, description, url, mail, created_at, updated_at`

func scanOrganization(row pgx.Row) (*Organization, error) {
	var o Organization
	if err := row.Scan(&o.ID, &o.Name, &o.Description, &o.URL, &o.Mail, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func insertOrganization(ctx context.Context, q db.Querier, o Organization) (*Organization, error) {
	out, err := scanOrganization(q.QueryRow(ctx, `
    INSERT INTO organizations (name, description, url, mail)
    VALUES ($1,$2,$3,$4)
    RETURNING `+organizationColumns, o.Name, o.Description, o.URL, o.Mail))
	return out, db.MapError(err)
}

func (s *Store) Insert(ctx context.Context, o Organization) (*Organization, error) {
	return insertOrganization(ctx, s.DB, o)
}

// InsertWithAdmin writes the organization and its first HR account atomically.
func (s *Store) InsertWithAdmin(ctx context.Context, o Organization, admin core.Account) (*Organization, *core.Account, error) {
	var org *Organization
	var hr *core.Account
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		var err error
		org, err = insertOrganization(ctx, tx, o)
		if err != nil {
			return err
		}
		admin.OrganizationID = org.ID
		hr, err = core.InsertAccountTx(ctx, tx, core.KindHR, admin)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return org, hr, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Organization, error) {
	out, err := scanOrganization(s.DB.QueryRow(ctx, `
    SELECT `+organizationColumns+`
    FROM organizations
    WHERE id = $1
  `, id))
	return out, db.MapError(err)
}

func (s *Store) Update(ctx context.Context, id string, apply func(*Organization) error) (*Organization, error) {
	var out *Organization
	err := db.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		current, err := scanOrganization(tx.QueryRow(ctx, `
      SELECT `+organizationColumns+`
      FROM organizations
      WHERE id = $1
      FOR UPDATE
    `, id))
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		out, err = scanOrganization(tx.QueryRow(ctx, `
      UPDATE organizations
      SET name = $2, description = $3, url = $4, mail = $5, updated_at = now()
      WHERE id = $1
      RETURNING `+organizationColumns, id, current.Name, current.Description, current.URL, current.Mail))
		return err
	})
	return out, err
}
