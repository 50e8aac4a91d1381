package db

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/platform/config"
	"hrms/internal/platform/crypto"
)

// Seed makes sure the configured organization and its first HR-Admin exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	orgID, err := ensureOrganization(ctx, pool, cfg)
	if err != nil {
		return err
	}

	if err := ensureAdmin(ctx, pool, orgID, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		return err
	}
	return nil
}

func ensureOrganization(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) (string, error) {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM organizations WHERE name = $1", cfg.SeedOrganizationName).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	err = pool.QueryRow(ctx, `
    INSERT INTO organizations (name, description, url, mail)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, cfg.SeedOrganizationName, "Seeded organization", cfg.SeedOrganizationURL, cfg.SeedOrganizationMail).Scan(&id)
	if err != nil {
		return "", MapError(err)
	}
	slog.Info("seeded organization", "organization_id", id)
	return id, nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, orgID, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM human_resources WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	err = pool.QueryRow(ctx, `
    INSERT INTO human_resources (organization_id, first_name, last_name, email, password_hash, contact_number, role, is_verified)
    VALUES ($1, 'Admin', 'User', $2, $3, '', 'HR-Admin', true)
    RETURNING id
  `, orgID, email, hash).Scan(&id)
	if err != nil {
		return MapError(err)
	}
	slog.Info("seeded hr admin", "hr_id", id)
	return nil
}
