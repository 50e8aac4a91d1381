// Package dbtest opens a migrated PostgreSQL database for store tests.
// Packages share the database, so fixtures use unique names instead of truncation.
package dbtest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"hrms/internal/platform/db"
)

// Open skips the test when TEST_DATABASE_URL is unset.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool))
	return pool
}

// Unique suffixes prefix with a random token.
func Unique(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// UniqueEmail returns a fresh address under example.com.
func UniqueEmail(prefix string) string {
	return Unique(prefix) + "@example.com"
}

// Organization inserts an organization with unique name, url and mail.
func Organization(t *testing.T, pool *pgxpool.Pool, prefix string) string {
	t.Helper()
	name := Unique(prefix)
	var id string
	err := pool.QueryRow(context.Background(), `
    INSERT INTO organizations (name, description, url, mail)
    VALUES ($1, '', $2, $3)
    RETURNING id
  `, name, "https://"+name+".example.com", "hr@"+name+".example.com").Scan(&id)
	require.NoError(t, err)
	return id
}

// Department inserts a department into orgID.
func Department(t *testing.T, pool *pgxpool.Pool, orgID, name string) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(), `
    INSERT INTO departments (organization_id, name) VALUES ($1, $2) RETURNING id
  `, orgID, name).Scan(&id)
	require.NoError(t, err)
	return id
}

// Employee inserts an employee with role Employee into orgID.
func Employee(t *testing.T, pool *pgxpool.Pool, orgID, email string) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(), `
    INSERT INTO employees (organization_id, first_name, last_name, email, password_hash, contact_number, role)
    VALUES ($1, 'Test', 'Employee', $2, 'x', '555', 'Employee')
    RETURNING id
  `, orgID, email).Scan(&id)
	require.NoError(t, err)
	return id
}

// HR inserts an HR-Admin into orgID.
func HR(t *testing.T, pool *pgxpool.Pool, orgID, email string) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(), `
    INSERT INTO human_resources (organization_id, first_name, last_name, email, password_hash, contact_number)
    VALUES ($1, 'Test', 'HR', $2, 'x', '555')
    RETURNING id
  `, orgID, email).Scan(&id)
	require.NoError(t, err)
	return id
}
