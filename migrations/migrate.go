// Package migrations embeds the database schema and applies it with goose.
// Schema files are kept per dialect because the two supported backends
// (PostgreSQL and SQLite) spell out auto-increment keys differently.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given driver
// ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dir := "postgres"
	if driver == "sqlite3" {
		dir = "sqlite"
	}

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
