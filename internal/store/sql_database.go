package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/migrations"
)

// NewConnect opens a database connection for the configured driver.
// Supported drivers are "pgx" (PostgreSQL) and "sqlite3" (local file).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("driver", cfg.Driver).Msg("unknown database driver")
		return nil, ErrUnknownDriver
	}
}

// Migrate applies all embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isUniqueViolation reports whether err is a unique-constraint violation in
// either supported backend, along with the constraint description the driver
// exposes (constraint name for PostgreSQL, error text for SQLite).
func isUniqueViolation(err error) (bool, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return true, pgErr.ConstraintName
		}
		return false, ""
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return true, sqliteErr.Error()
		}
	}

	return false, ""
}

// userUniqueError maps a unique-violation on the users table to the matching
// sentinel. The constraint description names the email column for the email
// index and the primary key otherwise.
func userUniqueError(constraint string) error {
	if strings.Contains(strings.ToLower(constraint), "email") {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}
