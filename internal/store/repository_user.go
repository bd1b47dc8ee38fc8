package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and cascading removal against the
// "users" and "feedback" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique violation on the primary key → [ErrUsernameTaken].
//   - unique violation on the email index → [ErrEmailTaken].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Email)

	var created models.User
	err := row.Scan(&created.Username, &created.PasswordHash,
		&created.FirstName, &created.LastName, &created.Email, &created.CreatedAt)
	if err != nil {
		if unique, constraint := isUniqueViolation(err); unique {
			log.Err(err).Str("func", "*userRepository.CreateUser").
				Str("constraint", constraint).Msg("unique constraint violated")
			return models.User{}, userUniqueError(constraint)
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetUser retrieves an account by its username primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) GetUser(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	err := row.Scan(&found.Username, &found.PasswordHash,
		&found.FirstName, &found.LastName, &found.Email, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteUser removes an account together with every feedback item it owns.
//
// Both deletes run inside one transaction so that the cascade is atomic: a
// failure at any step leaves the account and its feedback untouched. The
// schema additionally declares ON DELETE CASCADE on the feedback foreign key,
// but the cascade is performed explicitly here so it is visible and testable
// rather than implied by the schema alone.
//
// Returns [ErrUserNotFound] when the username does not exist; no rows are
// affected in that case.
func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteFeedbackByOwner, username); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").
			Str("username", username).Msg("error deleting owned feedback")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, deleteUserByUsername, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").
			Str("username", username).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}
