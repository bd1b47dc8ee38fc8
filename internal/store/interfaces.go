package store

import (
	"context"

	"github.com/mlevkin/feedboard/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// CreateUser persists a new account. Uniqueness of username and email is
	// enforced by database constraints and surfaced as ErrUsernameTaken or
	// ErrEmailTaken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser fetches an account by its username primary key.
	// Returns ErrUserNotFound when no such account exists.
	GetUser(ctx context.Context, username string) (models.User, error)

	// DeleteUser removes an account and every feedback item it owns in a
	// single transaction. Returns ErrUserNotFound when no such account exists;
	// in that case nothing is deleted.
	DeleteUser(ctx context.Context, username string) error
}

// FeedbackRepository is the persistence boundary for feedback items.
type FeedbackRepository interface {
	// CreateFeedback persists a new item and returns it with the
	// server-assigned ID and timestamps.
	CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error)

	// GetFeedback fetches an item by its surrogate ID.
	// Returns ErrFeedbackNotFound when no such item exists.
	GetFeedback(ctx context.Context, id int64) (models.Feedback, error)

	// ListFeedbackByOwner returns every item owned by the given username,
	// newest first. An owner with no items yields an empty slice.
	ListFeedbackByOwner(ctx context.Context, username string) ([]models.Feedback, error)

	// UpdateFeedback persists new title/content for an existing item.
	// Returns ErrFeedbackNotFound when the item does not exist.
	UpdateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error)

	// DeleteFeedback removes a single item by ID.
	// Returns ErrFeedbackNotFound when the item does not exist.
	DeleteFeedback(ctx context.Context, id int64) error
}

// SessionStore is the boundary for the server-side session state. Sessions
// are transient: implementations are free to keep them in memory only.
type SessionStore interface {
	// Create issues a new session for the given username with a fresh token.
	Create(ctx context.Context, username string) (models.Session, error)

	// Get resolves a token to its session. Returns ErrSessionNotFound for
	// unknown or expired tokens; expired sessions are dropped on lookup.
	Get(ctx context.Context, token string) (models.Session, error)

	// Delete removes a single session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error

	// DeleteAllForUser removes every session issued for the given username.
	// Used when an account is deleted.
	DeleteAllForUser(ctx context.Context, username string) error

	// PurgeExpired removes all sessions past their expiry and reports how
	// many were dropped.
	PurgeExpired(ctx context.Context) int
}
