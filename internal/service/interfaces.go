package service

import (
	"context"

	"github.com/mlevkin/feedboard/models"
)

// AuthService manages the credential lifecycle: the one-way transformation
// from plaintext passwords to stored hashes and its verification.
type AuthService interface {
	// Register hashes the submitted password and persists a new account.
	// Duplicate usernames and emails surface as store.ErrUsernameTaken and
	// store.ErrEmailTaken.
	Register(ctx context.Context, form models.RegisterForm) (models.User, error)

	// Authenticate verifies username/password against the stored hash.
	// Unknown users and wrong passwords are both reported as
	// ErrInvalidCredentials; neither is an exceptional condition.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// UserService provides profile reads and account removal.
type UserService interface {
	// Get fetches a user by username. Missing users surface as
	// store.ErrUserNotFound.
	Get(ctx context.Context, username string) (models.User, error)

	// Delete removes the account, all feedback it owns (one transaction) and
	// every session issued for it.
	Delete(ctx context.Context, username string) error
}

// FeedbackService provides CRUD over feedback items.
type FeedbackService interface {
	// Add creates a new item owned by owner. The owner always comes from the
	// session identity of the caller, never from request data.
	Add(ctx context.Context, owner string, form models.FeedbackForm) (models.Feedback, error)

	// Get fetches an item by ID. Missing items surface as
	// store.ErrFeedbackNotFound.
	Get(ctx context.Context, id int64) (models.Feedback, error)

	// ListByOwner returns all items owned by username, newest first.
	ListByOwner(ctx context.Context, username string) ([]models.Feedback, error)

	// Update persists new title/content for an existing item.
	Update(ctx context.Context, id int64, form models.FeedbackForm) (models.Feedback, error)

	// Delete removes a single item.
	Delete(ctx context.Context, id int64) error
}

// AppInfoService exposes build/version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
