package service

import (
	"context"
	"errors"

	"github.com/mlevkin/feedboard/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn func(ctx context.Context, user models.User) (models.User, error)
	getUserFn    func(ctx context.Context, username string) (models.User, error)
	deleteUserFn func(ctx context.Context, username string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) GetUser(ctx context.Context, username string) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, username string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, username)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.FeedbackRepository
// ─────────────────────────────────────────────

type mockFeedbackRepository struct {
	createFn      func(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	getFn         func(ctx context.Context, id int64) (models.Feedback, error)
	listByOwnerFn func(ctx context.Context, username string) ([]models.Feedback, error)
	updateFn      func(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockFeedbackRepository) CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	if m.createFn != nil {
		return m.createFn(ctx, feedback)
	}
	return feedback, nil
}

func (m *mockFeedbackRepository) GetFeedback(ctx context.Context, id int64) (models.Feedback, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Feedback{}, nil
}

func (m *mockFeedbackRepository) ListFeedbackByOwner(ctx context.Context, username string) ([]models.Feedback, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, username)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) UpdateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, feedback)
	}
	return feedback, nil
}

func (m *mockFeedbackRepository) DeleteFeedback(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.SessionStore
// ─────────────────────────────────────────────

type mockSessionStore struct {
	createFn           func(ctx context.Context, username string) (models.Session, error)
	getFn              func(ctx context.Context, token string) (models.Session, error)
	deleteFn           func(ctx context.Context, token string) error
	deleteAllForUserFn func(ctx context.Context, username string) error
	purgeExpiredFn     func(ctx context.Context) int
}

func (m *mockSessionStore) Create(ctx context.Context, username string) (models.Session, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username)
	}
	return models.Session{Token: "token", Username: username}, nil
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	if m.getFn != nil {
		return m.getFn(ctx, token)
	}
	return models.Session{}, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionStore) DeleteAllForUser(ctx context.Context, username string) error {
	if m.deleteAllForUserFn != nil {
		return m.deleteAllForUserFn(ctx, username)
	}
	return nil
}

func (m *mockSessionStore) PurgeExpired(ctx context.Context) int {
	if m.purgeExpiredFn != nil {
		return m.purgeExpiredFn(ctx)
	}
	return 0
}

var errStorage = errors.New("storage error")
