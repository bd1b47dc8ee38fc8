package service

import (
	"context"
	"fmt"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	userRepository store.UserRepository
	sessions       store.SessionStore

	logger *logger.Logger
}

// NewUserService constructs a [UserService]. The session store is needed so
// that deleting an account also invalidates every live session issued for it.
func NewUserService(userRepository store.UserRepository, sessions store.SessionStore, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		sessions:       sessions,
		logger:         logger,
	}
}

// Get fetches a user profile by username.
func (u *userService) Get(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	return u.userRepository.GetUser(ctx, username)
}

// Delete removes the account together with all feedback it owns (a single
// repository transaction) and then drops every session for the username, so
// no logged-in browser keeps acting for a deleted account.
func (u *userService) Delete(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if username == "" {
		return ErrInvalidDataProvided
	}

	if err := u.userRepository.DeleteUser(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	if err := u.sessions.DeleteAllForUser(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("dropping sessions for deleted user failed")
		return fmt.Errorf("dropping sessions for deleted user failed: %w", err)
	}

	log.Info().Str("username", username).Msg("user and all owned feedback deleted")
	return nil
}
