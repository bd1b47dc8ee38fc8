package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/models"
)

// dummyPasswordHash is a valid bcrypt digest of a throwaway string. When a
// login targets an unknown username the service still runs one bcrypt
// comparison against this hash, so the unknown-user path costs roughly the
// same as the wrong-password path and lookup failures do not leak through
// response timing.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// authService is the concrete implementation of [AuthService].
// It owns the password-credential lifecycle: bcrypt hashing on registration
// and verification on login, with persistence delegated to a UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing new passwords.
	// Verification reads the factor from the stored digest.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and configured with the bcrypt work factor from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account from a validated registration form.
//
// The plaintext password is replaced by its bcrypt hash before the account
// ever reaches the persistence layer; nothing downstream of this method sees
// the plaintext.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUsernameTaken / store.ErrEmailTaken on uniqueness conflicts;
//     these are expected form-level outcomes, not server faults.
//   - A wrapped storage error if the repository call fails otherwise.
func (a *authService) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if form.Username == "" || form.Password == "" {
		log.Error().Str("username", form.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     form.Username,
		PasswordHash: string(hash),
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", form.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies a username/password pair.
//
// Both "unknown username" and "wrong password" are the same normal outcome,
// ErrInvalidCredentials; the method never reveals which one occurred. When
// the user does not exist a dummy bcrypt comparison is still performed so the
// two failure paths take comparable time.
//
// Any other repository failure is returned wrapped and indicates an
// infrastructure problem rather than bad credentials.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// burn the same bcrypt work as the found-user path
			_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("password verification failed")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
