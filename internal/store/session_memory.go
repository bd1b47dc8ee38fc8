package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/models"
)

// memorySessionStore is the in-process implementation of [SessionStore].
// Sessions are transient by design, so a mutex-guarded map is sufficient:
// a restart simply logs everyone out. Tokens are UUIDv7 strings.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	ttl    time.Duration
	now    func() time.Time
	logger *logger.Logger
}

// NewMemorySessionStore constructs a [SessionStore] keeping all sessions in
// memory. Sessions expire ttl after creation.
func NewMemorySessionStore(ttl time.Duration, logger *logger.Logger) SessionStore {
	logger.Debug().Dur("ttl", ttl).Msg("creating in-memory session store")
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Create issues a new session for username under a fresh random token.
func (s *memorySessionStore) Create(ctx context.Context, username string) (models.Session, error) {
	session := models.Session{
		Token:     newSessionToken(),
		Username:  username,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session, nil
}

// Get resolves a token to its session. Expired sessions are dropped on
// lookup and reported as [ErrSessionNotFound], same as unknown tokens.
func (s *memorySessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	if session.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// Delete removes a single session. Unknown tokens are ignored.
func (s *memorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	return nil
}

// DeleteAllForUser removes every session issued for username.
func (s *memorySessionStore) DeleteAllForUser(ctx context.Context, username string) error {
	s.mu.Lock()
	for token, session := range s.sessions {
		if session.Username == username {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()

	return nil
}

// PurgeExpired drops all sessions past their expiry and reports how many
// were removed. Called periodically by the session janitor worker.
func (s *memorySessionStore) PurgeExpired(ctx context.Context) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
			purged++
		}
	}

	return purged
}

// newSessionToken returns a fresh opaque session token. UUIDv7 keeps tokens
// time-ordered which makes server logs easier to correlate; the random v4
// form is the fallback when v7 generation fails.
func newSessionToken() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
