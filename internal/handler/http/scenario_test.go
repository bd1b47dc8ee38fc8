package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/render"
	"github.com/mlevkin/feedboard/internal/service"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/models"
	"golang.org/x/crypto/bcrypt"
)

// The scenario test runs the whole stack — router, middleware, Guard, real
// services, real in-memory session store — against map-backed repositories,
// exercising the end-to-end flows one browser would drive.

// ─────────────────────────────────────────────
// Map-backed repositories
// ─────────────────────────────────────────────

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
	items *fakeFeedbackRepo
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.Username]; ok {
		return models.User{}, store.ErrUsernameTaken
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return models.User{}, store.ErrEmailTaken
		}
	}

	user.CreatedAt = time.Now()
	f.users[user.Username] = user
	return user, nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[username]; !ok {
		return store.ErrUserNotFound
	}
	delete(f.users, username)
	f.items.deleteByOwner(username)
	return nil
}

type fakeFeedbackRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Feedback
}

func (f *fakeFeedbackRepo) CreateFeedback(_ context.Context, feedback models.Feedback) (models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	feedback.ID = f.nextID
	feedback.CreatedAt = time.Now()
	feedback.UpdatedAt = feedback.CreatedAt
	f.items[feedback.ID] = feedback
	return feedback, nil
}

func (f *fakeFeedbackRepo) GetFeedback(_ context.Context, id int64) (models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[id]
	if !ok {
		return models.Feedback{}, store.ErrFeedbackNotFound
	}
	return item, nil
}

func (f *fakeFeedbackRepo) ListFeedbackByOwner(_ context.Context, username string) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	owned := make([]models.Feedback, 0)
	for _, item := range f.items {
		if item.Username == username {
			owned = append(owned, item)
		}
	}
	return owned, nil
}

func (f *fakeFeedbackRepo) UpdateFeedback(_ context.Context, feedback models.Feedback) (models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.items[feedback.ID]
	if !ok {
		return models.Feedback{}, store.ErrFeedbackNotFound
	}
	existing.Title = feedback.Title
	existing.Content = feedback.Content
	existing.UpdatedAt = time.Now()
	f.items[feedback.ID] = existing
	return existing, nil
}

func (f *fakeFeedbackRepo) DeleteFeedback(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[id]; !ok {
		return store.ErrFeedbackNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeFeedbackRepo) deleteByOwner(username string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, item := range f.items {
		if item.Username == username {
			delete(f.items, id)
		}
	}
}

// ─────────────────────────────────────────────
// Stack assembly
// ─────────────────────────────────────────────

type appStack struct {
	router   http.Handler
	users    *fakeUserRepo
	feedback *fakeFeedbackRepo
	sessions store.SessionStore
}

func newAppStack(t *testing.T) *appStack {
	t.Helper()

	log := logger.Nop()
	feedbackRepo := &fakeFeedbackRepo{items: make(map[int64]models.Feedback)}
	userRepo := &fakeUserRepo{users: make(map[string]models.User), items: feedbackRepo}
	sessions := store.NewMemorySessionStore(time.Hour, log)

	cfg := config.App{Version: "scenario", BcryptCost: bcrypt.MinCost, SessionTTL: time.Hour}
	services, err := service.NewServices(&store.Repositories{
		UserRepository:     userRepo,
		FeedbackRepository: feedbackRepo,
		Sessions:           sessions,
	}, cfg, log)
	require.NoError(t, err)

	renderer, err := render.NewRenderer(log)
	require.NoError(t, err)

	return &appStack{
		router:   NewHandler(services, sessions, renderer, cfg, log).Init(),
		users:    userRepo,
		feedback: feedbackRepo,
		sessions: sessions,
	}
}

// register creates an account through the HTTP surface and returns the
// issued session token.
func (s *appStack) register(t *testing.T, username, password, email string) string {
	t.Helper()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, postForm("/register", url.Values{
		"username":   {username},
		"password":   {password},
		"first_name": {"First"},
		"last_name":  {"Last"},
		"email":      {email},
	}, ""))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	token, ok := cookieValue(rec, sessionCookieName)
	require.True(t, ok)
	return token
}

// ─────────────────────────────────────────────
// Scenarios
// ─────────────────────────────────────────────

func TestScenario_RegisterLoginRoundTrip(t *testing.T) {
	app := newAppStack(t)
	app.register(t, "alice", "s3cret", "alice@example.com")

	// correct password logs in
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/login", url.Values{
		"username": {"alice"},
		"password": {"s3cret"},
	}, ""))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/users/alice", rec.Header().Get("Location"))

	// any other password fails
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/login", url.Values{
		"username": {"alice"},
		"password": {"S3CRET"},
	}, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// the stored credential is a hash, not the plaintext
	stored, err := app.users.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
}

func TestScenario_DuplicateRegistrationPersistsNothing(t *testing.T) {
	app := newAppStack(t)
	app.register(t, "alice", "pw", "alice@example.com")

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/register", url.Values{
		"username":   {"alice"},
		"password":   {"other"},
		"first_name": {"Imposter"},
		"last_name":  {"X"},
		"email":      {"other@example.com"},
	}, ""))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// the original account is untouched
	stored, err := app.users.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.Len(t, app.users.users, 1)
}

func TestScenario_DuplicateEmailRejected(t *testing.T) {
	app := newAppStack(t)
	app.register(t, "alice", "pw", "shared@example.com")

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/register", url.Values{
		"username":   {"bob"},
		"password":   {"pw"},
		"first_name": {"Bob"},
		"last_name":  {"B"},
		"email":      {"shared@example.com"},
	}, ""))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
	assert.Len(t, app.users.users, 1)
}

func TestScenario_FeedbackLifecycle(t *testing.T) {
	app := newAppStack(t)
	token := app.register(t, "alice", "pw", "alice@example.com")

	// add
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/users/alice/feedback/add",
		feedbackValues("First note", "Hello world"), token))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, app.feedback.items, 1)

	// it shows on the profile
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, getPage("/users/alice", token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First note")

	// update
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/feedback/1/update",
		feedbackValues("Renamed", "Edited body"), token))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	item, err := app.feedback.GetFeedback(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", item.Title)
	assert.Equal(t, "alice", item.Username, "ownership never changes on update")

	// delete
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/feedback/1/delete", url.Values{}, token))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, app.feedback.items)
}

func TestScenario_CrossUserAccessIsDenied(t *testing.T) {
	app := newAppStack(t)
	aliceToken := app.register(t, "alice", "pw", "alice@example.com")
	bobToken := app.register(t, "bob", "pw", "bob@example.com")

	// alice creates an item
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/users/alice/feedback/add",
		feedbackValues("Private", "Mine"), aliceToken))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// bob cannot view alice's profile
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, getPage("/users/alice", bobToken))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// bob cannot update alice's item, and nothing changes
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/feedback/1/update",
		feedbackValues("Hijacked", "x"), bobToken))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	item, err := app.feedback.GetFeedback(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Private", item.Title)

	// bob cannot delete alice's item either
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/feedback/1/delete", url.Values{}, bobToken))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, app.feedback.items, 1)

	// bob cannot delete alice's account
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/users/alice/delete", url.Values{}, bobToken))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Len(t, app.users.users, 2)
}

func TestScenario_AccountDeletionCascades(t *testing.T) {
	app := newAppStack(t)
	token := app.register(t, "alice", "pw", "alice@example.com")

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/users/alice/feedback/add",
		feedbackValues("Will vanish", "With the account"), token))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/users/alice/delete", url.Values{}, token))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// account and feedback are gone
	assert.Empty(t, app.users.users)
	assert.Empty(t, app.feedback.items)

	// every session issued for the account is dead
	_, err := app.sessions.Get(context.Background(), token)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	// the profile of the deleted account is simply gone
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, getPage("/users/alice", token))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScenario_LogoutInvalidatesSession(t *testing.T) {
	app := newAppStack(t)
	token := app.register(t, "alice", "pw", "alice@example.com")

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, getPage("/logout", token))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// the token is dead server-side, not just removed from the browser
	_, err := app.sessions.Get(context.Background(), token)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, getPage("/users/alice", token))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestScenario_UnknownRouteIs404(t *testing.T) {
	app := newAppStack(t)

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, getPage("/no/such/page", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not found")
}
