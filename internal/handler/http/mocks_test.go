package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/render"
	"github.com/mlevkin/feedboard/internal/service"
	"github.com/mlevkin/feedboard/models"
)

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn     func(ctx context.Context, form models.RegisterForm) (models.User, error)
	authenticateFn func(ctx context.Context, username, password string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, form)
	}
	return models.User{Username: form.Username, FirstName: form.FirstName}, nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, username, password)
	}
	return models.User{Username: username}, nil
}

type mockUserService struct {
	getFn    func(ctx context.Context, username string) (models.User, error)
	deleteFn func(ctx context.Context, username string) error
}

func (m *mockUserService) Get(ctx context.Context, username string) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, username)
	}
	return models.User{Username: username, FirstName: username}, nil
}

func (m *mockUserService) Delete(ctx context.Context, username string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, username)
	}
	return nil
}

type mockFeedbackService struct {
	addFn         func(ctx context.Context, owner string, form models.FeedbackForm) (models.Feedback, error)
	getFn         func(ctx context.Context, id int64) (models.Feedback, error)
	listByOwnerFn func(ctx context.Context, username string) ([]models.Feedback, error)
	updateFn      func(ctx context.Context, id int64, form models.FeedbackForm) (models.Feedback, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockFeedbackService) Add(ctx context.Context, owner string, form models.FeedbackForm) (models.Feedback, error) {
	if m.addFn != nil {
		return m.addFn(ctx, owner, form)
	}
	return models.Feedback{ID: 1, Title: form.Title, Content: form.Content, Username: owner}, nil
}

func (m *mockFeedbackService) Get(ctx context.Context, id int64) (models.Feedback, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Feedback{ID: id}, nil
}

func (m *mockFeedbackService) ListByOwner(ctx context.Context, username string) ([]models.Feedback, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, username)
	}
	return nil, nil
}

func (m *mockFeedbackService) Update(ctx context.Context, id int64, form models.FeedbackForm) (models.Feedback, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, form)
	}
	return models.Feedback{ID: id, Title: form.Title, Content: form.Content}, nil
}

func (m *mockFeedbackService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Mock: store.SessionStore
// ─────────────────────────────────────────────

type mockSessionStore struct {
	createFn           func(ctx context.Context, username string) (models.Session, error)
	getFn              func(ctx context.Context, token string) (models.Session, error)
	deleteFn           func(ctx context.Context, token string) error
	deleteAllForUserFn func(ctx context.Context, username string) error
}

func (m *mockSessionStore) Create(ctx context.Context, username string) (models.Session, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username)
	}
	return models.Session{Token: "fresh-token", Username: username, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	if m.getFn != nil {
		return m.getFn(ctx, token)
	}
	return models.Session{}, errors.New("no getFn configured")
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

func (m *mockSessionStore) PurgeExpired(_ context.Context) int {
	return 0
}

// sessionFor returns a Get function resolving one fixed token to a live
// session for username.
func sessionFor(username, token string) func(ctx context.Context, got string) (models.Session, error) {
	return func(_ context.Context, got string) (models.Session, error) {
		if got == token {
			return models.Session{Token: token, Username: username, ExpiresAt: time.Now().Add(time.Hour)}, nil
		}
		return models.Session{}, errors.New("unexpected token")
	}
}

// ─────────────────────────────────────────────
// Test harness
// ─────────────────────────────────────────────

type testDeps struct {
	auth     *mockAuthService
	users    *mockUserService
	feedback *mockFeedbackService
	sessions *mockSessionStore
}

func newTestDeps() *testDeps {
	return &testDeps{
		auth:     &mockAuthService{},
		users:    &mockUserService{},
		feedback: &mockFeedbackService{},
		sessions: &mockSessionStore{},
	}
}

func newTestHandler(t *testing.T, deps *testDeps) *Handler {
	t.Helper()

	renderer, err := render.NewRenderer(logger.Nop())
	require.NoError(t, err)

	services := &service.Services{
		AuthService:     deps.auth,
		UserService:     deps.users,
		FeedbackService: deps.feedback,
		AppInfoService:  &mockAppInfoService{version: "test"},
		Guard:           service.NewGuard(),
	}

	return NewHandler(services, deps.sessions, renderer, config.App{}, logger.Nop())
}

// postForm builds an urlencoded POST request, optionally with a session
// cookie attached.
func postForm(target string, form url.Values, sessionToken string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionToken})
	}
	return req
}

// getPage builds a GET request, optionally with a session cookie attached.
func getPage(target, sessionToken string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionToken})
	}
	return req
}

// cookieValue extracts a named Set-Cookie value from the recorded response.
func cookieValue(rec *httptest.ResponseRecorder, name string) (string, bool) {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie.Value, true
		}
	}
	return "", false
}
