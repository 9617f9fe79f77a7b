package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	users map[string]*user.User // keyed by username
}

func (s *stubUserService) Register(username, email, password string) (*user.User, error) {
	return nil, user.ErrInternalError
}

func (s *stubUserService) Authenticate(username, password string) (*user.User, error) {
	u, ok := s.users[username]
	if !ok || password != "correct horse" {
		return nil, user.ErrInvalidCredentials
	}
	return u, nil
}

func (s *stubUserService) GetUserByID(userID string) (*user.User, error) {
	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func newTestAuthService(t *testing.T) Service {
	t.Setenv("SESSION_SECRET", "test-secret")
	users := &stubUserService{users: map[string]*user.User{
		"alice": {ID: "user-1", Username: "alice"},
	}}
	return NewAuthService(users, NewSessionManager(), NewSessionCookieCodec())
}

func requestWithSessionCookie(cookieValue string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/expenses/view", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookieValue})
	return req
}

func TestLoginAndCurrentUser(t *testing.T) {
	service := newTestAuthService(t)

	cookieValue, err := service.Login("alice", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, cookieValue)

	userID, err := service.CurrentUser(requestWithSessionCookie(cookieValue))
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestLoginBadPassword(t *testing.T) {
	service := newTestAuthService(t)

	_, err := service.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	service := newTestAuthService(t)

	_, err := service.Login("mallory", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUserWithoutCookie(t *testing.T) {
	service := newTestAuthService(t)

	req := httptest.NewRequest(http.MethodGet, "/expenses/view", nil)
	_, err := service.CurrentUser(req)
	assert.Error(t, err)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	service := newTestAuthService(t)

	cookieValue, err := service.Login("alice", "correct horse")
	require.NoError(t, err)

	service.Logout(cookieValue)

	_, err = service.CurrentUser(requestWithSessionCookie(cookieValue))
	assert.Error(t, err)
}

func TestLogoutWithGarbageCookieIsHarmless(t *testing.T) {
	service := newTestAuthService(t)
	service.Logout("not-a-cookie")
}

func TestSessionAuthMiddleware(t *testing.T) {
	service := newTestAuthService(t)

	cookieValue, err := service.Login("alice", "correct horse")
	require.NoError(t, err)

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value("userID").(string)
		w.WriteHeader(http.StatusOK)
	})

	handler := service.SessionAuthMiddleware()(next)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestWithSessionCookie(cookieValue))
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "user-1", seenUserID)
}

func TestSessionAuthMiddlewareUnauthenticated(t *testing.T) {
	service := newTestAuthService(t)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})
	handler := service.SessionAuthMiddleware()(next)

	// no cookie at all
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/expenses/view", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	assert.False(t, nextCalled, "handler must not run without a session")

	// forged cookie
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestWithSessionCookie("forged"))
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	assert.False(t, nextCalled)
	assert.JSONEq(t, `{"message": "User not authenticated"}`, w.Body.String())
}

func TestExpiredSessionIsUnauthenticated(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	users := &stubUserService{users: map[string]*user.User{
		"alice": {ID: "user-1", Username: "alice"},
	}}
	sessionManager := NewSessionManager()
	codec := NewSessionCookieCodec()
	service := NewAuthService(users, sessionManager, codec)

	token, err := sessionManager.GenerateSessionToken("user-1", -time.Minute)
	require.NoError(t, err)
	cookieValue, err := codec.Encode(token, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = service.CurrentUser(requestWithSessionCookie(cookieValue))
	assert.ErrorIs(t, err, ErrExpiredSessionToken)
}
