package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleLogin(t *testing.T) {
	handler := NewHandler(newTestAuthService(t), false)

	w := httptest.NewRecorder()
	handler.HandleLogin(w, loginRequest(`{"username": "alice", "password": "correct horse"}`))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"message": "Login successful"}`, w.Body.String())

	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestHandleLoginBadCredentials(t *testing.T) {
	handler := NewHandler(newTestAuthService(t), false)

	w := httptest.NewRecorder()
	handler.HandleLogin(w, loginRequest(`{"username": "alice", "password": "wrong"}`))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.JSONEq(t, `{"message": "Invalid username or password"}`, w.Body.String())
	assert.Empty(t, res.Cookies())
}

func TestHandleLoginMissingFields(t *testing.T) {
	handler := NewHandler(newTestAuthService(t), false)

	w := httptest.NewRecorder()
	handler.HandleLogin(w, loginRequest(`{"username": "alice"}`))

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleStatus(t *testing.T) {
	service := newTestAuthService(t)
	handler := NewHandler(service, false)

	// logged out
	w := httptest.NewRecorder()
	handler.HandleStatus(w, httptest.NewRequest(http.MethodGet, "/auth/status", nil))
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.JSONEq(t, `{"isLoggedIn": false}`, w.Body.String())

	// logged in
	cookieValue, err := service.Login("alice", "correct horse")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	handler.HandleStatus(w, requestWithSessionCookie(cookieValue))
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.JSONEq(t, `{"isLoggedIn": true}`, w.Body.String())
}

func TestHandleLogout(t *testing.T) {
	service := newTestAuthService(t)
	handler := NewHandler(service, false)

	cookieValue, err := service.Login("alice", "correct horse")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookieValue})
	w := httptest.NewRecorder()
	handler.HandleLogout(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"message": "Logout successful"}`, w.Body.String())

	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	// the session itself is gone, not just the cookie
	_, err = service.CurrentUser(requestWithSessionCookie(cookieValue))
	assert.Error(t, err)
}

func TestHandleLogoutWithoutSession(t *testing.T) {
	handler := NewHandler(newTestAuthService(t), false)

	w := httptest.NewRecorder()
	handler.HandleLogout(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.JSONEq(t, `{"message": "Logout successful"}`, w.Body.String())
}
