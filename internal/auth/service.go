package auth

import (
	"errors"
	"net/http"

	"github.com/sebuszqo/ExpenseTracker/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Service interface {
	Login(username, password string) (string, error)
	Logout(cookieValue string)
	CurrentUser(r *http.Request) (string, error)
	SessionAuthMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService    user.Service
	sessionManager SessionManagerInterface
	cookieCodec    SessionCookieCodecInterface
}

func NewAuthService(userService user.Service, sessionManager SessionManagerInterface, cookieCodec SessionCookieCodecInterface) Service {
	return &service{
		userService:    userService,
		sessionManager: sessionManager,
		cookieCodec:    cookieCodec,
	}
}

// Login checks credentials and opens a session. The returned value is the
// signed cookie payload, not the raw session id.
func (s *service) Login(username, password string) (string, error) {
	existingUser, err := s.userService.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return "", ErrInvalidCredentials
		}
		return "", ErrInternalError
	}

	token, err := s.sessionManager.GenerateSessionToken(existingUser.ID, DefaultSessionTokenDuration)
	if err != nil {
		return "", ErrInternalError
	}

	cookieValue, err := s.cookieCodec.Encode(token, sessionExpiry())
	if err != nil {
		s.sessionManager.DeleteSessionToken(token)
		return "", ErrInternalError
	}

	return cookieValue, nil
}

// Logout drops the server-side session. An unknown or garbled cookie value is
// not an error, there is simply nothing to delete.
func (s *service) Logout(cookieValue string) {
	token, err := s.cookieCodec.Decode(cookieValue)
	if err != nil {
		return
	}
	s.sessionManager.DeleteSessionToken(token)
}

// CurrentUser resolves the owning user of the request's session, or an error
// when the caller is not authenticated.
func (s *service) CurrentUser(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrInvalidSessionToken
	}

	token, err := s.cookieCodec.Decode(cookie.Value)
	if err != nil {
		return "", ErrInvalidSessionToken
	}

	userID, err := s.sessionManager.VerifySessionToken(token)
	if err != nil {
		return "", err
	}

	if _, err := s.userService.GetUserByID(userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", ErrInternalError
	}

	return userID, nil
}
