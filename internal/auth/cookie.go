package auth

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidSessionCookie = errors.New("session cookie is invalid")

// SessionCookieName is the cookie carrying the signed session id.
const SessionCookieName = "session_token"

type SessionCookieCodecInterface interface {
	Encode(sessionToken string, expiresAt time.Time) (string, error)
	Decode(cookieValue string) (string, error)
}

type sessionCookieClaims struct {
	SessionID string `json:"sid"`
	jwt.StandardClaims
}

// SessionCookieCodec signs the server-side session id before it goes out in a
// cookie, so a tampered cookie fails signature verification before any store
// lookup happens.
type SessionCookieCodec struct {
	secret string
}

func NewSessionCookieCodec() *SessionCookieCodec {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatalf("SESSION_SECRET is not set in .env file")
	}

	return &SessionCookieCodec{
		secret: secret,
	}
}

func (c *SessionCookieCodec) Encode(sessionToken string, expiresAt time.Time) (string, error) {
	claims := &sessionCookieClaims{
		SessionID: sessionToken,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.secret))
}

func (c *SessionCookieCodec) Decode(cookieValue string) (string, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &sessionCookieClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(c.secret), nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			if validationErr.Errors&jwt.ValidationErrorExpired != 0 {
				return "", ErrExpiredSessionToken
			}
		}
		return "", ErrInvalidSessionCookie
	}

	claims, ok := token.Claims.(*sessionCookieClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidSessionCookie
	}

	return claims.SessionID, nil
}
