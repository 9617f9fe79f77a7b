package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *SessionCookieCodec {
	t.Setenv("SESSION_SECRET", "test-secret")
	return NewSessionCookieCodec()
}

func TestSessionCookieRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	cookieValue, err := codec.Encode("abc123", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEqual(t, "abc123", cookieValue, "cookie must not carry the raw session id")

	sessionID, err := codec.Decode(cookieValue)
	require.NoError(t, err)
	assert.Equal(t, "abc123", sessionID)
}

func TestSessionCookieTampered(t *testing.T) {
	codec := newTestCodec(t)

	cookieValue, err := codec.Encode("abc123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = codec.Decode(cookieValue + "x")
	assert.ErrorIs(t, err, ErrInvalidSessionCookie)
}

func TestSessionCookieGarbage(t *testing.T) {
	codec := newTestCodec(t)

	_, err := codec.Decode("not-a-signed-cookie")
	assert.ErrorIs(t, err, ErrInvalidSessionCookie)
}

func TestSessionCookieExpired(t *testing.T) {
	codec := newTestCodec(t)

	cookieValue, err := codec.Encode("abc123", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = codec.Decode(cookieValue)
	assert.ErrorIs(t, err, ErrExpiredSessionToken)
}
