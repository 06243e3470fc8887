package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/chessacademy-server/internal/model"
)

func newTestJWT() *JWT {
	return NewJWT("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := newTestJWT()

	access, err := j.GenerateAccessToken("mpandit")
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, "mpandit", got)
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := newTestJWT()
	before := time.Now()

	refresh, expiresAt, err := j.GenerateRefreshToken("mpandit")
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(7*24*time.Hour), expiresAt, 2*time.Second)

	got, err := j.ParseRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, "mpandit", got)
}

func TestJWT_RefreshTokens_AreUnique(t *testing.T) {
	j := newTestJWT()

	a, _, err := j.GenerateRefreshToken("mpandit")
	require.NoError(t, err)
	b, _, err := j.GenerateRefreshToken("mpandit")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	// Same secret on both sides so only the type claim can reject.
	j := NewJWT("secret", "secret", 0, 0)

	access, err := j.GenerateAccessToken("mpandit")
	require.NoError(t, err)
	_, err = j.ParseRefreshToken(access)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	refresh, _, err := j.GenerateRefreshToken("mpandit")
	require.NoError(t, err)
	_, err = j.ParseAccessToken(refresh)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := newTestJWT()
	other := NewJWT("other", "other", 0, 0)

	access, err := other.GenerateAccessToken("mpandit")
	require.NoError(t, err)

	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	j := newTestJWT()

	access, err := j.GenerateAccessToken("mpandit")
	require.NoError(t, err)
	refresh, _, err := j.GenerateRefreshToken("mpandit")
	require.NoError(t, err)

	j.now = func() time.Time { return time.Now().Add(16 * time.Minute) }
	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrTokenExpired)

	_, err = j.ParseRefreshToken(refresh)
	require.NoError(t, err)

	j.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }
	_, err = j.ParseRefreshToken(refresh)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_RejectsUnsignedAndGarbage(t *testing.T) {
	j := newTestJWT()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Username:         "mpandit",
		TokenType:        typeAccess,
	})
	s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.ParseAccessToken(s)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = j.ParseAccessToken("not-a-jwt")
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_RequiresExpiry(t *testing.T) {
	j := newTestJWT()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Username: "mpandit", TokenType: typeAccess})
	s, err := tok.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = j.ParseAccessToken(s)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestNewJWT_DefaultTTLs(t *testing.T) {
	j := NewJWT("a", "r", 0, -1)
	assert.Equal(t, 15*time.Minute, j.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, j.refreshTTL)
}
