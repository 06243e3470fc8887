package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/chessacademy-server/internal/model"
)

// Claims represents JWT claims with token type and username.
type Claims struct {
	jwt.RegisteredClaims
	Username  string `json:"username"`
	TokenType string `json:"type"`
}

// JWT implements TokenManager backed by symmetric HMAC. Access and refresh
// tokens are signed with different secrets.
type JWT struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// NewJWT creates a token manager. Non-positive TTLs fall back to 15 minutes
// for access tokens and 7 days for refresh tokens.
func NewJWT(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWT {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &JWT{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// AccessTTL returns the lifetime of issued access tokens.
func (j *JWT) AccessTTL() time.Duration {
	return j.accessTTL
}

// GenerateAccessToken creates a short-lived access token.
func (j *JWT) GenerateAccessToken(username string) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		Username:  username,
		TokenType: typeAccess,
	})

	tokenString, err := token.SignedString(j.accessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// GenerateRefreshToken creates a long-lived refresh token and returns its expiry.
func (j *JWT) GenerateRefreshToken(username string) (string, time.Time, error) {
	now := j.now()
	expiresAt := now.Add(j.refreshTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username:  username,
		TokenType: typeRefresh,
	})

	tokenString, err := token.SignedString(j.refreshSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	// The exp claim is truncated to seconds.
	return tokenString, expiresAt.Truncate(time.Second), nil
}

// ParseAccessToken validates an access token and returns its username.
func (j *JWT) ParseAccessToken(tokenString string) (string, error) {
	return j.parse(tokenString, j.accessSecret, typeAccess)
}

// ParseRefreshToken validates a refresh token and returns its username.
func (j *JWT) ParseRefreshToken(tokenString string) (string, error) {
	return j.parse(tokenString, j.refreshSecret, typeRefresh)
}

func (j *JWT) parse(tokenString string, secret []byte, wantType string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
			}
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %s token", model.ErrTokenExpired, wantType)
		}
		return "", fmt.Errorf("%w: failed to parse %s token: %v", model.ErrInvalidToken, wantType, err)
	}
	if claims.TokenType != wantType {
		return "", fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidToken, claims.TokenType)
	}
	if claims.Username == "" {
		return "", fmt.Errorf("%w: empty username", model.ErrInvalidToken)
	}
	return claims.Username, nil
}
