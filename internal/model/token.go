package model

import "time"

// TokenManager generates and validates access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(username string) (string, error)
	GenerateRefreshToken(username string) (token string, expiresAt time.Time, err error)
	ParseAccessToken(token string) (string, error)
	ParseRefreshToken(token string) (string, error)
	AccessTTL() time.Duration
}
