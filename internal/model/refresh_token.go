package model

import (
	"context"
	"time"
)

// RefreshTokenStore persists issued refresh tokens so they can be revoked.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type RefreshToken struct {
	ID        string
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the stored expiry has passed at now.
func (t RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
