package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
)

// TokenService issues access/refresh tokens and keeps refresh tokens
// revocable. A refresh token is honored only while it is both
// cryptographically valid and present in the store.
type TokenService struct {
	manager model.TokenManager
	store   model.RefreshTokenStore
	logger  *logger.Logger
	now     func() time.Time
}

func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, logger: logger, now: time.Now}
}

// AccessTTL returns the lifetime of issued access tokens.
func (s *TokenService) AccessTTL() time.Duration {
	return s.manager.AccessTTL()
}

// Issue creates an access/refresh pair and persists the refresh token.
func (s *TokenService) Issue(ctx context.Context, username string) (accessToken string, refreshToken string, err error) {
	access, err := s.manager.GenerateAccessToken(username)
	if err != nil {
		return "", "", fmt.Errorf("issue access: %w", err)
	}

	refresh, expiresAt, err := s.manager.GenerateRefreshToken(username)
	if err != nil {
		return "", "", fmt.Errorf("issue refresh: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token id: %w", err)
	}

	rt := model.RefreshToken{
		ID:        id.String(),
		Token:     refresh,
		Username:  username,
		CreatedAt: s.now(),
		ExpiresAt: expiresAt,
	}
	if err := s.store.Create(ctx, rt); err != nil {
		return "", "", fmt.Errorf("persist refresh: %w", err)
	}

	return access, refresh, nil
}

// Refresh mints a new access token. The refresh token itself is not rotated.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (string, error) {
	if presentedRefresh == "" {
		return "", model.ErrMissingToken
	}

	stored, err := s.store.GetByToken(ctx, presentedRefresh)
	if errors.Is(err, model.ErrNotFound) {
		return "", fmt.Errorf("%w: refresh token is not active", model.ErrInvalidToken)
	}
	if err != nil {
		return "", fmt.Errorf("get refresh token: %w", err)
	}

	if stored.Expired(s.now()) {
		if err := s.store.DeleteByToken(ctx, presentedRefresh); err != nil {
			s.logger.Warn("Token service: failed to drop expired refresh token",
				"username", stored.Username,
				"error", err.Error())
		}
		return "", model.ErrTokenExpired
	}

	username, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return "", err
	}
	if username != stored.Username {
		return "", fmt.Errorf("%w: refresh token owner mismatch", model.ErrInvalidToken)
	}

	access, err := s.manager.GenerateAccessToken(username)
	if err != nil {
		return "", fmt.Errorf("issue new access: %w", err)
	}

	return access, nil
}

// Logout removes the refresh token from the store. Unknown tokens are ignored.
func (s *TokenService) Logout(ctx context.Context, presentedRefresh string) error {
	if presentedRefresh == "" {
		return nil
	}
	err := s.store.DeleteByToken(ctx, presentedRefresh)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

// CleanupExpired deletes all stored refresh tokens past their expiry.
func (s *TokenService) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh tokens: %w", err)
	}
	if n > 0 {
		s.logger.Info("Token service: expired refresh tokens removed", "count", n)
	}
	return n, nil
}

// GetUsername validates an access token. Access tokens are stateless.
func (s *TokenService) GetUsername(_ context.Context, accessToken string) (string, error) {
	if accessToken == "" {
		return "", model.ErrMissingToken
	}
	return s.manager.ParseAccessToken(accessToken)
}
