package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/chessacademy-server/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

// RefreshTokenRepository keeps every issued refresh token until logout or expiry.
// There is no retention cap in the relational store.
type RefreshTokenRepository struct {
	db *Connection
}

func NewRefreshTokenRepository(db *Connection) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	const query = `
        INSERT INTO refresh_tokens (id, token, username, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := getQuerier(ctx, r.db.Pool).Exec(ctx, query,
		token.ID, token.Token, token.Username, token.CreatedAt, token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	const query = `
        SELECT id, token, username, created_at, expires_at
        FROM refresh_tokens WHERE token = $1
    `
	var rt model.RefreshToken
	err := getQuerier(ctx, r.db.Pool).QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.Token, &rt.Username, &rt.CreatedAt, &rt.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return rt, nil
}

func (r *RefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	const query = `DELETE FROM refresh_tokens WHERE token = $1`
	if _, err := getQuerier(ctx, r.db.Pool).Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM refresh_tokens WHERE expires_at <= $1`
	tag, err := getQuerier(ctx, r.db.Pool).Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
