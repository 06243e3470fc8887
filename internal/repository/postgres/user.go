package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/chessacademy-server/internal/model"
)

const uniqueViolation = "23505"

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	query := `SELECT id, username, password_hash, created_at
			  FROM users WHERE username = $1`

	err := getQuerier(ctx, r.db.Pool).QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, password_hash, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, username, password_hash, created_at`

	var saved model.User
	err := getQuerier(ctx, r.db.Pool).QueryRow(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt,
	).Scan(&saved.ID, &saved.Username, &saved.PasswordHash, &saved.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrConflict
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users ORDER BY created_at`

	rows, err := getQuerier(ctx, r.db.Pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
