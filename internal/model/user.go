package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for admin credentials.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	List(ctx context.Context) ([]User, error)
}

// User represents an admin account with its bcrypt password hash.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
