package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
)

// BcryptCost is the work factor for stored password hashes.
const BcryptCost = 10

// Session is the token pair returned by a successful login.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// Auth authenticates admins and manages their accounts.
type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(userStore model.UserStore, tokenService *TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

// Login checks the password against the stored bcrypt hash and issues a
// token pair. Expired refresh tokens are cleaned up afterwards.
func (a *Auth) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)

	v := &validator{}
	v.length("username", username, 3, 50)
	v.length("password", password, 6, 100)
	if err := v.err(); err != nil {
		return Session{}, err
	}

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown user", "username", username)
		return Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user",
			"username", username,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: password mismatch", "username", username)
		return Session{}, model.ErrInvalidCredentials
	}

	access, refresh, err := a.tokenService.Issue(ctx, user.Username)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"username", username,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	if _, err := a.tokenService.CleanupExpired(ctx); err != nil {
		a.logger.Warn("Auth service: refresh token cleanup failed", "error", err.Error())
	}

	a.logger.Info("Auth service: login succeeded", "username", username)

	return Session{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    a.tokenService.AccessTTL(),
	}, nil
}

// AddUser creates a new admin. Duplicate usernames return model.ErrConflict.
func (a *Auth) AddUser(ctx context.Context, username, password string) (model.User, error) {
	username = strings.TrimSpace(username)

	v := &validator{}
	v.length("username", username, 3, 100)
	v.length("password", password, 8, 100)
	if err := v.err(); err != nil {
		return model.User{}, err
	}

	user, err := a.createUser(ctx, username, password)
	if err != nil {
		if !errors.Is(err, model.ErrConflict) {
			a.logger.Error("Auth service: failed to create user",
				"username", username,
				"error", err.Error())
		}
		return model.User{}, err
	}

	a.logger.Info("Auth service: user created", "username", username)
	return user, nil
}

// ListUsers returns all admins without their password hashes.
func (a *Auth) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := a.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// SeedAdmins creates the given admins when the credential store is empty.
// It returns the number of accounts created.
func (a *Auth) SeedAdmins(ctx context.Context, usernames, passwords []string) (int, error) {
	if len(usernames) != len(passwords) {
		return 0, fmt.Errorf("seed: %d usernames for %d passwords", len(usernames), len(passwords))
	}

	existing, err := a.userStore.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for i, username := range usernames {
		if _, err := a.createUser(ctx, strings.TrimSpace(username), passwords[i]); err != nil {
			if errors.Is(err, model.ErrConflict) {
				continue
			}
			return created, fmt.Errorf("failed to seed user %s: %w", username, err)
		}
		created++
	}

	a.logger.Info("Auth service: admin users seeded", "count", created)
	return created, nil
}

func (a *Auth) createUser(ctx context.Context, username, password string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	return a.userStore.Create(ctx, model.User{
		ID:           id.String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    a.now(),
	})
}
