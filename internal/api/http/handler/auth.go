package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
	"github.com/dtroode/chessacademy-server/internal/service"
)

// AuthService authenticates admins and manages their accounts.
type AuthService interface {
	Login(ctx context.Context, username, password string) (service.Session, error)
	AddUser(ctx context.Context, username, password string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// SessionService refreshes and revokes refresh tokens.
type SessionService interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	AccessTTL() time.Duration
}

type Auth struct {
	authService    AuthService
	sessionService SessionService
	logger         *logger.Logger
}

func NewAuth(authService AuthService, sessionService SessionService, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		sessionService: sessionService,
		logger:         logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   string `json:"expiresIn"`
}

// Login handles POST /api/auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			h.logger.Warn("Auth handler: login rejected", "username", req.Username)
		}
		handleError(w, h.logger, "login", err)
		return
	}

	h.logger.Info("Auth handler: login succeeded", "username", req.Username)

	writeJSON(w, http.StatusOK, loginResponse{
		Success:      true,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    formatTTL(session.ExpiresIn),
	})
}

// Refresh handles POST /api/auth/refresh.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	access, err := h.sessionService.Refresh(r.Context(), req.RefreshToken)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrMissingToken):
		WriteError(w, http.StatusUnauthorized, "Refresh token required")
		return
	case errors.Is(err, model.ErrInvalidToken), errors.Is(err, model.ErrTokenExpired):
		h.logger.Debug("Auth handler: refresh rejected", "error", err.Error())
		WriteError(w, http.StatusForbidden, "Invalid or expired refresh token")
		return
	default:
		handleError(w, h.logger, "refresh", err)
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{
		Success:     true,
		AccessToken: access,
		ExpiresIn:   formatTTL(h.sessionService.AccessTTL()),
	})
}

// Logout handles POST /api/auth/logout. A missing or unknown refresh token
// still succeeds.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.sessionService.Logout(r.Context(), req.RefreshToken); err != nil {
		handleError(w, h.logger, "logout", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Logged out successfully"})
}

// formatTTL renders d the way clients expect it, e.g. "15m" or "7d".
func formatTTL(d time.Duration) string {
	switch {
	case d <= 0:
		return "0s"
	case d%(24*time.Hour) == 0:
		return fmt.Sprintf("%dd", d/(24*time.Hour))
	case d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	default:
		return fmt.Sprintf("%ds", d/time.Second)
	}
}
