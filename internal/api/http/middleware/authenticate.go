package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/chessacademy-server/internal/api/http/handler"
	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
)

// TokenService resolves the admin username from an access token.
type TokenService interface {
	GetUsername(ctx context.Context, token string) (string, error)
}

// Authenticate validates bearer tokens and injects the username into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a token with 401 and requests with an
// invalid or expired token with 403.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			handler.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		username, err := m.tokenService.GetUsername(r.Context(), token)
		if err != nil || username == "" {
			m.logger.Debug("Authenticate: token rejected",
				"path", r.URL.Path,
				"error", errString(err))
			handler.WriteError(w, http.StatusForbidden, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUsernameToContext(r.Context(), username)))
	})
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func errString(err error) string {
	if err == nil {
		return "empty username"
	}
	return err.Error()
}
