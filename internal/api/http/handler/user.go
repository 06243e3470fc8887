package handler

import (
	"net/http"
	"time"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
)

type User struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUser(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{authService: authService, contextManager: contextManager, logger: logger}
}

// userResponse carries the username twice: the admin panel reads "name".
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type addUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// List handles GET /api/users. Password hashes never leave the server.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		handleError(w, h.logger, "list users", err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{ID: u.ID, Name: u.Username, Username: u.Username, CreatedAt: u.CreatedAt})
	}
	writeJSON(w, http.StatusOK, map[string][]userResponse{"users": out})
}

// Add handles POST /api/users. The older admin panel sends the username as "name".
func (h *User) Add(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	username := req.Username
	if username == "" {
		username = req.Name
	}

	if _, err := h.authService.AddUser(r.Context(), username, req.Password); err != nil {
		handleError(w, h.logger, "add user", err)
		return
	}

	actor, _ := h.contextManager.GetUsernameFromContext(r.Context())
	h.logger.Info("User handler: admin added", "username", username, "by", actor)

	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "User added successfully"})
}
