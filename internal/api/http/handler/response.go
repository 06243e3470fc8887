// Package handler implements the JSON endpoints of the admin API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
	"github.com/dtroode/chessacademy-server/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors []service.FieldError `json:"errors"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError writes a bare {"error": msg} body.
func WriteError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads the request body into dst. An empty body leaves dst as is.
// It reports false after writing the error response.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeJSON(w, http.StatusBadRequest, validationResponse{Errors: []service.FieldError{
			{Field: "body", Message: "must be a valid JSON object"},
		}})
		return false
	}
	return true
}

// handleError maps service and store errors to responses. Internal failures
// are logged with detail and answered with a generic message.
func handleError(w http.ResponseWriter, log *logger.Logger, op string, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, validationResponse{Errors: vErr.Fields})
	case errors.Is(err, model.ErrInvalidCredentials):
		WriteError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, model.ErrMissingToken):
		WriteError(w, http.StatusUnauthorized, "Access token required")
	case errors.Is(err, model.ErrInvalidToken), errors.Is(err, model.ErrTokenExpired):
		WriteError(w, http.StatusForbidden, "Invalid or expired token")
	case errors.Is(err, model.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, model.ErrConflict):
		WriteError(w, http.StatusConflict, "User already exists")
	case errors.Is(err, model.ErrUnsupported):
		WriteError(w, http.StatusMethodNotAllowed, "Operation not supported")
	default:
		log.Error("Handler: request failed", "op", op, "error", err.Error())
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
