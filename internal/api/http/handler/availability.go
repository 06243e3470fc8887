package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
)

type AvailabilityService interface {
	Get(ctx context.Context, username string) (model.Schedule, error)
	Save(ctx context.Context, username string, schedule model.Schedule) error
}

type Availability struct {
	availabilityService AvailabilityService
	contextManager      model.ContextManager
	logger              *logger.Logger
}

func NewAvailability(availabilityService AvailabilityService, contextManager model.ContextManager, logger *logger.Logger) *Availability {
	return &Availability{
		availabilityService: availabilityService,
		contextManager:      contextManager,
		logger:              logger,
	}
}

type availabilityBody struct {
	Availability model.Schedule `json:"availability"`
}

// Get handles GET /api/availability/{username}.
func (h *Availability) Get(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.availabilityService.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleError(w, h.logger, "get availability", err)
		return
	}
	if schedule == nil {
		schedule = model.Schedule{}
	}
	writeJSON(w, http.StatusOK, availabilityBody{Availability: schedule})
}

// Save handles POST /api/availability and replaces the caller's own schedule.
func (h *Availability) Save(w http.ResponseWriter, r *http.Request) {
	username, ok := h.contextManager.GetUsernameFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req availabilityBody
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.availabilityService.Save(r.Context(), username, req.Availability); err != nil {
		handleError(w, h.logger, "save availability", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Availability saved successfully"})
}
