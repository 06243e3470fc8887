package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
	"github.com/dtroode/chessacademy-server/internal/service"
)

type LeadService interface {
	Create(ctx context.Context, in service.LeadInput) (model.Lead, error)
	List(ctx context.Context) ([]model.Lead, error)
	UpdateStatus(ctx context.Context, id, status, actor string) (model.Lead, error)
	Delete(ctx context.Context, id, actor string) error
}

type Lead struct {
	leadService    LeadService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewLead(leadService LeadService, contextManager model.ContextManager, logger *logger.Logger) *Lead {
	return &Lead{leadService: leadService, contextManager: contextManager, logger: logger}
}

type createLeadRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Location string `json:"location"`
	DemoDate string `json:"demoDate"`
	DemoTime string `json:"demoTime"`
	Type     string `json:"type"`
	Level    string `json:"level"`
}

type createLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateStatusResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Lead    leadResponse `json:"lead"`
}

type leadResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email,omitempty"`
	Type      string     `json:"type,omitempty"`
	Level     string     `json:"level,omitempty"`
	Message   string     `json:"message,omitempty"`
	Location  string     `json:"location,omitempty"`
	DemoDate  string     `json:"demoDate,omitempty"`
	DemoTime  string     `json:"demoTime,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty"`
}

func toLeadResponse(l model.Lead) leadResponse {
	return leadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Phone:     l.Phone,
		Email:     l.Email,
		Type:      string(l.Type),
		Level:     string(l.Level),
		Message:   l.Message,
		Location:  l.Location,
		DemoDate:  l.DemoDate,
		DemoTime:  l.DemoTime,
		Timestamp: l.CreatedAt,
		Status:    string(l.Status),
		UpdatedAt: l.UpdatedAt,
		UpdatedBy: l.UpdatedBy,
	}
}

// Create handles the public POST /api/leads.
func (h *Lead) Create(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead, err := h.leadService.Create(r.Context(), service.LeadInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Message:  req.Message,
		Location: req.Location,
		DemoDate: req.DemoDate,
		DemoTime: req.DemoTime,
		Type:     req.Type,
		Level:    req.Level,
	})
	if err != nil {
		handleError(w, h.logger, "create lead", err)
		return
	}

	writeJSON(w, http.StatusCreated, createLeadResponse{
		Success: true,
		Message: "Lead saved successfully",
		ID:      lead.ID,
	})
}

// List handles GET /api/leads.
func (h *Lead) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.List(r.Context())
	if err != nil {
		handleError(w, h.logger, "list leads", err)
		return
	}

	out := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	writeJSON(w, http.StatusOK, map[string][]leadResponse{"leads": out})
}

// UpdateStatus handles PATCH /api/leads/{id}.
func (h *Lead) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	actor, _ := h.contextManager.GetUsernameFromContext(r.Context())
	lead, err := h.leadService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status, actor)
	if errors.Is(err, model.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		handleError(w, h.logger, "update lead", err)
		return
	}

	writeJSON(w, http.StatusOK, updateStatusResponse{
		Success: true,
		Message: "Lead updated successfully",
		Lead:    toLeadResponse(lead),
	})
}

// Delete handles DELETE /api/leads/{id}.
func (h *Lead) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := h.contextManager.GetUsernameFromContext(r.Context())
	err := h.leadService.Delete(r.Context(), chi.URLParam(r, "id"), actor)
	if errors.Is(err, model.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		handleError(w, h.logger, "delete lead", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Lead deleted successfully"})
}
