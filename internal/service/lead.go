package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
)

var phonePattern = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)

// LeadInput holds the raw fields of a public lead submission.
type LeadInput struct {
	Name     string
	Phone    string
	Email    string
	Message  string
	Location string
	DemoDate string
	DemoTime string
	Type     string
	Level    string
}

// Lead manages inbound leads and their CRM status.
type Lead struct {
	store  model.LeadStore
	logger *logger.Logger
	now    func() time.Time
}

func NewLead(store model.LeadStore, logger *logger.Logger) *Lead {
	return &Lead{store: store, logger: logger, now: time.Now}
}

// Create validates and sanitizes the submission and stores it with status new.
func (s *Lead) Create(ctx context.Context, in LeadInput) (model.Lead, error) {
	lead, err := s.validate(in)
	if err != nil {
		return model.Lead{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Lead{}, fmt.Errorf("failed to generate lead id: %w", err)
	}
	lead.ID = id.String()
	lead.Status = model.LeadStatusNew
	lead.CreatedAt = s.now().UTC()

	saved, err := s.store.Create(ctx, lead)
	if err != nil {
		s.logger.Error("Lead service: failed to save lead", "error", err.Error())
		return model.Lead{}, fmt.Errorf("failed to save lead: %w", err)
	}

	s.logger.Info("Lead service: lead saved", "id", saved.ID, "type", string(saved.Type))
	return saved, nil
}

// List returns all leads, newest first.
func (s *Lead) List(ctx context.Context) ([]model.Lead, error) {
	leads, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("Lead service: failed to list leads", "error", err.Error())
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	if leads == nil {
		leads = []model.Lead{}
	}
	return leads, nil
}

// UpdateStatus moves a lead to status on behalf of actor.
func (s *Lead) UpdateStatus(ctx context.Context, id, status, actor string) (model.Lead, error) {
	st := model.LeadStatus(status)
	if !st.Valid() {
		v := &validator{}
		v.add("status", "must be one of new, contacted, converted, rejected")
		return model.Lead{}, v.err()
	}

	lead, err := s.store.UpdateStatus(ctx, id, st, actor, s.now().UTC())
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("Lead service: failed to update lead",
				"id", id,
				"error", err.Error())
		}
		return model.Lead{}, err
	}

	s.logger.Info("Lead service: lead status updated", "id", id, "status", status, "by", actor)
	return lead, nil
}

// Delete removes a lead. Stores that keep leads permanently return model.ErrUnsupported.
func (s *Lead) Delete(ctx context.Context, id, actor string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrNotFound) && !errors.Is(err, model.ErrUnsupported) {
			s.logger.Error("Lead service: failed to delete lead",
				"id", id,
				"error", err.Error())
		}
		return err
	}

	s.logger.Info("Lead service: lead deleted", "id", id, "by", actor)
	return nil
}

func (s *Lead) validate(in LeadInput) (model.Lead, error) {
	v := &validator{}

	name := strings.TrimSpace(in.Name)
	v.length("name", name, 2, 100)

	phone := strings.TrimSpace(in.Phone)
	if !phonePattern.MatchString(phone) {
		v.add("phone", "must be 10 to 15 digits with an optional leading +")
	}

	email := strings.TrimSpace(in.Email)
	if email != "" {
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			v.add("email", "must be a valid email address")
		}
		email = strings.ToLower(email)
	}

	message := strings.TrimSpace(in.Message)
	v.length("message", message, 0, 1000)

	location := strings.TrimSpace(in.Location)
	v.length("location", location, 0, 200)

	demoDate := strings.TrimSpace(in.DemoDate)
	if demoDate != "" {
		if _, err := time.Parse(time.DateOnly, demoDate); err != nil {
			v.add("demoDate", "must be a date in YYYY-MM-DD format")
		}
	}

	demoTime := strings.TrimSpace(in.DemoTime)
	v.length("demoTime", demoTime, 0, 20)

	leadType := model.LeadType(strings.TrimSpace(in.Type))
	if leadType == "" {
		leadType = model.LeadTypeDemoRequest
	}
	if !leadType.Valid() {
		v.add("type", "must be one of demo_request, contact_form")
	}

	level := model.LeadLevel(strings.TrimSpace(in.Level))
	if level != "" && !level.Valid() {
		v.add("level", "must be one of Beginner, Intermediate, Advanced, Individual")
	}

	if err := v.err(); err != nil {
		return model.Lead{}, err
	}

	return model.Lead{
		Name:     sanitize(name),
		Phone:    sanitize(phone),
		Email:    sanitize(email),
		Message:  sanitize(message),
		Location: sanitize(location),
		DemoDate: demoDate,
		DemoTime: sanitize(demoTime),
		Type:     leadType,
		Level:    level,
	}, nil
}
