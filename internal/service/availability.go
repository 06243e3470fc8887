package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
)

const maxSlotKeyLen = 20

// Availability manages the weekly coaching schedule of each admin.
type Availability struct {
	store  model.AvailabilityStore
	logger *logger.Logger
}

func NewAvailability(store model.AvailabilityStore, logger *logger.Logger) *Availability {
	return &Availability{store: store, logger: logger}
}

// Get returns the stored schedule of username. Unknown users get an empty schedule.
func (s *Availability) Get(ctx context.Context, username string) (model.Schedule, error) {
	schedule, err := s.store.Get(ctx, username)
	if err != nil {
		s.logger.Error("Availability service: failed to get schedule",
			"username", username,
			"error", err.Error())
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}
	if schedule == nil {
		schedule = model.Schedule{}
	}
	return schedule, nil
}

// Save replaces the whole schedule of username.
func (s *Availability) Save(ctx context.Context, username string, schedule model.Schedule) error {
	v := &validator{}
	for day, slots := range schedule {
		if strings.TrimSpace(day) == "" || len(day) > maxSlotKeyLen {
			v.add("availability", "invalid day %q", day)
			continue
		}
		for slot, state := range slots {
			if strings.TrimSpace(slot) == "" || len(slot) > maxSlotKeyLen {
				v.add("availability."+day, "invalid time slot %q", slot)
				continue
			}
			if !state.Valid() {
				v.add("availability."+day+"."+slot, "must be one of unset, available, unavailable")
			}
		}
	}
	if err := v.err(); err != nil {
		return err
	}

	if err := s.store.Replace(ctx, username, schedule.Compact()); err != nil {
		s.logger.Error("Availability service: failed to save schedule",
			"username", username,
			"error", err.Error())
		return fmt.Errorf("failed to save availability: %w", err)
	}

	s.logger.Info("Availability service: schedule saved", "username", username)
	return nil
}
