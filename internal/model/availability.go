package model

import "context"

// AvailabilityStore persists weekly coaching schedules per admin.
type AvailabilityStore interface {
	Get(ctx context.Context, username string) (Schedule, error)
	// Replace discards every stored slot of username and stores the
	// non-unset slots of schedule. It is all-or-nothing.
	Replace(ctx context.Context, username string, schedule Schedule) error
}

// SlotState is the tri-state value of one availability cell.
type SlotState string

const (
	SlotUnset       SlotState = "unset"
	SlotAvailable   SlotState = "available"
	SlotUnavailable SlotState = "unavailable"
)

func (s SlotState) Valid() bool {
	return s == SlotUnset || s == SlotAvailable || s == SlotUnavailable
}

// Schedule maps day of week to time slot to state.
type Schedule map[string]map[string]SlotState

// Compact returns a copy of s without unset cells and empty days.
func (s Schedule) Compact() Schedule {
	out := make(Schedule, len(s))
	for day, slots := range s {
		for slot, state := range slots {
			if state == SlotUnset || state == "" {
				continue
			}
			if out[day] == nil {
				out[day] = make(map[string]SlotState)
			}
			out[day][slot] = state
		}
	}
	return out
}
