package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/chessacademy-server/internal/model"
)

var _ model.AvailabilityStore = (*AvailabilityRepository)(nil)

type AvailabilityRepository struct {
	db         *Connection
	transactor *Transactor
}

func NewAvailabilityRepository(db *Connection, transactor *Transactor) *AvailabilityRepository {
	return &AvailabilityRepository{db: db, transactor: transactor}
}

func (r *AvailabilityRepository) Get(ctx context.Context, username string) (model.Schedule, error) {
	query := `SELECT day_of_week, time_slot, status FROM availability
			  WHERE username = $1 ORDER BY day_of_week, time_slot`

	rows, err := getQuerier(ctx, r.db.Pool).Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}
	defer rows.Close()

	schedule := make(model.Schedule)
	for rows.Next() {
		var day, slot string
		var state model.SlotState
		if err := rows.Scan(&day, &slot, &state); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		if schedule[day] == nil {
			schedule[day] = make(map[string]model.SlotState)
		}
		schedule[day][slot] = state
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate availability: %w", err)
	}
	return schedule, nil
}

// Replace swaps the whole schedule in one transaction. A transaction-scoped
// advisory lock on the username serializes concurrent replaces of one schedule.
func (r *AvailabilityRepository) Replace(ctx context.Context, username string, schedule model.Schedule) error {
	return r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		q := getQuerier(ctx, r.db.Pool)

		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "availability:"+username); err != nil {
			return fmt.Errorf("failed to lock availability: %w", err)
		}
		if _, err := q.Exec(ctx, `DELETE FROM availability WHERE username = $1`, username); err != nil {
			return fmt.Errorf("failed to clear availability: %w", err)
		}

		const insert = `INSERT INTO availability (username, day_of_week, time_slot, status)
			VALUES ($1, $2, $3, $4)`
		for day, slots := range schedule.Compact() {
			for slot, state := range slots {
				if _, err := q.Exec(ctx, insert, username, day, slot, string(state)); err != nil {
					return fmt.Errorf("failed to insert availability: %w", err)
				}
			}
		}
		return nil
	})
}
