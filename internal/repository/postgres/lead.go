package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/chessacademy-server/internal/model"
)

var _ model.LeadStore = (*LeadRepository)(nil)

// LeadRepository stores leads in plain columns. Leads are never removed here;
// the status column is the only lifecycle.
type LeadRepository struct {
	db *Connection
}

func NewLeadRepository(db *Connection) *LeadRepository {
	return &LeadRepository{db: db}
}

const leadColumns = `id, name, phone, COALESCE(email, ''), COALESCE(message, ''), COALESCE(location, ''),
	COALESCE(to_char(demo_date, 'YYYY-MM-DD'), ''), COALESCE(demo_time, ''), COALESCE(type, ''), COALESCE(level, ''),
	status, created_at, updated_at, COALESCE(updated_by, '')`

func scanLead(row pgx.Row) (model.Lead, error) {
	var l model.Lead
	err := row.Scan(
		&l.ID, &l.Name, &l.Phone, &l.Email, &l.Message, &l.Location,
		&l.DemoDate, &l.DemoTime, &l.Type, &l.Level,
		&l.Status, &l.CreatedAt, &l.UpdatedAt, &l.UpdatedBy,
	)
	return l, err
}

func (r *LeadRepository) Create(ctx context.Context, lead model.Lead) (model.Lead, error) {
	query := `INSERT INTO leads (id, name, phone, email, message, location, demo_date, demo_time, type, level, status, created_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, '')::date,
			          NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11, $12)
			  RETURNING ` + leadColumns

	saved, err := scanLead(getQuerier(ctx, r.db.Pool).QueryRow(ctx, query,
		lead.ID, lead.Name, lead.Phone, lead.Email, lead.Message, lead.Location,
		lead.DemoDate, lead.DemoTime, string(lead.Type), string(lead.Level),
		string(lead.Status), lead.CreatedAt,
	))
	if err != nil {
		return model.Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}
	return saved, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]model.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC, id DESC`

	rows, err := getQuerier(ctx, r.db.Pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]model.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status model.LeadStatus, actor string, at time.Time) (model.Lead, error) {
	query := `UPDATE leads SET status = $2, updated_at = $3, updated_by = $4
			  WHERE id = $1
			  RETURNING ` + leadColumns

	lead, err := scanLead(getQuerier(ctx, r.db.Pool).QueryRow(ctx, query, id, string(status), at, actor))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Lead{}, model.ErrNotFound
		}
		return model.Lead{}, fmt.Errorf("failed to update lead status: %w", err)
	}
	return lead, nil
}

// Delete is not supported by the relational store.
func (r *LeadRepository) Delete(context.Context, string) error {
	return model.ErrUnsupported
}
