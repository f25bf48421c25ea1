package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scoreboard/internal/models"
)

type EventRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewEventRepository(db *sql.DB, timeout time.Duration) *EventRepository {
	return &EventRepository{db: db, timeout: timeout}
}

var _ EventRepo = (*EventRepository)(nil)

const (
	selectEventsSQL = `SELECT id, name, date, description FROM events ORDER BY id ASC`
	insertEventSQL  = `INSERT INTO events (name, date, description) VALUES (?, ?, ?)`
	updateEventSQL  = `UPDATE events SET name = ?, date = ?, description = ? WHERE id = ?`
	deleteEventSQL  = `DELETE FROM events WHERE id = ?`
)

// List returns all events in insertion order.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectEventsSQL)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()

	out := make([]models.Event, 0, 16)
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Description); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}

// Create inserts the event and returns the generated id. e.ID is ignored.
func (r *EventRepository) Create(ctx context.Context, e models.Event) (int, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, insertEventSQL, e.Name, e.Date, e.Description)
	if err != nil {
		return 0, fmt.Errorf("insert event %q: %w", e.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for event %q: %w", e.Name, err)
	}
	return int(id), nil
}

// Update replaces name, date and description of the event with e.ID.
func (r *EventRepository) Update(ctx context.Context, e models.Event) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, updateEventSQL, e.Name, e.Date, e.Description, e.ID)
	if err != nil {
		return fmt.Errorf("update event %d: %w", e.ID, err)
	}
	return expectAffected(res, "event", e.ID)
}

// Delete removes the event with id.
func (r *EventRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, deleteEventSQL, id)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return expectAffected(res, "event", id)
}

func expectAffected(res sql.Result, what string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s %d: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
