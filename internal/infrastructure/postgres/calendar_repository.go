package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

var _ repository.CalendarRepository = (*CalendarRepo)(nil)

// CalendarRepo implementación de CalendarRepository sobre PostgreSQL.
// Único repositorio con DELETE físico.
type CalendarRepo struct {
	q Querier
}

// NewCalendarRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCalendarRepository(q Querier) *CalendarRepo {
	return &CalendarRepo{q: q}
}

// Create persiste un evento nuevo.
func (r *CalendarRepo) Create(event *entity.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (id, title, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Title, event.Description, event.Date, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert calendar event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *CalendarRepo) GetByID(id string) (*entity.CalendarEvent, error) {
	query := `
		SELECT id, title, description, date, created_at, updated_at
		FROM calendar_events WHERE id = $1`
	var e entity.CalendarEvent
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calendar event: %w", err)
	}
	return &e, nil
}

// Update reemplaza título, descripción y fecha.
func (r *CalendarRepo) Update(event *entity.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET title = $2, description = $3, date = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Title, event.Description, event.Date, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update calendar event: %w", err)
	}
	return nil
}

// Delete borrado físico del evento.
func (r *CalendarRepo) Delete(id string) error {
	query := `DELETE FROM calendar_events WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	return nil
}

// ListByPeriod eventos cuyo date cae en [start, end].
func (r *CalendarRepo) ListByPeriod(start, end time.Time) ([]*entity.CalendarEvent, error) {
	query := `
		SELECT id, title, description, date, created_at, updated_at
		FROM calendar_events WHERE date >= $1 AND date <= $2 ORDER BY date ASC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer rows.Close()
	var list []*entity.CalendarEvent
	for rows.Next() {
		var e entity.CalendarEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
