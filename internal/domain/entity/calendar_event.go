package entity

import "time"

// CalendarEvent evento de agenda. Sin impacto financiero ni relación con
// otras entidades; la fecha puede ser pasada o futura.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
