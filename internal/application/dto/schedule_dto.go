package dto

import "time"

// EventRequest alta o edición de un evento de agenda. La fecha puede ser
// pasada o futura (sin restricción).
type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// EventResponse evento de agenda.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}
