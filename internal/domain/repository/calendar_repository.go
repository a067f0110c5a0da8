package repository

import (
	"time"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

// CalendarRepository puerto de persistencia para eventos de agenda.
type CalendarRepository interface {
	Create(event *entity.CalendarEvent) error
	GetByID(id string) (*entity.CalendarEvent, error)
	Update(event *entity.CalendarEvent) error
	Delete(id string) error
	ListByPeriod(start, end time.Time) ([]*entity.CalendarEvent, error)
}
