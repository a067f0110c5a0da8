// Package schedule agenda de eventos del negocio. Los eventos no tienen
// impacto financiero ni de stock; es el único módulo con borrado físico.
package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
	"github.com/jhoicas/Comercial-api/pkg/logger"
)

// CalendarUseCase CRUD de eventos de agenda.
type CalendarUseCase struct {
	calendarRepo repository.CalendarRepository
	log          *logger.Logger
}

// NewCalendarUseCase construye el caso de uso.
func NewCalendarUseCase(calendarRepo repository.CalendarRepository, log *logger.Logger) *CalendarUseCase {
	return &CalendarUseCase{calendarRepo: calendarRepo, log: log}
}

// Create alta de evento. La fecha puede ser pasada o futura.
func (uc *CalendarUseCase) Create(_ context.Context, in dto.EventRequest) (string, error) {
	if strings.TrimSpace(in.Title) == "" {
		return "", domain.ErrValidation
	}
	now := time.Now()
	event := &entity.CalendarEvent{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.calendarRepo.Create(event); err != nil {
		return "", err
	}
	return event.ID, nil
}

// Update reemplaza título, descripción y fecha del evento.
func (uc *CalendarUseCase) Update(_ context.Context, id string, in dto.EventRequest) error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.ErrValidation
	}
	event, err := uc.calendarRepo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	event.Title = in.Title
	event.Description = in.Description
	event.Date = in.Date
	event.UpdatedAt = time.Now()
	return uc.calendarRepo.Update(event)
}

// Delete borrado físico del evento.
func (uc *CalendarUseCase) Delete(_ context.Context, id string) error {
	event, err := uc.calendarRepo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	return uc.calendarRepo.Delete(id)
}

// GetByID evento puntual.
func (uc *CalendarUseCase) GetByID(id string) (*dto.EventResponse, error) {
	event, err := uc.calendarRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// ListByPeriod eventos del período.
func (uc *CalendarUseCase) ListByPeriod(start, end time.Time) ([]dto.EventResponse, error) {
	events, err := uc.calendarRepo.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}
	return resp, nil
}

func toEventResponse(e *entity.CalendarEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
	}
}
