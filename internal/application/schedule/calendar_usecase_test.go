package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/schedule"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/pkg/logger"
)

type fakeCalendarRepo struct {
	events map[string]*entity.CalendarEvent
}

func (f *fakeCalendarRepo) Create(e *entity.CalendarEvent) error { f.events[e.ID] = e; return nil }
func (f *fakeCalendarRepo) GetByID(id string) (*entity.CalendarEvent, error) {
	return f.events[id], nil
}
func (f *fakeCalendarRepo) Update(e *entity.CalendarEvent) error { f.events[e.ID] = e; return nil }
func (f *fakeCalendarRepo) Delete(id string) error {
	delete(f.events, id)
	return nil
}
func (f *fakeCalendarRepo) ListByPeriod(start, end time.Time) ([]*entity.CalendarEvent, error) {
	var list []*entity.CalendarEvent
	for _, e := range f.events {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		list = append(list, e)
	}
	return list, nil
}

func newCalendarFixture() (*schedule.CalendarUseCase, *fakeCalendarRepo) {
	repo := &fakeCalendarRepo{events: make(map[string]*entity.CalendarEvent)}
	return schedule.NewCalendarUseCase(repo, logger.Nop()), repo
}

func TestEventCreate_TituloObligatorioFechaLibre(t *testing.T) {
	uc, repo := newCalendarFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.EventRequest{Title: "  ", Date: time.Now()})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Pasado y futuro son válidos.
	pasado := time.Now().Add(-30 * 24 * time.Hour)
	futuro := time.Now().Add(30 * 24 * time.Hour)
	_, err = uc.Create(ctx, dto.EventRequest{Title: "Inventario anual", Date: pasado})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.EventRequest{Title: "Visita proveedor", Date: futuro})
	require.NoError(t, err)
	assert.Len(t, repo.events, 2)
}

func TestEventUpdateDelete(t *testing.T) {
	uc, repo := newCalendarFixture()
	ctx := context.Background()

	id, err := uc.Create(ctx, dto.EventRequest{Title: "Visita proveedor", Date: time.Now()})
	require.NoError(t, err)

	nueva := time.Now().Add(7 * 24 * time.Hour)
	require.NoError(t, uc.Update(ctx, id, dto.EventRequest{Title: "Visita reprogramada", Date: nueva}))
	assert.Equal(t, "Visita reprogramada", repo.events[id].Title)

	assert.ErrorIs(t, uc.Update(ctx, "no-existe", dto.EventRequest{Title: "X", Date: nueva}), domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, id))
	assert.Empty(t, repo.events)
	assert.ErrorIs(t, uc.Delete(ctx, id), domain.ErrNotFound)
}

func TestEventListByPeriod(t *testing.T) {
	uc, _ := newCalendarFixture()
	ctx := context.Background()
	now := time.Now()

	_, err := uc.Create(ctx, dto.EventRequest{Title: "Dentro", Date: now})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.EventRequest{Title: "Fuera", Date: now.Add(90 * 24 * time.Hour)})
	require.NoError(t, err)

	list, err := uc.ListByPeriod(now.Add(-24*time.Hour), now.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dentro", list[0].Title)
}
