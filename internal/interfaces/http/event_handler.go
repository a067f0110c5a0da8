package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/schedule"
)

// EventHandler expone la agenda por HTTP.
type EventHandler struct {
	uc *schedule.CalendarUseCase
}

func NewEventHandler(uc *schedule.CalendarUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Create godoc
// @Summary Crear evento de agenda
// @Tags agenda
// @Accept json
// @Produce json
// @Param request body dto.EventRequest true "Evento"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// List godoc
// @Summary Listar eventos del período
// @Tags agenda
// @Produce json
// @Param start query string false "Inicio del período (RFC3339 o YYYY-MM-DD)"
// @Param end query string false "Fin del período"
// @Success 200 {array} dto.EventResponse
// @Security BearerAuth
// @Router /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "período inválido"})
	}
	events, err := h.uc.ListByPeriod(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(events)
}

// GetByID godoc
// @Summary Obtener evento
// @Tags agenda
// @Produce json
// @Param id path string true "ID del evento"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/events/{id} [get]
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	event, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

// Update godoc
// @Summary Actualizar evento
// @Tags agenda
// @Accept json
// @Param id path string true "ID del evento"
// @Param request body dto.EventRequest true "Evento"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary Borrar evento
// @Description Borrado físico; los eventos de agenda no llevan soft-delete
// @Tags agenda
// @Param id path string true "ID del evento"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
