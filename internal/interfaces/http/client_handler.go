package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/partner"
)

// ClientHandler expone los clientes por HTTP.
type ClientHandler struct {
	uc *partner.ClientUseCase
}

func NewClientHandler(uc *partner.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary Crear cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param request body dto.CreatePersonRequest true "Cliente"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePersonRequest
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
// @Summary Listar clientes con deuda derivada
// @Tags clientes
// @Produce json
// @Param search query string false "Texto sobre nombre, documento o teléfono"
// @Param active query boolean false "Filtrar por activo"
// @Param min_debt query number false "Deuda mínima"
// @Param max_debt query number false "Deuda máxima"
// @Success 200 {array} dto.PersonResponse
// @Security BearerAuth
// @Router /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	filters := dto.PersonFilters{
		Search:  c.Query("search"),
		Active:  queryBool(c, "active"),
		MinDebt: queryDecimal(c, "min_debt"),
		MaxDebt: queryDecimal(c, "max_debt"),
	}
	clients, err := h.uc.List(filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(clients)
}

// GetByID godoc
// @Summary Obtener cliente
// @Tags clientes
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client)
}

// Update godoc
// @Summary Actualizar cliente
// @Tags clientes
// @Accept json
// @Param id path string true "ID del cliente"
// @Param request body dto.UpdatePersonRequest true "Campos a actualizar"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetActive godoc
// @Summary Activar / desactivar cliente
// @Description Soft-delete: el toggle redundante es un error de validación
// @Tags clientes
// @Accept json
// @Param id path string true "ID del cliente"
// @Param request body dto.SetActiveRequest true "Estado"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/clients/{id}/active [patch]
func (h *ClientHandler) SetActive(c *fiber.Ctx) error {
	var req dto.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetActive(c.Context(), c.Params("id"), req.Active); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
