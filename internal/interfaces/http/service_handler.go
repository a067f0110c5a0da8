package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercial-api/internal/application/catalog"
	"github.com/jhoicas/Comercial-api/internal/application/dto"
)

// ServiceHandler expone el catálogo de servicios por HTTP.
type ServiceHandler struct {
	uc *catalog.ServiceUseCase
}

func NewServiceHandler(uc *catalog.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create godoc
// @Summary Crear servicio
// @Tags servicios
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Servicio"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
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
// @Summary Listar servicios
// @Tags servicios
// @Produce json
// @Param search query string false "Texto sobre el nombre"
// @Param active query boolean false "Filtrar por activo"
// @Success 200 {array} dto.ServiceResponse
// @Security BearerAuth
// @Router /api/services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	services, err := h.uc.List(c.Query("search"), queryBool(c, "active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(services)
}

// GetByID godoc
// @Summary Obtener servicio
// @Tags servicios
// @Produce json
// @Param id path string true "ID del servicio"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/services/{id} [get]
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	service, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(service)
}

// Update godoc
// @Summary Actualizar servicio
// @Tags servicios
// @Accept json
// @Param id path string true "ID del servicio"
// @Param request body dto.UpdateServiceRequest true "Campos a actualizar"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/services/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetActive godoc
// @Summary Activar / desactivar servicio
// @Tags servicios
// @Accept json
// @Param id path string true "ID del servicio"
// @Param request body dto.SetActiveRequest true "Estado"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/services/{id}/active [patch]
func (h *ServiceHandler) SetActive(c *fiber.Ctx) error {
	var req dto.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetActive(c.Context(), c.Params("id"), req.Active); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
