package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/partner"
)

// SupplierHandler expone los proveedores por HTTP.
type SupplierHandler struct {
	uc *partner.SupplierUseCase
}

func NewSupplierHandler(uc *partner.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary Crear proveedor
// @Tags proveedores
// @Accept json
// @Produce json
// @Param request body dto.CreatePersonRequest true "Proveedor"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
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
// @Summary Listar proveedores con deuda derivada
// @Tags proveedores
// @Produce json
// @Param search query string false "Texto sobre nombre, documento o teléfono"
// @Param active query boolean false "Filtrar por activo"
// @Param min_debt query number false "Deuda mínima"
// @Param max_debt query number false "Deuda máxima"
// @Success 200 {array} dto.PersonResponse
// @Security BearerAuth
// @Router /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	filters := dto.PersonFilters{
		Search:  c.Query("search"),
		Active:  queryBool(c, "active"),
		MinDebt: queryDecimal(c, "min_debt"),
		MaxDebt: queryDecimal(c, "max_debt"),
	}
	suppliers, err := h.uc.List(filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(suppliers)
}

// GetByID godoc
// @Summary Obtener proveedor
// @Tags proveedores
// @Produce json
// @Param id path string true "ID del proveedor"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

// Update godoc
// @Summary Actualizar proveedor
// @Tags proveedores
// @Accept json
// @Param id path string true "ID del proveedor"
// @Param request body dto.UpdatePersonRequest true "Campos a actualizar"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
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
// @Summary Activar / desactivar proveedor
// @Tags proveedores
// @Accept json
// @Param id path string true "ID del proveedor"
// @Param request body dto.SetActiveRequest true "Estado"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/suppliers/{id}/active [patch]
func (h *SupplierHandler) SetActive(c *fiber.Ctx) error {
	var req dto.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetActive(c.Context(), c.Params("id"), req.Active); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
