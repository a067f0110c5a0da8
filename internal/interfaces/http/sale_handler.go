package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/trade"
)

// SaleHandler expone las ventas por HTTP.
type SaleHandler struct {
	uc *trade.SaleUseCase
}

func NewSaleHandler(uc *trade.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary Crear venta
// @Description Crea una venta abierta, descuenta stock si corresponde y registra los pagos iniciales
// @Tags ventas
// @Accept json
// @Produce json
// @Param request body dto.CreateSaleRequest true "Venta"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSaleRequest
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
// @Summary Listar ventas
// @Description Lista ventas del período con su estado de pago derivado del ledger
// @Tags ventas
// @Produce json
// @Param start query string false "Inicio del período (RFC3339 o YYYY-MM-DD)"
// @Param end query string false "Fin del período"
// @Param status query string false "open | closed | canceled"
// @Param payment_status query string false "pending | partial | paid"
// @Param search query string false "Texto sobre el nombre del cliente"
// @Success 200 {array} dto.SaleResponse
// @Security BearerAuth
// @Router /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "período inválido"})
	}
	filters := dto.DocumentFilters{
		Start:         start,
		End:           end,
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		MinTotal:      queryDecimal(c, "min_total"),
		MaxTotal:      queryDecimal(c, "max_total"),
		Search:        c.Query("search"),
	}
	sales, err := h.uc.List(filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}

// GetByID godoc
// @Summary Obtener venta
// @Tags ventas
// @Produce json
// @Param id path string true "ID de la venta"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// Update godoc
// @Summary Actualizar venta
// @Description Actualización parcial; reconcilia stock por diferencia de cantidades
// @Tags ventas
// @Accept json
// @Produce json
// @Param id path string true "ID de la venta"
// @Param request body dto.UpdateSaleRequest true "Campos a actualizar"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Close godoc
// @Summary Cerrar venta
// @Tags ventas
// @Produce json
// @Param id path string true "ID de la venta"
// @Success 204
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id}/close [post]
func (h *SaleHandler) Close(c *fiber.Ctx) error {
	if err := h.uc.Close(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary Cancelar venta
// @Description Revierte el stock y registra el estorno de lo pagado, todo en una transacción
// @Tags ventas
// @Produce json
// @Param id path string true "ID de la venta"
// @Success 204
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPayment godoc
// @Summary Registrar pago de una venta
// @Tags ventas
// @Accept json
// @Produce json
// @Param id path string true "ID de la venta"
// @Param request body dto.PaymentRequest true "Pago"
// @Success 201
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id}/payments [post]
func (h *SaleHandler) AddPayment(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddPayment(c.Context(), c.Params("id"), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
