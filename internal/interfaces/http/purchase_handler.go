package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/trade"
)

// PurchaseHandler expone las compras por HTTP.
type PurchaseHandler struct {
	uc *trade.PurchaseUseCase
}

func NewPurchaseHandler(uc *trade.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary Crear compra
// @Description Crea una compra abierta, incrementa stock si corresponde y registra los pagos iniciales
// @Tags compras
// @Accept json
// @Produce json
// @Param request body dto.CreatePurchaseRequest true "Compra"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePurchaseRequest
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
// @Summary Listar compras
// @Tags compras
// @Produce json
// @Param start query string false "Inicio del período (RFC3339 o YYYY-MM-DD)"
// @Param end query string false "Fin del período"
// @Param status query string false "open | closed | canceled"
// @Param payment_status query string false "pending | partial | paid"
// @Param search query string false "Texto sobre el nombre del proveedor"
// @Success 200 {array} dto.PurchaseResponse
// @Security BearerAuth
// @Router /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
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
	purchases, err := h.uc.List(filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchases)
}

// GetByID godoc
// @Summary Obtener compra
// @Tags compras
// @Produce json
// @Param id path string true "ID de la compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	purchase, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchase)
}

// Update godoc
// @Summary Actualizar compra
// @Tags compras
// @Accept json
// @Produce json
// @Param id path string true "ID de la compra"
// @Param request body dto.UpdatePurchaseRequest true "Campos a actualizar"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/purchases/{id} [put]
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Close godoc
// @Summary Cerrar compra
// @Tags compras
// @Param id path string true "ID de la compra"
// @Success 204
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/purchases/{id}/close [post]
func (h *PurchaseHandler) Close(c *fiber.Ctx) error {
	if err := h.uc.Close(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary Cancelar compra
// @Description Devuelve el stock recibido y registra el estorno de lo pagado
// @Tags compras
// @Param id path string true "ID de la compra"
// @Success 204
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/purchases/{id}/cancel [post]
func (h *PurchaseHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPayment godoc
// @Summary Registrar pago de una compra
// @Tags compras
// @Accept json
// @Param id path string true "ID de la compra"
// @Param request body dto.PaymentRequest true "Pago"
// @Success 201
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/purchases/{id}/payments [post]
func (h *PurchaseHandler) AddPayment(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddPayment(c.Context(), c.Params("id"), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
