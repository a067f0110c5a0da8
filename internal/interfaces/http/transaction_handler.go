package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/finance"
)

// TransactionHandler expone el ledger financiero por HTTP. Sólo alta de
// movimientos manuales y lecturas: el ledger no se edita ni se borra.
type TransactionHandler struct {
	uc *finance.TransactionUseCase
}

func NewTransactionHandler(uc *finance.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create godoc
// @Summary Registrar movimiento manual
// @Description El origen se fuerza a manual; los movimientos de venta/compra los genera el motor
// @Tags finanzas
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Movimiento"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo inválido"})
	}
	id, err := h.uc.CreateManual(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// List godoc
// @Summary Listar movimientos del período
// @Tags finanzas
// @Produce json
// @Param start query string false "Inicio del período (RFC3339 o YYYY-MM-DD)"
// @Param end query string false "Fin del período"
// @Param origin query string false "sale | purchase | manual"
// @Param type query string false "in | out"
// @Param text query string false "Texto sobre título y descripción"
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "período inválido"})
	}
	filters := dto.TransactionFilters{
		Start:    start,
		End:      end,
		Origin:   c.Query("origin"),
		Type:     c.Query("type"),
		MinValue: queryDecimal(c, "min_value"),
		MaxValue: queryDecimal(c, "max_value"),
		Text:     c.Query("text"),
	}
	transactions, err := h.uc.List(filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transactions)
}

// GetByID godoc
// @Summary Obtener movimiento
// @Tags finanzas
// @Produce json
// @Param id path string true "ID del movimiento"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	tx, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tx)
}

// CashFlow godoc
// @Summary Flujo de caja del período
// @Description Σ entradas − Σ salidas, derivado del ledger, nunca persistido
// @Tags finanzas
// @Produce json
// @Param start query string false "Inicio del período (RFC3339 o YYYY-MM-DD)"
// @Param end query string false "Fin del período"
// @Success 200 {object} dto.CashFlowResponse
// @Security BearerAuth
// @Router /api/transactions/cashflow [get]
func (h *TransactionHandler) CashFlow(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "período inválido"})
	}
	flow, err := h.uc.CashFlow(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(flow)
}
