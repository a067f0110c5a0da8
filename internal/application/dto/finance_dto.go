package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest movimiento manual del ledger. Origin se fuerza
// a manual y la referencia se descarta en el caso de uso.
type CreateTransactionRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"` // in | out
	Value       decimal.Decimal `json:"value"`
	Method      string          `json:"method"`
	Date        *time.Time      `json:"date,omitempty"` // default: ahora
}

// TransactionFilters filtros de listado del ledger; el período siempre
// está presente (filtro indexado).
type TransactionFilters struct {
	Start    time.Time
	End      time.Time
	Origin   string
	Type     string
	MinValue *decimal.Decimal
	MaxValue *decimal.Decimal
	Text     string
}

// TransactionResponse entrada del ledger.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	Origin      string          `json:"origin"`
	Value       decimal.Decimal `json:"value"`
	Method      string          `json:"method"`
	Date        time.Time       `json:"date"`
	ReferenceID string          `json:"reference_id,omitempty"`
}

// CashFlowResponse flujo de caja del período: Σ in − Σ out. Derivado,
// nunca persistido.
type CashFlowResponse struct {
	In      decimal.Decimal `json:"in"`
	Out     decimal.Decimal `json:"out"`
	Balance decimal.Decimal `json:"balance"`
}
