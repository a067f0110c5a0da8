package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentItemRequest línea de un documento comercial.
type DocumentItemRequest struct {
	Type        string          `json:"type"` // product | service
	ReferenceID string          `json:"reference_id"`
	Quantity    int64           `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unit_value"`
}

// PaymentRequest pago contra un documento. El motor sobreescribe título,
// origen, tipo y referencia sin importar lo que envíe el caller.
type PaymentRequest struct {
	Value       decimal.Decimal `json:"value"`
	Method      string          `json:"method"`
	Date        *time.Time      `json:"date,omitempty"` // default: ahora
	Description string          `json:"description,omitempty"`
}

// CreateSaleRequest entrada para crear una venta.
// TotalValue es un override manual; nil = Σ quantity*unitValue.
// Payments son pagos iniciales aplicados tras persistir el documento.
type CreateSaleRequest struct {
	ClientID    string                `json:"client_id,omitempty"`
	Items       []DocumentItemRequest `json:"items"`
	TotalValue  *decimal.Decimal      `json:"total_value,omitempty"`
	AffectStock bool                  `json:"affect_stock"`
	Date        *time.Time            `json:"date,omitempty"`
	Notes       string                `json:"notes,omitempty"`
	Payments    []PaymentRequest      `json:"payments,omitempty"`
}

// UpdateSaleRequest actualización parcial de una venta. Status y
// AffectStock se aceptan en el cuerpo sólo para poder rechazarlos con
// un error de campo inmutable.
type UpdateSaleRequest struct {
	ClientID    *string                `json:"client_id,omitempty"`
	Items       *[]DocumentItemRequest `json:"items,omitempty"`
	TotalValue  *decimal.Decimal       `json:"total_value,omitempty"`
	Date        *time.Time             `json:"date,omitempty"`
	Notes       *string                `json:"notes,omitempty"`
	Status      *string                `json:"status,omitempty"`
	AffectStock *bool                  `json:"affect_stock,omitempty"`
}

// CreatePurchaseRequest entrada para crear una compra (ítems sólo producto).
type CreatePurchaseRequest struct {
	SupplierID  string                `json:"supplier_id,omitempty"`
	Items       []DocumentItemRequest `json:"items"`
	TotalValue  *decimal.Decimal      `json:"total_value,omitempty"`
	AffectStock bool                  `json:"affect_stock"`
	Date        *time.Time            `json:"date,omitempty"`
	Notes       string                `json:"notes,omitempty"`
	Payments    []PaymentRequest      `json:"payments,omitempty"`
}

// UpdatePurchaseRequest actualización parcial de una compra.
type UpdatePurchaseRequest struct {
	SupplierID  *string                `json:"supplier_id,omitempty"`
	Items       *[]DocumentItemRequest `json:"items,omitempty"`
	TotalValue  *decimal.Decimal       `json:"total_value,omitempty"`
	Date        *time.Time             `json:"date,omitempty"`
	Notes       *string                `json:"notes,omitempty"`
	Status      *string                `json:"status,omitempty"`
	AffectStock *bool                  `json:"affect_stock,omitempty"`
}

// DocumentFilters filtros de listado de ventas/compras. El período es el
// filtro indexado; el resto se aplica en memoria sobre el resultado.
type DocumentFilters struct {
	Start         time.Time
	End           time.Time
	Status        string
	PaymentStatus string // filtro derivado, se aplica tras calcular
	MinTotal      *decimal.Decimal
	MaxTotal      *decimal.Decimal
	Search        string // texto sobre el cliente/proveedor
}

// DocumentItemResponse línea en una respuesta de documento.
type DocumentItemResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	ReferenceID string          `json:"reference_id"`
	Name        string          `json:"name"`
	Quantity    int64           `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unit_value"`
}

// SaleResponse venta con su estado de pago derivado del ledger.
type SaleResponse struct {
	ID            string                 `json:"id"`
	ClientID      string                 `json:"client_id,omitempty"`
	Items         []DocumentItemResponse `json:"items"`
	TotalValue    decimal.Decimal        `json:"total_value"`
	AffectStock   bool                   `json:"affect_stock"`
	Status        string                 `json:"status"`
	PaymentStatus string                 `json:"payment_status"`
	Date          time.Time              `json:"date"`
	Notes         string                 `json:"notes,omitempty"`
}

// PurchaseResponse compra con su estado de pago derivado del ledger.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	SupplierID    string                 `json:"supplier_id,omitempty"`
	Items         []DocumentItemResponse `json:"items"`
	TotalValue    decimal.Decimal        `json:"total_value"`
	AffectStock   bool                   `json:"affect_stock"`
	Status        string                 `json:"status"`
	PaymentStatus string                 `json:"payment_status"`
	Date          time.Time              `json:"date"`
	Notes         string                 `json:"notes,omitempty"`
}
