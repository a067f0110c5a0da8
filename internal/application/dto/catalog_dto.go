package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Stock es obligatorio si
// StockControl es true y se ignora si es false.
type CreateProductRequest struct {
	Name         string           `json:"name"`
	SupplierID   string           `json:"supplier_id,omitempty"`
	StockControl bool             `json:"stock_control"`
	Stock        *int64           `json:"stock,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	SellPrice    *decimal.Decimal `json:"sell_price,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// UpdateProductRequest actualización parcial. Stock y StockControl no se
// editan por aquí: el stock sólo cambia vía reconciliación o ajuste manual.
type UpdateProductRequest struct {
	Name       *string          `json:"name,omitempty"`
	SupplierID *string          `json:"supplier_id,omitempty"`
	Cost       *decimal.Decimal `json:"cost,omitempty"`
	SellPrice  *decimal.Decimal `json:"sell_price,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}

// AdjustStockRequest ajuste manual: fija el stock absoluto del producto.
type AdjustStockRequest struct {
	Stock int64 `json:"stock"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	StockControl bool            `json:"stock_control"`
	Stock        *int64          `json:"stock,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	SellPrice    decimal.Decimal `json:"sell_price"`
	Active       bool            `json:"active"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateServiceRequest alta de servicio.
type CreateServiceRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Notes string           `json:"notes,omitempty"`
}

// UpdateServiceRequest actualización parcial de servicio.
type UpdateServiceRequest struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Notes *string          `json:"notes,omitempty"`
}

// ServiceResponse servicio del catálogo.
type ServiceResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Active    bool            `json:"active"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
