package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase documento comercial de compra. Misma forma que Sale, con
// SupplierID en lugar de ClientID. Sus ítems sólo pueden ser productos.
type Purchase struct {
	ID          string
	SupplierID  string // vacío = compra sin proveedor asociado
	Items       []ComercialItem
	TotalValue  decimal.Decimal
	AffectStock bool
	Status      DocumentStatus
	Date        time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
