package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Stock está definido si y sólo si
// StockControl es true, y nunca es negativo; sólo lo modifican el motor
// de reconciliación y el ajuste manual. Active bloquea el uso en
// documentos nuevos sin borrar el historial.
type Product struct {
	ID           string
	Name         string
	SupplierID   string
	StockControl bool
	Stock        *int64
	Cost         decimal.Decimal
	SellPrice    decimal.Decimal
	Active       bool
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
