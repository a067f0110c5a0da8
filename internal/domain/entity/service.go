package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service servicio vendible (sin inventario). Sólo aparece en ventas.
type Service struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Active    bool
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
