package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus estado del ciclo de vida de ventas y compras.
// Transiciones válidas: open→closed, open→canceled, closed→canceled.
type DocumentStatus string

const (
	DocumentStatusOpen     DocumentStatus = "open"
	DocumentStatusClosed   DocumentStatus = "closed"
	DocumentStatusCanceled DocumentStatus = "canceled"
)

// PaymentStatus estado de pago derivado del ledger; NUNCA se persiste.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
)

// Sale documento comercial de venta.
// TotalValue por defecto es Σ quantity*unitValue pero admite override manual
// al crear. AffectStock es inmutable después de la creación.
type Sale struct {
	ID          string
	ClientID    string // vacío = venta sin cliente asociado
	Items       []ComercialItem
	TotalValue  decimal.Decimal
	AffectStock bool
	Status      DocumentStatus
	Date        time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
