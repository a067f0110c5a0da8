package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType dirección del movimiento financiero.
type TransactionType string

const (
	TransactionIn  TransactionType = "in"
	TransactionOut TransactionType = "out"
)

// TransactionOrigin procedencia del movimiento.
// sale→in, purchase→out; manual no referencia documentos.
type TransactionOrigin string

const (
	OriginSale     TransactionOrigin = "sale"
	OriginPurchase TransactionOrigin = "purchase"
	OriginManual   TransactionOrigin = "manual"
)

// PaymentMethod medio de pago del movimiento.
type PaymentMethod string

const (
	MethodPix        PaymentMethod = "pix"
	MethodCash       PaymentMethod = "cash"
	MethodTed        PaymentMethod = "ted"
	MethodBoleto     PaymentMethod = "boleto"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodCreditCard PaymentMethod = "credit_card"
)

// Transaction entrada del ledger financiero. Append-only: nunca se
// actualiza ni se borra; correcciones y cancelaciones se representan con
// entradas inversas nuevas que referencian el mismo documento.
// Invariante: Origin manual ⇒ ReferenceID vacío; sale/purchase ⇒
// ReferenceID al documento y Type fijo (sale→in, purchase→out).
type Transaction struct {
	ID          string
	Title       string
	Description string
	Type        TransactionType
	Origin      TransactionOrigin
	Value       decimal.Decimal // > 0
	Method      PaymentMethod
	Date        time.Time // <= now
	ReferenceID string
	CreatedAt   time.Time
}
