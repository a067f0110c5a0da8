package rules

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

// CalculatePaymentStatus deriva el estado de pago de un documento a partir
// de los pagos registrados en el ledger:
//
//	pagado <= 0            → pending
//	0 < pagado < total     → partial
//	pagado >= total        → paid
func CalculatePaymentStatus(totalValue decimal.Decimal, payments []decimal.Decimal) entity.PaymentStatus {
	paid := Sum(payments)
	if !paid.GreaterThan(decimal.Zero) {
		return entity.PaymentStatusPending
	}
	if paid.LessThan(totalValue) {
		return entity.PaymentStatusPartial
	}
	return entity.PaymentStatusPaid
}

// CanReceivePayment sólo los documentos abiertos reciben pagos.
func CanReceivePayment(status entity.DocumentStatus) bool {
	return status == entity.DocumentStatusOpen
}

// CanClose open→closed es la única transición de cierre válida.
func CanClose(status entity.DocumentStatus) bool {
	return status == entity.DocumentStatusOpen
}

// CanCancel open y closed pueden cancelarse; canceled es terminal.
func CanCancel(status entity.DocumentStatus) bool {
	return status != entity.DocumentStatusCanceled
}
