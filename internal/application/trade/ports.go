package trade

import (
	"context"

	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada operación del ciclo de vida
// (create, update, close, cancel, addPayment) corre completa dentro de
// una transacción: una falla a mitad de camino hace rollback de stock,
// documento y pagos a la vez.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
}
