// Package inventory implementa el motor de reconciliación de stock:
// aplica lotes de deltas con signo sobre productos, todo-o-nada.
package inventory

import (
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
	"github.com/jhoicas/Comercial-api/internal/domain/rules"
)

// Reconciler valida y aplica lotes de deltas de stock. Se usa con un
// ProductRepository atado a la transacción del caller: GetForUpdate
// bloquea cada fila (SELECT FOR UPDATE), así lotes concurrentes sobre el
// mismo producto quedan serializados y el Commit/Rollback del caller
// garantiza la atomicidad del lote completo.
type Reconciler struct{}

// NewReconciler construye el motor.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

type confirmedChange struct {
	productID string
	newStock  int64
}

// Apply valida primero el lote completo y sólo entonces escribe:
// un solo producto con stock insuficiente aborta el lote entero sin
// aplicar ningún delta. Productos sin control de stock (o con stock
// indefinido) se saltan en silencio.
func (r *Reconciler) Apply(productRepo repository.ProductRepository, changes []rules.StockChange) error {
	var confirmed []confirmedChange
	for _, c := range changes {
		product, err := productRepo.GetForUpdate(c.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrReferenceNotFound
		}
		if !product.StockControl || product.Stock == nil {
			continue
		}
		newStock := *product.Stock + c.Quantity
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}
		confirmed = append(confirmed, confirmedChange{productID: c.ProductID, newStock: newStock})
	}

	for _, c := range confirmed {
		if err := productRepo.UpdateStock(c.productID, c.newStock); err != nil {
			return err
		}
	}
	return nil
}
