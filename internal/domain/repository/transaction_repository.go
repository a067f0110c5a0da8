package repository

import (
	"time"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

// TransactionRepository puerto del ledger financiero. Append-only:
// no expone update ni delete; las correcciones son entradas nuevas.
type TransactionRepository interface {
	Create(t *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	ListByPeriod(start, end time.Time) ([]*entity.Transaction, error)
	// ListByReference entradas de un documento (origin + referenceId).
	ListByReference(origin entity.TransactionOrigin, referenceID string) ([]*entity.Transaction, error)
	// ListByReferenceIDs lote de documentos en una sola consulta, para
	// evitar N+1 al derivar estado de pago y deudas.
	ListByReferenceIDs(origin entity.TransactionOrigin, referenceIDs []string) ([]*entity.Transaction, error)
}
