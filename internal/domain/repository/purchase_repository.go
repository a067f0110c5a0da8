package repository

import (
	"time"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para compras.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	// GetForUpdate obtiene la compra bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	UpdateStatus(id string, status entity.DocumentStatus) error
	ListByPeriod(start, end time.Time) ([]*entity.Purchase, error)
	ListBySupplierIDs(supplierIDs []string) ([]*entity.Purchase, error)
}
