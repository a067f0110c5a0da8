package repository

import (
	"time"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetForUpdate obtiene la venta bloqueando la fila (SELECT FOR UPDATE).
	// Sólo tiene sentido con un repositorio atado a una transacción.
	GetForUpdate(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	UpdateStatus(id string, status entity.DocumentStatus) error
	ListByPeriod(start, end time.Time) ([]*entity.Sale, error)
	ListByClientIDs(clientIDs []string) ([]*entity.Sale, error)
}
