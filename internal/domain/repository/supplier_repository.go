package repository

import "github.com/jhoicas/Comercial-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	SetActive(id string, active bool) error
	List(search string, active *bool) ([]*entity.Supplier, error)
}
