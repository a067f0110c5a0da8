package repository

import "github.com/jhoicas/Comercial-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar la reconciliación de stock por producto.
	GetForUpdate(id string) (*entity.Product, error)
	// Update no modifica Stock ni StockControl; el stock se maneja vía
	// reconciliación o ajuste manual (UpdateStock).
	Update(product *entity.Product) error
	UpdateStock(id string, stock int64) error
	SetActive(id string, active bool) error
	// List busca por texto en el nombre (prefijo/substring) y filtra por
	// active si no es nil. search vacío lista todo.
	List(search string, active *bool) ([]*entity.Product, error)
}
