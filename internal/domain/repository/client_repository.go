package repository

import "github.com/jhoicas/Comercial-api/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	SetActive(id string, active bool) error
	// List busca por texto en nombre, documento y teléfono; filtra por
	// active si no es nil.
	List(search string, active *bool) ([]*entity.Client, error)
}
