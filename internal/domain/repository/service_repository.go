package repository

import "github.com/jhoicas/Comercial-api/internal/domain/entity"

// ServiceRepository puerto de persistencia para servicios.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	Update(service *entity.Service) error
	SetActive(id string, active bool) error
	List(search string, active *bool) ([]*entity.Service, error)
}
