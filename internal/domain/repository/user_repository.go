package repository

import "github.com/jhoicas/Comercial-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios de la API.
type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
}
