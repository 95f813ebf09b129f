package repository

import "github.com/jhoicas/pos-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
	List() ([]entity.User, error)
	Create(user *entity.User) error
}
