package repository

import "github.com/jhoicas/pos-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// El filtrado por tenant es política del gateway, no del repositorio:
// List devuelve la colección completa.
type ProductRepository interface {
	List() ([]entity.Product, error)
	Create(product *entity.Product) error
}
