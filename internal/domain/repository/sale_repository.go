package repository

import "github.com/jhoicas/pos-api/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas activas y archivadas.
// InsertArchived y RemoveActive persisten cada una por separado: la transición
// de archivado es de dos pasos y no transaccional (ver SaleUseCase.Archive).
type SaleRepository interface {
	ListActive() ([]entity.Sale, error)
	ListArchived() ([]entity.Sale, error)
	FindActiveByID(id string) (*entity.Sale, error)
	InsertArchived(sale *entity.Sale) error
	RemoveActive(id string) error
	Create(sale *entity.Sale) error
}
