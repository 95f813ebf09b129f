package jsonstore

import (
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre el almacén JSON.
type SaleRepo struct {
	store *Store
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(store *Store) *SaleRepo {
	return &SaleRepo{store: store}
}

// ListActive devuelve todas las ventas activas.
func (r *SaleRepo) ListActive() ([]entity.Sale, error) {
	return r.store.Sales(), nil
}

// ListArchived devuelve todas las ventas archivadas.
func (r *SaleRepo) ListArchived() ([]entity.Sale, error) {
	return r.store.ArchivedSales(), nil
}

// FindActiveByID busca una venta activa por id, o (nil, nil) si no existe.
func (r *SaleRepo) FindActiveByID(id string) (*entity.Sale, error) {
	return r.store.FindSaleByID(id), nil
}

// InsertArchived persiste una copia de la venta en el archivo.
func (r *SaleRepo) InsertArchived(sale *entity.Sale) error {
	return r.store.InsertArchivedSale(*sale)
}

// RemoveActive remueve la venta activa con ese id; no es error si ya no existe.
func (r *SaleRepo) RemoveActive(id string) error {
	_, err := r.store.RemoveSale(id)
	return err
}

// Create persiste una nueva venta activa (flujo de aprovisionamiento).
func (r *SaleRepo) Create(sale *entity.Sale) error {
	return r.store.InsertSale(*sale)
}
