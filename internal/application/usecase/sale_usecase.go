package usecase

import (
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// SaleUseCase lecturas de ventas (activas y archivadas) y transición de archivado.
type SaleUseCase struct {
	repo repository.SaleRepository
	log  *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{repo: repo, log: log}
}

// ListActive devuelve las ventas activas visibles para el tenant del caller.
// tenantID vacío = súper-tenant, sin filtrar. Misma política que productos y
// archivo, aplicada de forma independiente en cada request.
func (uc *SaleUseCase) ListActive(tenantID string) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return filterSales(sales, tenantID), nil
}

// ListArchived devuelve las ventas archivadas visibles para el tenant del caller.
func (uc *SaleUseCase) ListArchived(tenantID string) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.ListArchived()
	if err != nil {
		return nil, err
	}
	return filterSales(sales, tenantID), nil
}

// Archive mueve una venta de la colección activa al archivo. La búsqueda por
// id no filtra por tenant: cualquier caller autenticado puede archivar
// cualquier venta activa (comportamiento conservado; ver DESIGN.md).
//
// La transición es de dos pasos sin transacción: primero se inserta la copia
// en el archivo y se persiste, después se remueve la original. Un crash entre
// ambos pasos deja la venta duplicada, nunca perdida; Reconcile limpia los
// duplicados al arrancar tomando el archivo como fuente de verdad.
func (uc *SaleUseCase) Archive(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.FindActiveByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	if err := uc.repo.InsertArchived(sale); err != nil {
		return nil, err
	}
	if err := uc.repo.RemoveActive(id); err != nil {
		// La copia ya quedó en el archivo; la activa sobrevive hasta el
		// próximo Reconcile.
		uc.log.Error().Err(err).Str("sale_id", id).Msg("remover venta activa tras archivar")
		return nil, err
	}
	uc.log.Info().Str("sale_id", id).Str("tenant_id", sale.TenantID).Msg("venta archivada")
	out := toSaleResponse(*sale)
	return &out, nil
}

// Reconcile remueve de la colección activa toda venta cuyo id ya existe en el
// archivo (transición interrumpida por un crash). Devuelve cuántas limpió.
func (uc *SaleUseCase) Reconcile() (int, error) {
	archived, err := uc.repo.ListArchived()
	if err != nil {
		return 0, err
	}
	archivedIDs := make(map[string]bool, len(archived))
	for _, s := range archived {
		archivedIDs[s.ID] = true
	}
	active, err := uc.repo.ListActive()
	if err != nil {
		return 0, err
	}
	cleaned := 0
	for _, s := range active {
		if !archivedIDs[s.ID] {
			continue
		}
		if err := uc.repo.RemoveActive(s.ID); err != nil {
			return cleaned, err
		}
		uc.log.Warn().Str("sale_id", s.ID).Msg("venta duplicada en activa y archivo; removida de activa")
		cleaned++
	}
	return cleaned, nil
}

func filterSales(sales []entity.Sale, tenantID string) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		if tenantID != "" && s.TenantID != tenantID {
			continue
		}
		out = append(out, toSaleResponse(s))
	}
	return out
}

func toSaleResponse(s entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return dto.SaleResponse{
		ID:           s.ID,
		TenantID:     s.TenantID,
		CustomerName: s.CustomerName,
		Items:        items,
		Total:        s.Total,
		CreatedAt:    s.CreatedAt,
	}
}
