package usecase

import (
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ProductUseCase lecturas de productos con filtrado por tenant.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve los productos visibles para el tenant del caller.
// tenantID vacío = súper-tenant: la colección completa sin filtrar.
// El filtro se recalcula en cada request; no hay caché de resultados.
func (uc *ProductUseCase) List(tenantID string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if tenantID != "" && p.TenantID != tenantID {
			continue
		}
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		TenantID: p.TenantID,
		Name:     p.Name,
		SKU:      p.SKU,
		Price:    p.Price,
		Stock:    p.Stock,
	}
}
