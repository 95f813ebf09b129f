package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Solo lectura para esta API:
// se filtra por tenant y se devuelve tal cual.
type Product struct {
	ID       string          `json:"id"`
	TenantID string          `json:"tenantId,omitempty"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}
