package dto

import "github.com/shopspring/decimal"

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string          `json:"id"`
	TenantID string          `json:"tenantId,omitempty"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}
