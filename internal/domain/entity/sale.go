package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Sale representa una venta. El estado archivado es implícito por pertenencia
// a la colección: una venta vive en "sales" o en "salesArchive", y la
// transición es de un solo sentido (ver SaleUseCase.Archive).
type Sale struct {
	ID           string          `json:"id"`
	TenantID     string          `json:"tenantId,omitempty"`
	CustomerName string          `json:"customerName"`
	Items        []SaleItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"createdAt"`
}
