package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// SaleResponse salida de una venta (activa o archivada).
type SaleResponse struct {
	ID           string             `json:"id"`
	TenantID     string             `json:"tenantId,omitempty"`
	CustomerName string             `json:"customerName"`
	Items        []SaleItemResponse `json:"items"`
	Total        decimal.Decimal    `json:"total"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ArchiveSaleResponse salida del archivado exitoso: mensaje + venta movida.
type ArchiveSaleResponse struct {
	Message string       `json:"message"`
	Sale    SaleResponse `json:"sale"`
}
