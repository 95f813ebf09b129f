package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP para ventas activas y archivadas (protegido).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// ListActive godoc
// @Summary      Listar ventas activas del tenant del caller
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SaleResponse
// @Failure      401  {object}  dto.AuthErrorResponse
// @Failure      403  {object}  dto.AuthErrorResponse
// @Router       /sales [get]
func (h *SaleHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(TenantFromCtx(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error"})
	}
	return c.JSON(out)
}

// ListArchived godoc
// @Summary      Listar ventas archivadas del tenant del caller
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SaleResponse
// @Failure      401  {object}  dto.AuthErrorResponse
// @Failure      403  {object}  dto.AuthErrorResponse
// @Router       /sales/archive [get]
func (h *SaleHandler) ListArchived(c *fiber.Ctx) error {
	out, err := h.uc.ListArchived(TenantFromCtx(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error"})
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar una venta activa (transición de un solo sentido)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.ArchiveSaleResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /sales/{id}/archive [post]
func (h *SaleHandler) Archive(c *fiber.Ctx) error {
	id := c.Params("id")
	sale, err := h.uc.Archive(id)
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Sale not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error"})
	}
	return c.JSON(dto.ArchiveSaleResponse{Message: "Sale archived successfully", Sale: *sale})
}
