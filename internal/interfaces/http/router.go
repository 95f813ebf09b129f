package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *usecase.SaleUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API. /auth/login es la única ruta pública;
// todo lo demás pasa por AuthMiddleware antes de tocar cualquier recurso.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	app.Post("/auth/login", authHandler.Login)

	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/products", productHandler.List)

	saleHandler := NewSaleHandler(deps.SaleUC)
	protected.Get("/sales", saleHandler.ListActive)
	protected.Get("/sales/archive", saleHandler.ListArchived)
	protected.Post("/sales/:id/archive", saleHandler.Archive)
}
