// Command seed aprovisiona el archivo de colecciones (db.json) con datos de
// demostración: dos tenants con usuarios, productos y ventas, más un admin
// súper-tenant sin tenantId que ve todas las colecciones sin filtrar.
package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/jsonstore"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	tenantNorte = "tenant-norte"
	tenantSur   = "tenant-sur"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store, err := jsonstore.Open(cfg.Store.File)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Store.File).Msg("abrir almacén")
	}

	userRepo := jsonstore.NewUserRepository(store)
	productRepo := jsonstore.NewProductRepository(store)
	saleRepo := jsonstore.NewSaleRepository(store)

	// El secret no se usa para sembrar, pero el use case lo requiere.
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: "seed", ExpMinutes: 60, Issuer: cfg.JWT.Issuer})

	users := []dto.ProvisionUserRequest{
		{Username: "admin", Password: "Admin@123", FullName: "Administrador General", Role: entity.RoleAdmin},
		{Username: "alice", Password: "User@123", FullName: "Alice Duarte", Role: entity.RoleUser, TenantID: tenantNorte},
		{Username: "bruno", Password: "User@123", FullName: "Bruno Cárdenas", Role: entity.RoleUser, TenantID: tenantSur},
	}
	for _, u := range users {
		created, err := authUC.ProvisionUser(u)
		if err != nil {
			log.Fatal().Err(err).Str("username", u.Username).Msg("aprovisionar usuario")
		}
		log.Info().Str("username", created.Username).Str("tenant", created.TenantID).Msg("usuario creado")
	}

	products := []entity.Product{
		{ID: uuid.New().String(), TenantID: tenantNorte, Name: "Café de origen 500g", SKU: "CAF-500", Price: decimal.NewFromFloat(32000), Stock: 40},
		{ID: uuid.New().String(), TenantID: tenantNorte, Name: "Panela orgánica", SKU: "PAN-001", Price: decimal.NewFromFloat(8500), Stock: 120},
		{ID: uuid.New().String(), TenantID: tenantSur, Name: "Chocolate de mesa", SKU: "CHO-250", Price: decimal.NewFromFloat(12300), Stock: 75},
	}
	for _, p := range products {
		if err := productRepo.Create(&p); err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("aprovisionar producto")
		}
	}

	now := time.Now()
	sales := []entity.Sale{
		{
			ID:           uuid.New().String(),
			TenantID:     tenantNorte,
			CustomerName: "Panadería El Trigal",
			Items: []entity.SaleItem{
				{ProductID: products[0].ID, Name: products[0].Name, Quantity: 2, UnitPrice: products[0].Price},
			},
			Total:     products[0].Price.Mul(decimal.NewFromInt(2)),
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:           uuid.New().String(),
			TenantID:     tenantSur,
			CustomerName: "Tienda La Esquina",
			Items: []entity.SaleItem{
				{ProductID: products[2].ID, Name: products[2].Name, Quantity: 5, UnitPrice: products[2].Price},
			},
			Total:     products[2].Price.Mul(decimal.NewFromInt(5)),
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
	for _, s := range sales {
		if err := saleRepo.Create(&s); err != nil {
			log.Fatal().Err(err).Str("sale_id", s.ID).Msg("aprovisionar venta")
		}
	}

	log.Info().Str("file", store.Path()).Msg("datos de demostración listos")
}
