package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/jsonstore"
	apphttp "github.com/jhoicas/pos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/pos-api/pkg/jwt"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "pos-api-test"
	testExpMin    = 60

	tenantNorte = "tenant-norte"
	tenantSur   = "tenant-sur"
)

// buildTestAPI levanta la aplicación completa (router + middlewares) sobre un
// almacén sembrado en un directorio temporal: alice (tenant norte), bruno
// (tenant sur) y admin sin tenant, con productos y ventas de ambos tenants.
func buildTestAPI(t *testing.T) (*fiber.App, *jsonstore.Store) {
	t.Helper()

	store, err := jsonstore.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	// MinCost: los tests verifican el contrato, no el costo adaptativo.
	for _, u := range []struct{ username, password, fullName, role, tenant string }{
		{"alice", "User@123", "Alice Duarte", entity.RoleUser, tenantNorte},
		{"bruno", "User@123", "Bruno Cárdenas", entity.RoleUser, tenantSur},
		{"admin", "Admin@123", "Administrador General", entity.RoleAdmin, ""},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.MinCost)
		require.NoError(t, err)
		require.NoError(t, store.InsertUser(entity.User{
			ID: "user-" + u.username, Username: u.username, PasswordHash: string(hash),
			FullName: u.fullName, Role: u.role, TenantID: u.tenant,
		}))
	}

	require.NoError(t, store.InsertProduct(entity.Product{
		ID: "prod-norte", TenantID: tenantNorte, Name: "Café de origen 500g", SKU: "CAF-500",
		Price: decimal.NewFromInt(32000), Stock: 40,
	}))
	require.NoError(t, store.InsertProduct(entity.Product{
		ID: "prod-sur", TenantID: tenantSur, Name: "Chocolate de mesa", SKU: "CHO-250",
		Price: decimal.NewFromInt(12300), Stock: 75,
	}))

	for _, s := range []struct{ id, tenant string }{
		{"sale-norte", tenantNorte},
		{"sale-sur", tenantSur},
	} {
		require.NoError(t, store.InsertSale(entity.Sale{
			ID: s.id, TenantID: s.tenant, CustomerName: "Cliente " + s.id,
			Items:     []entity.SaleItem{{ProductID: "p1", Name: "Café", Quantity: 1, UnitPrice: decimal.NewFromInt(10000)}},
			Total:     decimal.NewFromInt(10000),
			CreatedAt: time.Now(),
		}))
	}

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	authUC := auth.NewAuthUseCase(jsonstore.NewUserRepository(store), auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	productUC := usecase.NewProductUseCase(jsonstore.NewProductRepository(store))
	saleUC := usecase.NewSaleUseCase(jsonstore.NewSaleRepository(store), log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		SaleUC:    saleUC,
		JWTSecret: testJWTSecret,
		Log:       log,
	})
	return app, store
}

// doLogin hace POST /auth/login y devuelve la respuesta cruda.
func doLogin(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// loginToken hace login y devuelve el access_token.
func loginToken(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doLogin(t, app, username, password)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

// doGet lanza un GET autenticado (token vacío = sin header) y devuelve la respuesta.
func doGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doPost lanza un POST autenticado sin cuerpo.
func doPost(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_RetornaTokenYUsuario(t *testing.T) {
	app, _ := buildTestAPI(t)

	resp := doLogin(t, app, "alice", "User@123")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			FullName string `json:"fullName"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "user-alice", out.User.ID)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "Alice Duarte", out.User.FullName)
	assert.Equal(t, entity.RoleUser, out.User.Role)

	// El hash jamás sale en la respuesta.
	assert.NotContains(t, string(raw), "$2a$")
	assert.NotContains(t, string(raw), "password")
}

func TestLogin_TokenDecodificaLaIdentidadDelUsuario(t *testing.T) {
	app, _ := buildTestAPI(t)
	token := loginToken(t, app, "alice", "User@123")

	claims, err := pkgjwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-alice", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Equal(t, tenantNorte, claims.TenantID)
}

func TestLogin_CredencialesInvalidas_Indistinguibles(t *testing.T) {
	app, _ := buildTestAPI(t)

	// Password incorrecto y usuario inexistente: mismo status y mismo cuerpo.
	respWrongPass := doLogin(t, app, "alice", "incorrecta")
	defer respWrongPass.Body.Close()
	respUnknown := doLogin(t, app, "nadie", "User@123")
	defer respUnknown.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respWrongPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)

	bodyWrongPass, _ := io.ReadAll(respWrongPass.Body)
	bodyUnknown, _ := io.ReadAll(respUnknown.Body)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, string(bodyWrongPass))
	assert.Equal(t, string(bodyWrongPass), string(bodyUnknown))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de filtrado por tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_FiltraPorTenantDelCaller(t *testing.T) {
	app, _ := buildTestAPI(t)
	token := loginToken(t, app, "alice", "User@123")

	resp := doGet(t, app, "/products", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	products := decodeList(t, resp)

	require.Len(t, products, 1)
	assert.Equal(t, "prod-norte", products[0]["id"])
	for _, p := range products {
		assert.NotEqual(t, tenantSur, p["tenantId"], "un caller de norte no debe ver productos de sur")
	}
}

func TestSales_FiltraPorTenantDelCaller(t *testing.T) {
	app, _ := buildTestAPI(t)
	tokenBruno := loginToken(t, app, "bruno", "User@123")

	resp := doGet(t, app, "/sales", tokenBruno)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sales := decodeList(t, resp)

	require.Len(t, sales, 1)
	assert.Equal(t, "sale-sur", sales[0]["id"])
}

func TestSalesArchive_FiltraPorTenantDelCaller(t *testing.T) {
	app, store := buildTestAPI(t)

	// Archivar ambas ventas para poblar el archivo.
	tokenAdmin := loginToken(t, app, "admin", "Admin@123")
	for _, id := range []string{"sale-norte", "sale-sur"} {
		resp := doPost(t, app, "/sales/"+id+"/archive", tokenAdmin)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	require.Len(t, store.ArchivedSales(), 2)

	tokenAlice := loginToken(t, app, "alice", "User@123")
	resp := doGet(t, app, "/sales/archive", tokenAlice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	archived := decodeList(t, resp)

	require.Len(t, archived, 1)
	assert.Equal(t, "sale-norte", archived[0]["id"])
}

func TestTenantVacio_VeTodo(t *testing.T) {
	// Escape hatch documentado: claims sin tenant = colecciones sin filtrar.
	app, _ := buildTestAPI(t)
	token := loginToken(t, app, "admin", "Admin@123")

	resp := doGet(t, app, "/products", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 2)

	resp = doGet(t, app, "/sales", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de archivado
// ──────────────────────────────────────────────────────────────────────────────

func TestArchiveSale_FlujoCompleto(t *testing.T) {
	app, _ := buildTestAPI(t)
	token := loginToken(t, app, "alice", "User@123")

	resp := doPost(t, app, "/sales/sale-norte/archive", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Message string         `json:"message"`
		Sale    map[string]any `json:"sale"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	assert.Equal(t, "Sale archived successfully", out.Message)
	assert.Equal(t, "sale-norte", out.Sale["id"])

	// Después del archivado: aparece en el archivo y ya no en activas.
	archived := decodeList(t, doGet(t, app, "/sales/archive", token))
	require.Len(t, archived, 1)
	assert.Equal(t, "sale-norte", archived[0]["id"])

	active := decodeList(t, doGet(t, app, "/sales", token))
	assert.Empty(t, active)

	// Segundo archivado del mismo id → 404.
	resp = doPost(t, app, "/sales/sale-norte/archive", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"Sale not found"}`, string(body))
}

func TestArchiveSale_IdInexistente_404SinMutaciones(t *testing.T) {
	app, store := buildTestAPI(t)
	token := loginToken(t, app, "alice", "User@123")

	resp := doPost(t, app, "/sales/no-existe/archive", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"Sale not found"}`, string(body))

	assert.Len(t, store.Sales(), 2, "las activas no deben cambiar")
	assert.Empty(t, store.ArchivedSales(), "el archivo no debe cambiar")
}

func TestArchiveSale_DeOtroTenant_SeArchiva(t *testing.T) {
	// El lookup de archivado no filtra por tenant (comportamiento conservado,
	// ver DESIGN.md): alice puede archivar una venta del tenant sur por id.
	app, store := buildTestAPI(t)
	token := loginToken(t, app, "alice", "User@123")

	resp := doPost(t, app, "/sales/sale-sur/archive", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, store.ArchivedSales(), 1)
	assert.Equal(t, "sale-sur", store.ArchivedSales()[0].ID)

	// Pero en las lecturas el filtrado sigue intacto: alice no la ve archivada.
	archived := decodeList(t, doGet(t, app, "/sales/archive", token))
	assert.Empty(t, archived)
}
