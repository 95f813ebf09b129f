package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/pkg/jwt"
)

// LocalClaims key de los claims decodificados en c.Locals.
const LocalClaims = "auth_claims"

// AuthMiddleware valida el Bearer Token JWT y deja los claims en c.Locals.
// Sin token → 401 {"error":"Access token required"}; token inválido o
// expirado → 403 {"error":"Invalid token"}. Sin estado entre requests.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get("Authorization"))
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Error: "Access token required"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.AuthErrorResponse{Error: "Invalid token"})
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// bearerToken extrae el token del header Authorization ("Bearer <token>").
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ClaimsFromCtx devuelve los claims del contexto (después del middleware de auth).
func ClaimsFromCtx(c *fiber.Ctx) *jwt.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}

// TenantFromCtx devuelve el tenant del caller; vacío significa súper-tenant
// (sin filtro en el gateway de recursos).
func TenantFromCtx(c *fiber.Ctx) string {
	if claims := ClaimsFromCtx(c); claims != nil {
		return claims.TenantID
	}
	return ""
}
