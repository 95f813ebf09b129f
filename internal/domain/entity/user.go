package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema. Se crea en aprovisionamiento y es
// inmutable durante la operación normal. TenantID vacío marca un súper-tenant
// que ve todas las colecciones sin filtrar.
// Los tags json corresponden al documento persistido; las respuestas HTTP
// salen siempre por DTOs y nunca exponen el hash.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"` // bcrypt hash, nunca plano después de persistir
	FullName     string `json:"fullName"`
	Role         string `json:"role"` // admin, user
	TenantID     string `json:"tenantId,omitempty"`
}
