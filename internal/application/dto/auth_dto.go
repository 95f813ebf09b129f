package dto

// LoginRequest entrada para login (username + password en texto plano).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginUser usuario dentro de la respuesta de login. Nunca incluye el hash
// ni el tenant: el tenant viaja solo dentro del token.
type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// LoginResponse salida de login con el bearer token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	User        LoginUser `json:"user"`
}

// ProvisionUserRequest entrada para aprovisionar un usuario (cmd/seed).
// Password en texto, se hashea en el use case.
type ProvisionUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
	TenantID string `json:"tenantId" validate:"omitempty"`
}
