package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrInvalidCredentials cubre tanto usuario inexistente como password incorrecto:
// el login nunca distingue entre ambos para no permitir enumeración de usuarios.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrSaleNotFound       = errors.New("venta no encontrada")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUsernameTaken      = errors.New("el username ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
)
