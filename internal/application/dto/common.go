package dto

// AuthErrorResponse cuerpo de error para fallas de autenticación: {"error": "..."}.
// MessageResponse cuerpo para fallas de recursos: {"message": "..."}.
// La asimetría entre ambos es comportamiento observado por los consumidores
// de esta API y se conserva por compatibilidad.
type AuthErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo con mensaje de recurso.
type MessageResponse struct {
	Message string `json:"message"`
}
