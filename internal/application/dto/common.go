package dto

// ErrorResponse cuerpo de error HTTP. Todas las fallas viajan con esta forma;
// el status HTTP lleva la categoría (400, 401, 403, 404, 409, 500).
type ErrorResponse struct {
	Success bool   `json:"success"` // siempre false
	Message string `json:"message"`
}

// MessageResponse confirmación simple sin payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
