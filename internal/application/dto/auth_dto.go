package dto

// RegisterRequest entrada de registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // opcional, default USER
}

// LoginRequest entrada de login: un solo campo identifier que puede ser
// username, email o teléfono; la clasificación decide el campo de búsqueda.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UserResponse vista pública de un usuario (sin hash de password).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// RegisterResponse salida de registro.
type RegisterResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse salida de login con el token de sesión (1 hora, no renovable).
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse salida de GET /auth/profile (campos planos, como la espera la UI).
type ProfileResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}
