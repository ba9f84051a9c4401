package entity

import "time"

// Roles del sistema. El gate de rutas compara por igualdad exacta, sin jerarquía.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// IsValidRole indica si el rol pertenece al enum {USER, ADMIN}.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User representa una cuenta registrada. Username, Email y Phone son únicos a nivel
// global; la DB es la autoridad final sobre esa unicidad. PasswordHash es bcrypt,
// el texto plano nunca se persiste ni se loguea.
type User struct {
	ID           string
	Username     string // 3-20 chars, alfanumérico + guion bajo, no inicia con dígito
	Email        string // siempre en minúsculas
	Phone        string // 10 dígitos, inicia con 6-9
	PasswordHash string
	Role         string // ver constantes Role*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
