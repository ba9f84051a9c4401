package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidFormat      = errors.New("invalid format")
	ErrWeakPassword       = errors.New("weak password")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid username/email/phone or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("resource not found")
	ErrUnavailable        = errors.New("server unreachable")
)

// FieldError es un error de validación atribuible a un campo concreto.
// Message es el texto que viaja al usuario; Err clasifica (ErrInvalidFormat o ErrWeakPassword).
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string { return e.Message }
func (e *FieldError) Unwrap() error { return e.Err }

// ConflictError indica que un identificador único ya existe. Field dice cuál
// (username, email o phone) cuando el constraint de la DB lo permite determinar.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "identifier already exists"
	}
	return fmt.Sprintf("%s already exists", capitalize(e.Field))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-('a'-'A')) + s[1:]
	}
	return s
}
