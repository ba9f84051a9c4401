package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jhoicas/livpay-api/internal/domain"
)

// Reglas de formato de credenciales. Funciones puras, sin efectos: las usa el
// servicio de auth (fuente de verdad) y el cliente como pre-check de UX.
var (
	usernameRe      = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	startsWithDigit = regexp.MustCompile(`^[0-9]`)
	emailRe         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe         = regexp.MustCompile(`^[0-9]{10}$`)
	phonePrefixRe   = regexp.MustCompile(`^[6-9]`)
	upperRe         = regexp.MustCompile(`[A-Z]`)
	lowerRe         = regexp.MustCompile(`[a-z]`)
	digitRe         = regexp.MustCompile(`[0-9]`)
	specialRe       = regexp.MustCompile(`[^A-Za-z0-9]`)
)

func fieldErr(field, message string, kind error) error {
	return &domain.FieldError{Field: field, Message: message, Err: kind}
}

// ValidateUsername aplica: largo 3-20, solo alfanumérico y guion bajo, no inicia con dígito.
func ValidateUsername(s string) error {
	switch {
	case len(s) < 3:
		return fieldErr("username", "Username must be at least 3 characters", domain.ErrInvalidFormat)
	case len(s) > 20:
		return fieldErr("username", "Username must be less than 20 characters", domain.ErrInvalidFormat)
	case !usernameRe.MatchString(s):
		return fieldErr("username", "Username can only contain letters, numbers, and underscore", domain.ErrInvalidFormat)
	case startsWithDigit.MatchString(s):
		return fieldErr("username", "Username cannot start with a number", domain.ErrInvalidFormat)
	}
	return nil
}

// ValidateEmail exige la forma simple local@dominio.tld sin espacios.
func ValidateEmail(s string) error {
	if !emailRe.MatchString(s) {
		return fieldErr("email", "Invalid email format", domain.ErrInvalidFormat)
	}
	return nil
}

// NormalizeEmail pasa el email a minúsculas; es la forma en que se almacena y se busca.
func NormalizeEmail(s string) string {
	return strings.ToLower(s)
}

// ValidatePhone exige exactamente 10 dígitos con primer dígito en {6,7,8,9}.
func ValidatePhone(s string) error {
	if !phoneRe.MatchString(s) {
		return fieldErr("phone", "Phone must be exactly 10 digits (numbers only)", domain.ErrInvalidFormat)
	}
	if !phonePrefixRe.MatchString(s) {
		return fieldErr("phone", "Phone number should start with 6, 7, 8, or 9", domain.ErrInvalidFormat)
	}
	return nil
}

// ValidatePasswordStrength exige los cinco criterios: largo >= 8, mayúscula,
// minúscula, dígito y carácter especial. Cualquier criterio ausente es rechazo.
func ValidatePasswordStrength(s string) error {
	if PasswordScore(s) < 5 {
		return fieldErr("password",
			"Password must be at least 8 characters and include uppercase, lowercase, number, and special character",
			domain.ErrWeakPassword)
	}
	return nil
}

// PasswordScore cuenta los criterios satisfechos (0-5). Es feedback de UI, no
// condición de error por sí mismo.
func PasswordScore(s string) int {
	score := 0
	if len(s) >= 8 {
		score++
	}
	if upperRe.MatchString(s) {
		score++
	}
	if lowerRe.MatchString(s) {
		score++
	}
	if digitRe.MatchString(s) {
		score++
	}
	if specialRe.MatchString(s) {
		score++
	}
	return score
}

// StrengthLabel etiqueta el score para el medidor de la UI.
func StrengthLabel(score int) string {
	labels := []string{"Very Weak", "Weak", "Fair", "Good", "Strong", "Very Strong"}
	if score < 0 {
		score = 0
	}
	if score >= len(labels) {
		score = len(labels) - 1
	}
	return labels[score]
}

// IdentifierKind clasifica el campo de login libre en username, email o teléfono.
type IdentifierKind int

const (
	IdentifierUsername IdentifierKind = iota
	IdentifierEmail
	IdentifierPhone
)

// ClassifyIdentifier es total y mutuamente excluyente: con forma de email gana
// Email, 10 dígitos exactos gana Phone, todo lo demás es Username. Un numérico de
// 10 dígitos nunca tiene forma de email, así que no hay ambigüedad posible.
func ClassifyIdentifier(s string) IdentifierKind {
	if emailRe.MatchString(s) {
		return IdentifierEmail
	}
	if phoneRe.MatchString(s) {
		return IdentifierPhone
	}
	return IdentifierUsername
}

// ValidateRegistration valida los cuatro campos y devuelve todos los errores a la
// vez, indexados por campo. El use case mantiene el fail-fast sobre estas mismas
// primitivas; este punto de entrada agregador existe para la UI.
func ValidateRegistration(username, email, phone, password string) map[string]string {
	errs := make(map[string]string)
	for _, err := range []error{
		ValidateUsername(username),
		ValidateEmail(email),
		ValidatePhone(phone),
		ValidatePasswordStrength(password),
	} {
		var fe *domain.FieldError
		if errors.As(err, &fe) {
			errs[fe.Field] = fe.Message
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
