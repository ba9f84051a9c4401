package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/livpay-api/internal/application/dto"
	"github.com/jhoicas/livpay-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token y deja {user_id, role} en c.Locals.
// Es una máquina lineal sin reintentos: header ausente o mal formado, token
// expirado, firma inválida o payload incompleto terminan la petición con 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthenticated(c, "Authentication required. Please provide a valid token.")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthenticated(c, "Authentication required. Please provide a valid token.")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthenticated(c, "Token missing")
		}

		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrExpired):
				return unauthenticated(c, "Token expired. Please login again.")
			case errors.Is(err, jwt.ErrMalformedPayload):
				return unauthenticated(c, "Invalid token payload")
			default:
				return unauthenticated(c, "Invalid token. Please login again.")
			}
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza solo los roles listados, por igualdad exacta (ADMIN
// requerido rechaza USER; no hay jerarquía). Debe ir DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return unauthenticated(c, "Authentication required. Please provide a valid token.")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Success: false,
			Message: "Access denied: insufficient permissions",
		})
	}
}

func unauthenticated(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Message: message})
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
