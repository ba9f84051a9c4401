package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/livpay-api/internal/application/auth"
	"github.com/jhoicas/livpay-api/internal/application/dto"
	"github.com/jhoicas/livpay-api/internal/domain"
)

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, phone, password, role?"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.Username == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return badRequest(c, "All fields are required")
	}
	user, err := h.uc.Register(in)
	if err != nil {
		return mapAuthError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		User:    *user,
	})
}

// Login godoc
// @Summary      Iniciar sesión con username, email o teléfono
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "identifier, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.Identifier == "" || in.Password == "" {
		return badRequest(c, "Username/Email/Phone and password are required")
	}
	token, user, err := h.uc.Login(in)
	if err != nil {
		return mapAuthError(c, err)
	}
	return c.JSON(dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    *user,
	})
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		return mapAuthError(c, err)
	}
	return c.JSON(dto.ProfileResponse{
		Success:  true,
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
	})
}

// mapAuthError traduce la taxonomía de dominio al status HTTP. Los mensajes de
// validación y conflicto viajan tal cual; los errores internos no cruzan la frontera.
func mapAuthError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat), errors.Is(err, domain.ErrWeakPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "User not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Unexpected error. Please try again."})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: message})
}
