package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/livpay-api/internal/application/dto"
	"github.com/jhoicas/livpay-api/internal/application/validation"
	"github.com/jhoicas/livpay-api/internal/domain"
	"github.com/jhoicas/livpay-api/internal/domain/entity"
	"github.com/jhoicas/livpay-api/internal/domain/repository"
	"github.com/jhoicas/livpay-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register valida los cuatro campos (fail-fast, en orden username, email, phone,
// password), hace pre-check de unicidad para un mensaje amable y persiste con
// bcrypt. El pre-check NO es atómico con el insert: ante una carrera, el
// constraint único de la DB es quien decide y el repo lo mapea a ConflictError.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePhone(in.Phone); err != nil {
		return nil, err
	}
	if err := validation.ValidatePasswordStrength(in.Password); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.IsValidRole(role) {
		return nil, &domain.FieldError{Field: "role", Message: "Role must be USER or ADMIN", Err: domain.ErrInvalidFormat}
	}

	email := validation.NormalizeEmail(in.Email)

	if existing, _ := uc.users.GetByUsername(in.Username); existing != nil {
		return nil, &domain.ConflictError{Field: "username"}
	}
	if existing, _ := uc.users.GetByEmail(email); existing != nil {
		return nil, &domain.ConflictError{Field: "email"}
	}
	if existing, _ := uc.users.GetByPhone(in.Phone); existing != nil {
		return nil, &domain.ConflictError{Field: "phone"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login clasifica el identifier para elegir el campo de búsqueda, verifica el
// password contra el hash y emite el token. "Usuario inexistente" y "password
// incorrecto" devuelven el mismo error para no filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, *dto.UserResponse, error) {
	var (
		user *entity.User
		err  error
	)
	switch validation.ClassifyIdentifier(in.Identifier) {
	case validation.IdentifierEmail:
		user, err = uc.users.GetByEmail(validation.NormalizeEmail(in.Identifier))
	case validation.IdentifierPhone:
		user, err = uc.users.GetByPhone(in.Identifier)
	default:
		user, err = uc.users.GetByUsername(in.Identifier)
	}
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, toUserResponse(user), nil
}

// GetProfile devuelve la vista pública del usuario o ErrNotFound si ya no existe
// (por ejemplo, borrado después de emitir el token).
func (uc *AuthUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}
