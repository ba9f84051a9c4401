package repository

import "github.com/jhoicas/livpay-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
// Los Get* devuelven (nil, nil) cuando no hay coincidencia. Create debe devolver
// *domain.ConflictError ante una violación de unicidad: el constraint de la DB es
// la señal autoritativa, los pre-checks del use case son solo un fast path.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByPhone(phone string) (*entity.User, error)
}
