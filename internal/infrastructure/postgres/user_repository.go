package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/livpay-api/internal/domain/entity"
	"github.com/jhoicas/livpay-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, phone, password_hash, role, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. Una violación de unicidad se devuelve como
// *domain.ConflictError con el campo en conflicto.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, phone, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.Phone, user.PasswordHash, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if conflict := mapUniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.findOne(`WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username exacto.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.findOne(`WHERE username = $1`, username)
}

// GetByEmail obtiene un usuario por email. El email se almacena en minúsculas;
// el llamador debe normalizar antes de buscar.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.findOne(`WHERE email = $1`, email)
}

// GetByPhone obtiene un usuario por teléfono.
func (r *UserRepo) GetByPhone(phone string) (*entity.User, error) {
	return r.findOne(`WHERE phone = $1`, phone)
}

func (r *UserRepo) findOne(where string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ` + where
	var u entity.User
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
