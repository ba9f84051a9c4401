package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/livpay-api/internal/domain"
)

// DB es el subconjunto de pgxpool.Pool que usan los repositorios. Permite
// reemplazar el pool por pgxmock en los tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// mapUniqueViolation convierte una violación de constraint único (23505) en el
// ConflictError del dominio, deduciendo el campo desde el nombre del constraint.
// Devuelve nil si el error no es una violación de unicidad.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return &domain.ConflictError{Field: "username"}
	case strings.Contains(pgErr.ConstraintName, "email"):
		return &domain.ConflictError{Field: "email"}
	case strings.Contains(pgErr.ConstraintName, "phone"):
		return &domain.ConflictError{Field: "phone"}
	}
	return &domain.ConflictError{}
}
