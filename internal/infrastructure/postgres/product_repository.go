package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/livpay-api/internal/domain"
	"github.com/jhoicas/livpay-api/internal/domain/entity"
	"github.com/jhoicas/livpay-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db DB
}

// NewProductRepository construye el adaptador de persistencia para el catálogo.
func NewProductRepository(db DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// List devuelve el catálogo completo, más reciente primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM products ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y precio.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `UPDATE products SET name = $2, price = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto; domain.ErrNotFound si el id no existe.
func (r *ProductRepo) Delete(id string) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
