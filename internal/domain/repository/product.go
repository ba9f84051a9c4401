package repository

import "github.com/jhoicas/livpay-api/internal/domain/entity"

// ProductRepository puerto de persistencia del catálogo.
// GetByID devuelve (nil, nil) si no existe. Delete devuelve domain.ErrNotFound
// cuando el id no corresponde a ningún producto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
