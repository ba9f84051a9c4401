package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/livpay-api/internal/application/dto"
	"github.com/jhoicas/livpay-api/internal/domain"
	"github.com/jhoicas/livpay-api/internal/domain/entity"
	"github.com/jhoicas/livpay-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de planes. La escritura es solo para ADMIN;
// esa regla vive en el gate de rutas, no aquí.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. Price debe ser >= 0.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, &domain.FieldError{Field: "name", Message: "Name and price are required", Err: domain.ErrInvalidFormat}
	}
	if in.Price.IsNegative() {
		return nil, &domain.FieldError{Field: "price", Message: "Price must be a positive number", Err: domain.ErrInvalidFormat}
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo, más reciente primero.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Success: true, Count: len(out), Products: out}, nil
}

// Update modifica solo los campos presentes en la petición.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price != nil && in.Price.IsNegative() {
		return nil, &domain.FieldError{Field: "price", Message: "Price must be a positive number", Err: domain.ErrInvalidFormat}
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
}
