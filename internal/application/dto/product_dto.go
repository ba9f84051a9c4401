package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada de actualización; solo se tocan los campos presentes.
type UpdateProductRequest struct {
	Name  string           `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ProductDetailResponse envoltorio de un producto individual.
type ProductDetailResponse struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
}

// ProductListResponse salida de GET /products.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count"`
	Products []ProductResponse `json:"products"`
}
