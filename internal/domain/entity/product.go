package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un plan o servicio del catálogo de recargas. Price >= 0.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
