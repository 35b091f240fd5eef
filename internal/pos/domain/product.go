package domain

import (
	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"` // unik, boleh kosong
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Category string          `json:"category"`
	Status   ProductStatus   `json:"status"`
}

// Payload dari form "Agregar Producto" di shell. Status selalu active saat dibuat.
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock" binding:"gte=0"`
	Category string          `json:"category"`
}
