package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Category      *string         `json:"category,omitempty"`
	Brand         *string         `json:"brand,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	Unit          *string         `json:"unit,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Category      *string         `json:"category,omitempty" validate:"omitempty,max=100"`
	Brand         *string         `json:"brand,omitempty" validate:"omitempty,max=100"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	Unit          *string         `json:"unit,omitempty" validate:"omitempty,max=20"`
}

// UpdateProductRequest carries only the fields the caller wants changed.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	Brand         *string          `json:"brand,omitempty" validate:"omitempty,max=100"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	Unit          *string          `json:"unit,omitempty" validate:"omitempty,max=20"`
}

type ProductSearchParams struct {
	Query    string `json:"q"`
	Category string `json:"category"`
}
