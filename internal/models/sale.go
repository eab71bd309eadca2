package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID           int64            `json:"id"`
	CustomerID   *int64           `json:"customer_id,omitempty"`
	UserID       *int64           `json:"user_id,omitempty"`
	CourierID    *int64           `json:"courier_id,omitempty"`
	SaleDate     *time.Time       `json:"sale_date,omitempty"`
	Total        *decimal.Decimal `json:"total,omitempty"`
	CustomerName *string          `json:"customer_name,omitempty"`
	Username     *string          `json:"username,omitempty"`
	CourierName  *string          `json:"courier_name,omitempty"`
}

type SaleItem struct {
	ID          int64            `json:"id"`
	SaleID      int64            `json:"sale_id"`
	ProductID   int64            `json:"product_id"`
	Quantity    *int             `json:"quantity,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ProductName *string          `json:"product_name,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
}

type CreateSaleRequest struct {
	CustomerID *int64           `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	UserID     *int64           `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	CourierID  *int64           `json:"courier_id,omitempty" validate:"omitempty,gt=0"`
	SaleDate   *time.Time       `json:"sale_date,omitempty"`
	Total      *decimal.Decimal `json:"total,omitempty"`
}

type CreateSaleItemRequest struct {
	SaleID    int64            `json:"-"`
	ProductID int64            `json:"product_id" validate:"required,gt=0"`
	Quantity  *int             `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}
