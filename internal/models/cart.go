package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`

	// Product columns joined in for display.
	ProductName   string          `json:"product_name,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	Unit          *string         `json:"unit,omitempty"`
}

type Cart struct {
	CustomerID int64           `json:"customer_id"`
	Items      []CartItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
}

// AddItemRequest.CustomerID may be omitted when the request carries a
// customer session.
type AddItemRequest struct {
	CustomerID int64 `json:"customer_id" validate:"omitempty,gt=0"`
	ProductID  int64 `json:"product_id" validate:"required,gt=0"`
	Quantity   int   `json:"quantity" validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CheckoutLine is a cart row read inside the checkout transaction together
// with the current state of the product it references.
type CheckoutLine struct {
	CartItemID    int64
	ProductID     int64
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
	StockQuantity int
}

// Subtotal returns quantity × unit price.
func (l CheckoutLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
