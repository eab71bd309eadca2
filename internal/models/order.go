package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`

	ProductName string  `json:"product_name,omitempty"`
	Unit        *string `json:"unit,omitempty"`
}

// Subtotal returns quantity × the unit price paid.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID           int64           `json:"id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName *string         `json:"customer_name,omitempty"`
	OrderDate    time.Time       `json:"order_date"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Items        []OrderItem     `json:"items,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CheckoutRequest struct {
	CustomerID      int64  `json:"customer_id" validate:"omitempty,gt=0"`
	ShippingAddress string `json:"shipping_address,omitempty" validate:"omitempty,max=500"`
	Note            string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}
