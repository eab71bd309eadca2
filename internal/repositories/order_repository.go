package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tokoretail/retail-platform/internal/models"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error)
	ListOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	WithTx(tx *sql.Tx) OrderRepository
}

type orderRepository struct {
	DB DBTX
}

func NewOrderRepo(db DBTX) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) WithTx(tx *sql.Tx) OrderRepository {
	return &orderRepository{DB: tx}
}

// CreateOrder inserts the order header dated today and fills in the
// generated id, order date and creation time.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO orders (customer_id, order_date, status, total_amount)
			  VALUES ($1, CURRENT_DATE, $2, $3)
			  RETURNING id, order_date, created_at`

	return r.DB.QueryRowContext(dbCtx, query, order.CustomerID, order.Status, order.TotalAmount).
		Scan(&order.ID, &order.OrderDate, &order.CreatedAt)
}

func (r *orderRepository) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	return r.DB.QueryRowContext(dbCtx, query, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.ID)
}

const orderSelect = `
		SELECT o.id, o.customer_id, c.name, o.order_date, o.status, o.total_amount, o.created_at
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id`

func scanOrder(row rowScanner) (*models.Order, error) {
	o := &models.Order{}

	if err := row.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.OrderDate, &o.Status, &o.TotalAmount, &o.CreatedAt); err != nil {
		return nil, err
	}

	return o, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return order, nil
}

// ListOrdersByCustomer returns the customer's orders, newest first.
func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, orderSelect+` WHERE o.customer_id = $1 ORDER BY o.order_date DESC, o.id DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) ListOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, p.name, p.unit
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`

	rows, err := r.DB.QueryContext(dbCtx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		var item models.OrderItem
		var name string

		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &name, &item.Unit); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}

		item.ProductName = name
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order items: %w", err)
	}

	return items, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		WITH updated AS (
			UPDATE orders SET status = $1 WHERE id = $2
			RETURNING id, customer_id, order_date, status, total_amount, created_at
		)
		SELECT u.id, u.customer_id, c.name, u.order_date, u.status, u.total_amount, u.created_at
		FROM updated u
		LEFT JOIN customers c ON c.id = u.customer_id`

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, status, id))
	if err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	return order, nil
}
