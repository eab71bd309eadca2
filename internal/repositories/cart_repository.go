package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/tokoretail/retail-platform/internal/models"
)

type CartRepository interface {
	GetCartItems(ctx context.Context, customerID int64) ([]models.CartItem, error)
	GetItem(ctx context.Context, itemID int64) (*models.CartItem, error)
	AddItem(ctx context.Context, customerID, productID int64, quantity int) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*models.CartItem, error)
	RemoveItem(ctx context.Context, itemID int64) error
	ClearCart(ctx context.Context, customerID int64) (int64, error)
	ListCheckoutItems(ctx context.Context, customerID int64) ([]models.CheckoutLine, error)
	DeleteCheckedOutItems(ctx context.Context, customerID int64, itemIDs []int64) (int64, error)
	WithTx(tx *sql.Tx) CartRepository
}

type cartRepository struct {
	DB DBTX
}

func NewCartRepo(db DBTX) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) WithTx(tx *sql.Tx) CartRepository {
	return &cartRepository{DB: tx}
}

func (r *cartRepository) GetCartItems(ctx context.Context, customerID int64) ([]models.CartItem, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.customer_id, c.product_id, c.quantity, c.created_at,
		       p.name, p.unit_price, p.stock_quantity, p.unit
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.customer_id = $1
		ORDER BY c.created_at DESC, c.id DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("querying cart: %w", err)
	}
	defer rows.Close()

	items := []models.CartItem{}

	for rows.Next() {
		var item models.CartItem

		err := rows.Scan(&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&item.ProductName, &item.UnitPrice, &item.StockQuantity, &item.Unit)
		if err != nil {
			return nil, fmt.Errorf("scanning cart item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cart: %w", err)
	}

	return items, nil
}

func (r *cartRepository) GetItem(ctx context.Context, itemID int64) (*models.CartItem, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	item := &models.CartItem{}

	query := `SELECT id, customer_id, product_id, quantity, created_at FROM cart_items WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, itemID).Scan(&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return item, nil
}

// AddItem inserts a cart line or, when the customer already has the product
// in the cart, adds quantity to the existing line.
func (r *cartRepository) AddItem(ctx context.Context, customerID, productID int64, quantity int) (*models.CartItem, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	item := &models.CartItem{}

	query := `
		INSERT INTO cart_items (customer_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, customer_id, product_id, quantity, created_at`

	err := r.DB.QueryRowContext(dbCtx, query, customerID, productID, quantity).
		Scan(&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("adding cart item: %w", err)
	}

	return item, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*models.CartItem, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	item := &models.CartItem{}

	query := `UPDATE cart_items SET quantity = $1 WHERE id = $2
			  RETURNING id, customer_id, product_id, quantity, created_at`

	err := r.DB.QueryRowContext(dbCtx, query, quantity, itemID).
		Scan(&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("updating cart item: %w", err)
	}

	return item, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, itemID int64) error {
	return deleteByID(ctx, r.DB, "DELETE FROM cart_items WHERE id = $1", itemID)
}

// ClearCart deletes every line of the customer's cart and returns how many
// were removed.
func (r *cartRepository) ClearCart(ctx context.Context, customerID int64) (int64, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE customer_id = $1`, customerID)
	if err != nil {
		return 0, fmt.Errorf("clearing cart: %w", err)
	}

	return result.RowsAffected()
}

// ListCheckoutItems reads the customer's cart joined with the current price
// and stock of each product, locking the cart lines and product rows until
// the surrounding transaction ends. Rows come back ordered by product id so
// concurrent checkouts acquire product locks in the same order.
func (r *cartRepository) ListCheckoutItems(ctx context.Context, customerID int64) ([]models.CheckoutLine, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.product_id, p.name, c.quantity, p.unit_price, p.stock_quantity
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.customer_id = $1
		ORDER BY c.product_id
		FOR UPDATE`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("querying checkout items: %w", err)
	}
	defer rows.Close()

	lines := []models.CheckoutLine{}

	for rows.Next() {
		var l models.CheckoutLine

		if err := rows.Scan(&l.CartItemID, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice, &l.StockQuantity); err != nil {
			return nil, fmt.Errorf("scanning checkout item: %w", err)
		}

		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checkout items: %w", err)
	}

	return lines, nil
}

// DeleteCheckedOutItems removes the cart lines that were read for checkout.
// Lines added by a concurrent request after the read are left in place.
func (r *cartRepository) DeleteCheckedOutItems(ctx context.Context, customerID int64, itemIDs []int64) (int64, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE customer_id = $1 AND id = ANY($2)`, customerID, pq.Array(itemIDs))
	if err != nil {
		return 0, fmt.Errorf("clearing cart: %w", err)
	}

	return result.RowsAffected()
}
