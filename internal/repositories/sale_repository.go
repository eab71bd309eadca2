package repository

import (
	"context"
	"fmt"

	"github.com/tokoretail/retail-platform/internal/models"
)

type SaleRepository interface {
	ListSales(ctx context.Context) ([]*models.Sale, error)
	GetSaleByID(ctx context.Context, id int64) (*models.Sale, error)
	CreateSale(ctx context.Context, sale *models.Sale) error
	DeleteSale(ctx context.Context, id int64) error
	ListSaleItems(ctx context.Context, saleID int64) ([]models.SaleItem, error)
	CreateSaleItem(ctx context.Context, item *models.SaleItem) error
}

type saleRepository struct {
	DB DBTX
}

func NewSaleRepo(db DBTX) SaleRepository {
	return &saleRepository{DB: db}
}

const saleSelect = `
		SELECT s.id, s.customer_id, s.user_id, s.courier_id, s.sale_date, s.total,
		       c.name, u.username, k.name
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		LEFT JOIN users u ON u.id = s.user_id
		LEFT JOIN couriers k ON k.id = s.courier_id`

func scanSale(row rowScanner) (*models.Sale, error) {
	s := &models.Sale{}

	err := row.Scan(&s.ID, &s.CustomerID, &s.UserID, &s.CourierID, &s.SaleDate, &s.Total,
		&s.CustomerName, &s.Username, &s.CourierName)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ListSales returns sale headers, most recent sale date first.
func (r *saleRepository) ListSales(ctx context.Context) ([]*models.Sale, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, saleSelect+` ORDER BY s.sale_date DESC NULLS LAST, s.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying sales: %w", err)
	}
	defer rows.Close()

	sales := []*models.Sale{}

	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func (r *saleRepository) GetSaleByID(ctx context.Context, id int64) (*models.Sale, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	s, err := scanSale(r.DB.QueryRowContext(dbCtx, saleSelect+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return s, nil
}

func (r *saleRepository) CreateSale(ctx context.Context, sale *models.Sale) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO sales (customer_id, user_id, courier_id, sale_date, total)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	return r.DB.QueryRowContext(dbCtx, query, sale.CustomerID, sale.UserID, sale.CourierID, sale.SaleDate, sale.Total).Scan(&sale.ID)
}

func (r *saleRepository) DeleteSale(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.DB, "DELETE FROM sales WHERE id = $1", id)
}

func (r *saleRepository) ListSaleItems(ctx context.Context, saleID int64) ([]models.SaleItem, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT si.id, si.sale_id, si.product_id, si.quantity, si.price, p.name, p.unit
		FROM sale_items si
		LEFT JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = $1
		ORDER BY si.id`

	rows, err := r.DB.QueryContext(dbCtx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("querying sale items: %w", err)
	}
	defer rows.Close()

	items := []models.SaleItem{}

	for rows.Next() {
		var item models.SaleItem

		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.Price, &item.ProductName, &item.Unit); err != nil {
			return nil, fmt.Errorf("scanning sale item: %w", err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *saleRepository) CreateSaleItem(ctx context.Context, item *models.SaleItem) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO sale_items (sale_id, product_id, quantity, price)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	return r.DB.QueryRowContext(dbCtx, query, item.SaleID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID)
}
