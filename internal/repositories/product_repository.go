package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/tokoretail/retail-platform/internal/models"
)

const productColumns = `id, name, category, brand, purchase_price, unit_price, stock_quantity, unit, created_at, updated_at`

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	ListAvailableProducts(ctx context.Context) ([]*models.Product, error)
	SearchProducts(ctx context.Context, params models.ProductSearchParams) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetAvailableProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	DecrementStock(ctx context.Context, id int64, quantity int) error
	WithTx(tx *sql.Tx) ProductRepository
}

type productRepository struct {
	DB DBTX
}

func NewProductRepo(db DBTX) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) WithTx(tx *sql.Tx) ProductRepository {
	return &productRepository{DB: tx}
}

func scanProduct(row rowScanner) (*models.Product, error) {
	p := &models.Product{}

	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Brand, &p.PurchasePrice, &p.UnitPrice, &p.StockQuantity, &p.Unit, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
}

func (r *productRepository) ListAvailableProducts(ctx context.Context) ([]*models.Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE stock_quantity > 0 ORDER BY name`)
}

// SearchProducts returns in-stock products whose name or brand contains
// params.Query, optionally narrowed to categories containing params.Category.
// Both matches are case-insensitive.
func (r *productRepository) SearchProducts(ctx context.Context, params models.ProductSearchParams) ([]*models.Product, error) {

	stmt := psql.Select(productColumns).From("products").Where("stock_quantity > 0")

	if q := strings.TrimSpace(params.Query); q != "" {
		pattern := "%" + q + "%"
		stmt = stmt.Where(sq.Or{sq.ILike{"name": pattern}, sq.ILike{"brand": pattern}})
	}

	if c := strings.TrimSpace(params.Category); c != "" {
		stmt = stmt.Where(sq.ILike{"category": "%" + c + "%"})
	}

	query, args, err := stmt.OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building search: %w", err)
	}

	return r.queryProducts(ctx, query, args...)
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	p, err := scanProduct(r.DB.QueryRowContext(dbCtx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return p, nil
}

func (r *productRepository) GetAvailableProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	p, err := scanProduct(r.DB.QueryRowContext(dbCtx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND stock_quantity > 0`, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return p, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (name, category, brand, purchase_price, unit_price, stock_quantity, unit)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.Category, product.Brand, product.PurchasePrice, product.UnitPrice, product.StockQuantity, product.Unit).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// UpdateProduct changes only the fields present in req. ErrNoFieldsToUpdate
// is returned when req carries nothing.
func (r *productRepository) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	b := NewUpdateBuilder("products", "id")
	SetIfPresent(b, "name", req.Name)
	SetIfPresent(b, "category", req.Category)
	SetIfPresent(b, "brand", req.Brand)
	SetIfPresent(b, "purchase_price", req.PurchasePrice)
	SetIfPresent(b, "unit_price", req.UnitPrice)
	SetIfPresent(b, "stock_quantity", req.StockQuantity)
	SetIfPresent(b, "unit", req.Unit)

	if b.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	query, args, err := b.Build(id, productColumns, "updated_at")
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}

	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	p, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}

	return p, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.DB, "DELETE FROM products WHERE id = $1", id)
}

// DecrementStock removes quantity units from a product only while enough
// stock remains, so concurrent decrements can never drive it negative.
func (r *productRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW()
			  WHERE id = $2 AND stock_quantity >= $1`

	result, err := r.DB.ExecContext(dbCtx, query, quantity, id)
	if err != nil {
		return fmt.Errorf("decrementing stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrementing stock: %w", err)
	}

	if affected == 0 {
		return ErrInsufficientStock
	}

	return nil
}
