package repository

import (
	"context"
	"fmt"

	"github.com/tokoretail/retail-platform/internal/models"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomer(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerRepository struct {
	DB DBTX
}

func NewCustomerRepo(db DBTX) CustomerRepository {
	return &customerRepository{DB: db}
}

const customerColumns = `id, name, address, phone, created_at`

func scanCustomer(row rowScanner) (*models.Customer, error) {
	c := &models.Customer{}

	if err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.CreatedAt); err != nil {
		return nil, err
	}

	return c, nil
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+customerColumns+` FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	c, err := scanCustomer(r.DB.QueryRowContext(dbCtx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return c, nil
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO customers (name, address, phone) VALUES ($1, $2, $3) RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, customer.Name, customer.Address, customer.Phone).Scan(&customer.ID, &customer.CreatedAt)
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Customer, error) {

	b := NewUpdateBuilder("customers", "id")
	SetIfPresent(b, "name", req.Name)
	SetIfPresent(b, "address", req.Address)
	SetIfPresent(b, "phone", req.Phone)

	if b.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	query, args, err := b.Build(id, customerColumns)
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}

	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	c, err := scanCustomer(r.DB.QueryRowContext(dbCtx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	return c, nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.DB, "DELETE FROM customers WHERE id = $1", id)
}
