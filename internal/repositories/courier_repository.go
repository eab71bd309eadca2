package repository

import (
	"context"
	"fmt"

	"github.com/tokoretail/retail-platform/internal/models"
)

type CourierRepository interface {
	ListCouriers(ctx context.Context) ([]*models.Courier, error)
	GetCourierByID(ctx context.Context, id int64) (*models.Courier, error)
	CreateCourier(ctx context.Context, courier *models.Courier) error
	UpdateCourier(ctx context.Context, id int64, req *models.UpdateCourierRequest) (*models.Courier, error)
	DeleteCourier(ctx context.Context, id int64) error
}

type courierRepository struct {
	DB DBTX
}

func NewCourierRepo(db DBTX) CourierRepository {
	return &courierRepository{DB: db}
}

func (r *courierRepository) ListCouriers(ctx context.Context) ([]*models.Courier, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT id, name, phone, created_at FROM couriers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying couriers: %w", err)
	}
	defer rows.Close()

	couriers := []*models.Courier{}

	for rows.Next() {
		c := &models.Courier{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning courier: %w", err)
		}
		couriers = append(couriers, c)
	}

	return couriers, rows.Err()
}

func (r *courierRepository) GetCourierByID(ctx context.Context, id int64) (*models.Courier, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	c := &models.Courier{}

	err := r.DB.QueryRowContext(dbCtx, `SELECT id, name, phone, created_at FROM couriers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return c, nil
}

func (r *courierRepository) CreateCourier(ctx context.Context, courier *models.Courier) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	return r.DB.QueryRowContext(dbCtx, `INSERT INTO couriers (name, phone) VALUES ($1, $2) RETURNING id, created_at`, courier.Name, courier.Phone).
		Scan(&courier.ID, &courier.CreatedAt)
}

func (r *courierRepository) UpdateCourier(ctx context.Context, id int64, req *models.UpdateCourierRequest) (*models.Courier, error) {

	b := NewUpdateBuilder("couriers", "id")
	SetIfPresent(b, "name", req.Name)
	SetIfPresent(b, "phone", req.Phone)

	if b.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	query, args, err := b.Build(id, "id, name, phone, created_at")
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}

	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	c := &models.Courier{}

	if err := r.DB.QueryRowContext(dbCtx, query, args...).Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("updating courier: %w", err)
	}

	return c, nil
}

func (r *courierRepository) DeleteCourier(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.DB, "DELETE FROM couriers WHERE id = $1", id)
}
