package repository

import (
	"context"
	"fmt"

	"github.com/tokoretail/retail-platform/internal/models"
)

type DistributorRepository interface {
	ListDistributors(ctx context.Context) ([]*models.Distributor, error)
	GetDistributorByID(ctx context.Context, id int64) (*models.Distributor, error)
	CreateDistributor(ctx context.Context, distributor *models.Distributor) error
	UpdateDistributor(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Distributor, error)
	DeleteDistributor(ctx context.Context, id int64) error
}

type distributorRepository struct {
	DB DBTX
}

func NewDistributorRepo(db DBTX) DistributorRepository {
	return &distributorRepository{DB: db}
}

const distributorColumns = `id, name, address, phone, created_at`

func scanDistributor(row rowScanner) (*models.Distributor, error) {
	d := &models.Distributor{}

	if err := row.Scan(&d.ID, &d.Name, &d.Address, &d.Phone, &d.CreatedAt); err != nil {
		return nil, err
	}

	return d, nil
}

func (r *distributorRepository) ListDistributors(ctx context.Context) ([]*models.Distributor, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+distributorColumns+` FROM distributors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying distributors: %w", err)
	}
	defer rows.Close()

	distributors := []*models.Distributor{}

	for rows.Next() {
		d, err := scanDistributor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning distributor: %w", err)
		}
		distributors = append(distributors, d)
	}

	return distributors, rows.Err()
}

func (r *distributorRepository) GetDistributorByID(ctx context.Context, id int64) (*models.Distributor, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	d, err := scanDistributor(r.DB.QueryRowContext(dbCtx, `SELECT `+distributorColumns+` FROM distributors WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return d, nil
}

func (r *distributorRepository) CreateDistributor(ctx context.Context, distributor *models.Distributor) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO distributors (name, address, phone) VALUES ($1, $2, $3) RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, distributor.Name, distributor.Address, distributor.Phone).Scan(&distributor.ID, &distributor.CreatedAt)
}

func (r *distributorRepository) UpdateDistributor(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Distributor, error) {

	b := NewUpdateBuilder("distributors", "id")
	SetIfPresent(b, "name", req.Name)
	SetIfPresent(b, "address", req.Address)
	SetIfPresent(b, "phone", req.Phone)

	if b.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	query, args, err := b.Build(id, distributorColumns)
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}

	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	d, err := scanDistributor(r.DB.QueryRowContext(dbCtx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("updating distributor: %w", err)
	}

	return d, nil
}

func (r *distributorRepository) DeleteDistributor(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.DB, "DELETE FROM distributors WHERE id = $1", id)
}
