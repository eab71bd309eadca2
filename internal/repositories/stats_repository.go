package repository

import (
	"context"
	"fmt"

	"github.com/tokoretail/retail-platform/internal/models"
)

type StatsRepository interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type statsRepository struct {
	DB DBTX
}

func NewStatsRepo(db DBTX) StatsRepository {
	return &statsRepository{DB: db}
}

func (r *statsRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT (SELECT COUNT(*) FROM products),
		       (SELECT COUNT(*) FROM distributors),
		       (SELECT COUNT(*) FROM customers),
		       (SELECT COUNT(*) FROM couriers),
		       (SELECT COUNT(*) FROM sales)`

	stats := &models.DashboardStats{}

	err := r.DB.QueryRowContext(dbCtx, query).Scan(&stats.Products, &stats.Distributors, &stats.Customers, &stats.Couriers, &stats.Sales)
	if err != nil {
		return nil, fmt.Errorf("querying dashboard stats: %w", err)
	}

	return stats, nil
}
