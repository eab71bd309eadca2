package service

import (
	"context"

	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	repo repository.StatsRepository
}

func NewDashboardService(repo repository.StatsRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {

	stats, err := s.repo.GetDashboardStats(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch dashboard stats").WithError(err)
	}

	return stats, nil
}
