package service

import (
	"context"

	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/utils"
)

type CourierService interface {
	ListCouriers(ctx context.Context) ([]*models.Courier, error)
	GetCourier(ctx context.Context, id int64) (*models.Courier, error)
	CreateCourier(ctx context.Context, req *models.CreateCourierRequest) (*models.Courier, error)
	UpdateCourier(ctx context.Context, id int64, req *models.UpdateCourierRequest) (*models.Courier, error)
	DeleteCourier(ctx context.Context, id int64) error
}

type courierService struct {
	repo repository.CourierRepository
}

func NewCourierService(repo repository.CourierRepository) CourierService {
	return &courierService{repo: repo}
}

func (s *courierService) ListCouriers(ctx context.Context) ([]*models.Courier, error) {

	couriers, err := s.repo.ListCouriers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch couriers").WithError(err)
	}

	return couriers, nil
}

func (s *courierService) GetCourier(ctx context.Context, id int64) (*models.Courier, error) {

	courier, err := s.repo.GetCourierByID(ctx, id)
	if err != nil {
		return nil, readError(err, "Courier")
	}

	return courier, nil
}

func (s *courierService) CreateCourier(ctx context.Context, req *models.CreateCourierRequest) (*models.Courier, error) {

	courier := &models.Courier{
		Name:  utils.SanitizeText(req.Name),
		Phone: utils.SanitizeOptional(req.Phone),
	}

	if courier.Name == "" {
		return nil, errors.AddValidationError("name", "must not be empty")
	}

	if err := s.repo.CreateCourier(ctx, courier); err != nil {
		return nil, writeError(err, "Courier", "create")
	}

	return courier, nil
}

func (s *courierService) UpdateCourier(ctx context.Context, id int64, req *models.UpdateCourierRequest) (*models.Courier, error) {

	req.Name = utils.SanitizeOptional(req.Name)
	req.Phone = utils.SanitizeOptional(req.Phone)

	courier, err := s.repo.UpdateCourier(ctx, id, req)
	if err != nil {
		return nil, writeError(err, "Courier", "update")
	}

	return courier, nil
}

func (s *courierService) DeleteCourier(ctx context.Context, id int64) error {

	if err := s.repo.DeleteCourier(ctx, id); err != nil {
		return writeError(err, "Courier", "delete")
	}

	return nil
}
