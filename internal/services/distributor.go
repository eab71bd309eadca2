package service

import (
	"context"

	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/utils"
)

type DistributorService interface {
	ListDistributors(ctx context.Context) ([]*models.Distributor, error)
	GetDistributor(ctx context.Context, id int64) (*models.Distributor, error)
	CreateDistributor(ctx context.Context, req *models.CreateContactRequest) (*models.Distributor, error)
	UpdateDistributor(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Distributor, error)
	DeleteDistributor(ctx context.Context, id int64) error
}

type distributorService struct {
	repo repository.DistributorRepository
}

func NewDistributorService(repo repository.DistributorRepository) DistributorService {
	return &distributorService{repo: repo}
}

func (s *distributorService) ListDistributors(ctx context.Context) ([]*models.Distributor, error) {

	distributors, err := s.repo.ListDistributors(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch distributors").WithError(err)
	}

	return distributors, nil
}

func (s *distributorService) GetDistributor(ctx context.Context, id int64) (*models.Distributor, error) {

	distributor, err := s.repo.GetDistributorByID(ctx, id)
	if err != nil {
		return nil, readError(err, "Distributor")
	}

	return distributor, nil
}

func (s *distributorService) CreateDistributor(ctx context.Context, req *models.CreateContactRequest) (*models.Distributor, error) {

	distributor := &models.Distributor{
		Name:    utils.SanitizeText(req.Name),
		Address: utils.SanitizeOptional(req.Address),
		Phone:   utils.SanitizeOptional(req.Phone),
	}

	if distributor.Name == "" {
		return nil, errors.AddValidationError("name", "must not be empty")
	}

	if err := s.repo.CreateDistributor(ctx, distributor); err != nil {
		return nil, writeError(err, "Distributor", "create")
	}

	return distributor, nil
}

func (s *distributorService) UpdateDistributor(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Distributor, error) {

	sanitizeContact(req)

	distributor, err := s.repo.UpdateDistributor(ctx, id, req)
	if err != nil {
		return nil, writeError(err, "Distributor", "update")
	}

	return distributor, nil
}

func (s *distributorService) DeleteDistributor(ctx context.Context, id int64) error {

	if err := s.repo.DeleteDistributor(ctx, id); err != nil {
		return writeError(err, "Distributor", "delete")
	}

	return nil
}
