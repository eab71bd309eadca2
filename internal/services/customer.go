package service

import (
	"context"

	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/utils"
)

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
	CreateCustomer(ctx context.Context, req *models.CreateContactRequest) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch customers").WithError(err)
	}

	return customers, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {

	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, readError(err, "Customer")
	}

	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req *models.CreateContactRequest) (*models.Customer, error) {

	customer := &models.Customer{
		Name:    utils.SanitizeText(req.Name),
		Address: utils.SanitizeOptional(req.Address),
		Phone:   utils.SanitizeOptional(req.Phone),
	}

	if customer.Name == "" {
		return nil, errors.AddValidationError("name", "must not be empty")
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, writeError(err, "Customer", "create")
	}

	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Customer, error) {

	sanitizeContact(req)

	customer, err := s.repo.UpdateCustomer(ctx, id, req)
	if err != nil {
		return nil, writeError(err, "Customer", "update")
	}

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {

	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		return writeError(err, "Customer", "delete")
	}

	return nil
}

func sanitizeContact(req *models.UpdateContactRequest) {
	req.Name = utils.SanitizeOptional(req.Name)
	req.Address = utils.SanitizeOptional(req.Address)
	req.Phone = utils.SanitizeOptional(req.Phone)
}
