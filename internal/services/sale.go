package service

import (
	"context"

	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
)

// SaleDetails is a sale header with its line items.
type SaleDetails struct {
	*models.Sale
	Items []models.SaleItem `json:"items"`
}

type SaleService interface {
	ListSales(ctx context.Context) ([]*models.Sale, error)
	GetSale(ctx context.Context, id int64) (*SaleDetails, error)
	CreateSale(ctx context.Context, req *models.CreateSaleRequest) (*models.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
	ListSaleItems(ctx context.Context, saleID int64) ([]models.SaleItem, error)
	CreateSaleItem(ctx context.Context, req *models.CreateSaleItemRequest) (*models.SaleItem, error)
}

type saleService struct {
	repo repository.SaleRepository
}

func NewSaleService(repo repository.SaleRepository) SaleService {
	return &saleService{repo: repo}
}

func (s *saleService) ListSales(ctx context.Context) ([]*models.Sale, error) {

	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch sales").WithError(err)
	}

	return sales, nil
}

func (s *saleService) GetSale(ctx context.Context, id int64) (*SaleDetails, error) {

	sale, err := s.repo.GetSaleByID(ctx, id)
	if err != nil {
		return nil, readError(err, "Sale")
	}

	items, err := s.repo.ListSaleItems(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch sale items").WithError(err)
	}

	return &SaleDetails{Sale: sale, Items: items}, nil
}

func (s *saleService) CreateSale(ctx context.Context, req *models.CreateSaleRequest) (*models.Sale, error) {

	if req.Total != nil && req.Total.IsNegative() {
		return nil, errors.AddValidationError("total", "must not be negative")
	}

	sale := &models.Sale{
		CustomerID: req.CustomerID,
		UserID:     req.UserID,
		CourierID:  req.CourierID,
		SaleDate:   req.SaleDate,
		Total:      req.Total,
	}

	if err := s.repo.CreateSale(ctx, sale); err != nil {
		return nil, writeError(err, "Sale", "create")
	}

	return sale, nil
}

func (s *saleService) DeleteSale(ctx context.Context, id int64) error {

	if err := s.repo.DeleteSale(ctx, id); err != nil {
		return writeError(err, "Sale", "delete")
	}

	return nil
}

func (s *saleService) ListSaleItems(ctx context.Context, saleID int64) ([]models.SaleItem, error) {

	if _, err := s.repo.GetSaleByID(ctx, saleID); err != nil {
		return nil, readError(err, "Sale")
	}

	items, err := s.repo.ListSaleItems(ctx, saleID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch sale items").WithError(err)
	}

	return items, nil
}

func (s *saleService) CreateSaleItem(ctx context.Context, req *models.CreateSaleItemRequest) (*models.SaleItem, error) {

	if req.Price != nil && req.Price.IsNegative() {
		return nil, errors.AddValidationError("price", "must not be negative")
	}

	item := &models.SaleItem{
		SaleID:    req.SaleID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     req.Price,
	}

	if err := s.repo.CreateSaleItem(ctx, item); err != nil {
		return nil, writeError(err, "Sale item", "create")
	}

	return item, nil
}
