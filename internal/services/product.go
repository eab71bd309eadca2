package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/tokoretail/retail-platform/internal/cache"
	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/requestctx"
	"github.com/tokoretail/retail-platform/internal/utils"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, productCache cache.Cache) ProductService {
	return &productService{repo: repo, cache: productCache}
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, readError(err, "Product")
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	if err := checkPrices(&req.PurchasePrice, &req.UnitPrice); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          utils.SanitizeText(req.Name),
		Category:      utils.SanitizeOptional(req.Category),
		Brand:         utils.SanitizeOptional(req.Brand),
		PurchasePrice: req.PurchasePrice,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
		Unit:          utils.SanitizeOptional(req.Unit),
	}

	if product.Name == "" {
		return nil, errors.AddValidationError("name", "must not be empty")
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, writeError(err, "Product", "create")
	}

	s.invalidate(ctx, product.ID)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	if err := checkPrices(req.PurchasePrice, req.UnitPrice); err != nil {
		return nil, err
	}

	req.Name = utils.SanitizeOptional(req.Name)
	req.Category = utils.SanitizeOptional(req.Category)
	req.Brand = utils.SanitizeOptional(req.Brand)
	req.Unit = utils.SanitizeOptional(req.Unit)

	product, err := s.repo.UpdateProduct(ctx, id, req)
	if err != nil {
		return nil, writeError(err, "Product", "update")
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return writeError(err, "Product", "delete")
	}

	s.invalidate(ctx, id)

	return nil
}

// invalidate drops the storefront entries for a changed product.
func (s *productService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.ProductKeys(id)...); err != nil {
		requestctx.Logger(ctx).Warn("Failed to invalidate product cache", slog.Int64("productID", id), slog.Any("error", err))
	}
}

func checkPrices(prices ...*decimal.Decimal) error {
	for _, p := range prices {
		if p != nil && p.IsNegative() {
			return errors.AddValidationError("price", "must not be negative")
		}
	}

	return nil
}
