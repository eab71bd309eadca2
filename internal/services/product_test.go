package service_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tokoretail/retail-platform/internal/cache"
	cacheMocks "github.com/tokoretail/retail-platform/internal/cache/mocks"
	appErrors "github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/repositories/mocks"
	service "github.com/tokoretail/retail-platform/internal/services"
)

func strPtr(s string) *string { return &s }

func setupProductTest(t *testing.T) (service.ProductService, *mocks.ProductRepository, *cacheMocks.Cache) {
	t.Helper()

	repo := mocks.NewProductRepository(t)
	productCache := cacheMocks.NewCache(t)

	return service.NewProductService(repo, productCache), repo, productCache
}

func TestCreateProduct(t *testing.T) {
	t.Run("Success - Sanitized and cached listing dropped", func(t *testing.T) {
		// Arrange
		svc, repo, productCache := setupProductTest(t)
		req := &models.CreateProductRequest{
			Name:          "<b>Beras</b> 5kg",
			Category:      strPtr("Sembako"),
			PurchasePrice: decimal.NewFromInt(60000),
			UnitPrice:     decimal.NewFromInt(72500),
			StockQuantity: 12,
		}

		repo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == "Beras 5kg" && p.StockQuantity == 12
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = 42
		}).Return(nil).Once()
		productCache.On("Delete", mock.Anything, cache.ProductKeys(42)).Return(nil).Once()

		// Act
		product, err := svc.CreateProduct(t.Context(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(42), product.ID)
		assert.Equal(t, "Beras 5kg", product.Name)
		assert.True(t, decimal.NewFromInt(72500).Equal(product.UnitPrice))
	})

	t.Run("Failure - Negative price", func(t *testing.T) {
		svc, _, _ := setupProductTest(t)

		product, err := svc.CreateProduct(t.Context(), &models.CreateProductRequest{
			Name:      "Kopi",
			UnitPrice: decimal.NewFromInt(-1),
		})

		assert.Nil(t, product)
		requireAppError(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Name empty after sanitizing", func(t *testing.T) {
		svc, _, _ := setupProductTest(t)

		_, err := svc.CreateProduct(t.Context(), &models.CreateProductRequest{Name: "<script></script>"})

		requireAppError(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		svc, repo, _ := setupProductTest(t)

		repo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(errors.New("connection refused")).Once()

		_, err := svc.CreateProduct(t.Context(), &models.CreateProductRequest{Name: "Kopi"})

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := setupProductTest(t)
		repo.On("GetProductByID", mock.Anything, int64(1)).Return(&models.Product{ID: 1, Name: "Beras"}, nil).Once()

		product, err := svc.GetProduct(t.Context(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Beras", product.Name)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		svc, repo, _ := setupProductTest(t)
		repo.On("GetProductByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows).Once()

		product, err := svc.GetProduct(t.Context(), 99)

		assert.Nil(t, product)
		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo, productCache := setupProductTest(t)
		stock := 30
		req := &models.UpdateProductRequest{StockQuantity: &stock}

		repo.On("UpdateProduct", mock.Anything, int64(5), req).Return(&models.Product{ID: 5, StockQuantity: 30}, nil).Once()
		productCache.On("Delete", mock.Anything, cache.ProductKeys(5)).Return(nil).Once()

		product, err := svc.UpdateProduct(t.Context(), 5, req)

		require.NoError(t, err)
		assert.Equal(t, 30, product.StockQuantity)
	})

	t.Run("Failure - No fields", func(t *testing.T) {
		svc, repo, _ := setupProductTest(t)
		req := &models.UpdateProductRequest{}

		repo.On("UpdateProduct", mock.Anything, int64(5), req).Return(nil, repository.ErrNoFieldsToUpdate).Once()

		_, err := svc.UpdateProduct(t.Context(), 5, req)

		requireAppError(t, err, appErrors.ErrCodeInvalidArgument)
	})

	t.Run("Failure - Check constraint", func(t *testing.T) {
		svc, repo, _ := setupProductTest(t)
		req := &models.UpdateProductRequest{Name: strPtr("Kopi")}

		repo.On("UpdateProduct", mock.Anything, int64(5), req).Return(nil, &pq.Error{Code: "23514", Constraint: "products_stock_quantity_check"}).Once()

		_, err := svc.UpdateProduct(t.Context(), 5, req)

		appErr := requireAppError(t, err, appErrors.ErrCodeInvalidArgument)
		assert.Equal(t, "products_stock_quantity_check", appErr.Detail)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("Success - Cache failure is not fatal", func(t *testing.T) {
		svc, repo, productCache := setupProductTest(t)

		repo.On("DeleteProduct", mock.Anything, int64(3)).Return(nil).Once()
		productCache.On("Delete", mock.Anything, cache.ProductKeys(3)).Return(errors.New("redis down")).Once()

		assert.NoError(t, svc.DeleteProduct(t.Context(), 3))
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		svc, repo, _ := setupProductTest(t)

		repo.On("DeleteProduct", mock.Anything, int64(3)).Return(sql.ErrNoRows).Once()

		requireAppError(t, svc.DeleteProduct(t.Context(), 3), appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Referenced by an order", func(t *testing.T) {
		svc, repo, _ := setupProductTest(t)

		repo.On("DeleteProduct", mock.Anything, int64(3)).Return(&pq.Error{Code: "23503"}).Once()

		requireAppError(t, svc.DeleteProduct(t.Context(), 3), appErrors.ErrCodeInvalidArgument)
	})
}
