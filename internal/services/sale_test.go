package service_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/repositories/mocks"
	service "github.com/tokoretail/retail-platform/internal/services"
)

func TestGetSale(t *testing.T) {
	t.Run("Success - Includes items", func(t *testing.T) {
		repo := mocks.NewSaleRepository(t)
		svc := service.NewSaleService(repo)
		qty := 3

		repo.On("GetSaleByID", mock.Anything, int64(1)).Return(&models.Sale{ID: 1}, nil).Once()
		repo.On("ListSaleItems", mock.Anything, int64(1)).Return([]models.SaleItem{{ID: 1, SaleID: 1, ProductID: 2, Quantity: &qty}}, nil).Once()

		sale, err := svc.GetSale(t.Context(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), sale.ID)
		assert.Len(t, sale.Items, 1)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		repo := mocks.NewSaleRepository(t)
		svc := service.NewSaleService(repo)

		repo.On("GetSaleByID", mock.Anything, int64(1)).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.GetSale(t.Context(), 1)

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestCreateSale(t *testing.T) {
	t.Run("Failure - Negative total", func(t *testing.T) {
		svc := service.NewSaleService(mocks.NewSaleRepository(t))
		total := decimal.NewFromInt(-10)

		_, err := svc.CreateSale(t.Context(), &models.CreateSaleRequest{Total: &total})

		requireAppError(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Success", func(t *testing.T) {
		repo := mocks.NewSaleRepository(t)
		svc := service.NewSaleService(repo)
		customer := int64(7)

		repo.On("CreateSale", mock.Anything, mock.MatchedBy(func(s *models.Sale) bool {
			return s.CustomerID != nil && *s.CustomerID == 7
		})).Return(nil).Once()

		sale, err := svc.CreateSale(t.Context(), &models.CreateSaleRequest{CustomerID: &customer})

		require.NoError(t, err)
		assert.Equal(t, &customer, sale.CustomerID)
	})
}

func TestCreateSaleItem(t *testing.T) {
	repo := mocks.NewSaleRepository(t)
	svc := service.NewSaleService(repo)
	price := decimal.NewFromInt(12000)

	repo.On("CreateSaleItem", mock.Anything, mock.AnythingOfType("*models.SaleItem")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.SaleItem).ID = 11
	}).Return(nil).Once()

	item, err := svc.CreateSaleItem(t.Context(), &models.CreateSaleItemRequest{SaleID: 1, ProductID: 2, Price: &price})

	require.NoError(t, err)
	assert.Equal(t, int64(11), item.ID)
}

func TestDashboardStats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := mocks.NewStatsRepository(t)
		svc := service.NewDashboardService(repo)

		repo.On("GetDashboardStats", mock.Anything).Return(&models.DashboardStats{Products: 3, Sales: 2}, nil).Once()

		stats, err := svc.GetStats(t.Context())

		require.NoError(t, err)
		assert.Equal(t, 3, stats.Products)
	})

	t.Run("Failure", func(t *testing.T) {
		repo := mocks.NewStatsRepository(t)
		svc := service.NewDashboardService(repo)

		repo.On("GetDashboardStats", mock.Anything).Return(nil, errors.New("timeout")).Once()

		_, err := svc.GetStats(t.Context())

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}
