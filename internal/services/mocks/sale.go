package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	service "github.com/tokoretail/retail-platform/internal/services"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type SaleService struct {
	mock.Mock
}

func (_m *SaleService) ListSales(ctx context.Context) ([]*models.Sale, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Sale](ret, 0), ret.Error(1)
}

func (_m *SaleService) GetSale(ctx context.Context, id int64) (*service.SaleDetails, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*service.SaleDetails](ret, 0), ret.Error(1)
}

func (_m *SaleService) CreateSale(ctx context.Context, req *models.CreateSaleRequest) (*models.Sale, error) {
	ret := _m.Called(ctx, req)
	return testutils.Ret[*models.Sale](ret, 0), ret.Error(1)
}

func (_m *SaleService) DeleteSale(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *SaleService) ListSaleItems(ctx context.Context, saleID int64) ([]models.SaleItem, error) {
	ret := _m.Called(ctx, saleID)
	return testutils.Ret[[]models.SaleItem](ret, 0), ret.Error(1)
}

func (_m *SaleService) CreateSaleItem(ctx context.Context, req *models.CreateSaleItemRequest) (*models.SaleItem, error) {
	ret := _m.Called(ctx, req)
	return testutils.Ret[*models.SaleItem](ret, 0), ret.Error(1)
}

func NewSaleService(t testutils.TestingT) *SaleService {
	m := &SaleService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
