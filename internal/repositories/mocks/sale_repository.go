package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type SaleRepository struct {
	mock.Mock
}

func (_m *SaleRepository) ListSales(ctx context.Context) ([]*models.Sale, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Sale](ret, 0), ret.Error(1)
}

func (_m *SaleRepository) GetSaleByID(ctx context.Context, id int64) (*models.Sale, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Sale](ret, 0), ret.Error(1)
}

func (_m *SaleRepository) CreateSale(ctx context.Context, sale *models.Sale) error {
	ret := _m.Called(ctx, sale)
	return ret.Error(0)
}

func (_m *SaleRepository) DeleteSale(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *SaleRepository) ListSaleItems(ctx context.Context, saleID int64) ([]models.SaleItem, error) {
	ret := _m.Called(ctx, saleID)
	return testutils.Ret[[]models.SaleItem](ret, 0), ret.Error(1)
}

func (_m *SaleRepository) CreateSaleItem(ctx context.Context, item *models.SaleItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func NewSaleRepository(t testutils.TestingT) *SaleRepository {
	m := &SaleRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
