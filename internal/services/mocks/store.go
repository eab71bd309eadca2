package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type StoreService struct {
	mock.Mock
}

func (_m *StoreService) ListAvailableProducts(ctx context.Context) ([]*models.Product, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Product](ret, 0), ret.Error(1)
}

func (_m *StoreService) GetAvailableProduct(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Product](ret, 0), ret.Error(1)
}

func (_m *StoreService) SearchProducts(ctx context.Context, params models.ProductSearchParams) ([]*models.Product, error) {
	ret := _m.Called(ctx, params)
	return testutils.Ret[[]*models.Product](ret, 0), ret.Error(1)
}

func (_m *StoreService) ListCustomerOrders(ctx context.Context, customerID int64) ([]*models.Order, error) {
	ret := _m.Called(ctx, customerID)
	return testutils.Ret[[]*models.Order](ret, 0), ret.Error(1)
}

func (_m *StoreService) GetOrderDetails(ctx context.Context, orderID int64) (*models.Order, error) {
	ret := _m.Called(ctx, orderID)
	return testutils.Ret[*models.Order](ret, 0), ret.Error(1)
}

func (_m *StoreService) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error) {
	ret := _m.Called(ctx, orderID, status)
	return testutils.Ret[*models.Order](ret, 0), ret.Error(1)
}

func NewStoreService(t testutils.TestingT) *StoreService {
	m := &StoreService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
