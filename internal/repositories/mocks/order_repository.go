package mocks

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderRepository) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Order](ret, 0), ret.Error(1)
}

func (_m *OrderRepository) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]*models.Order, error) {
	ret := _m.Called(ctx, customerID)
	return testutils.Ret[[]*models.Order](ret, 0), ret.Error(1)
}

func (_m *OrderRepository) ListOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	ret := _m.Called(ctx, orderID)
	return testutils.Ret[[]models.OrderItem](ret, 0), ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	ret := _m.Called(ctx, id, status)
	return testutils.Ret[*models.Order](ret, 0), ret.Error(1)
}

func (_m *OrderRepository) WithTx(tx *sql.Tx) repository.OrderRepository {
	ret := _m.Called(tx)
	return testutils.Ret[repository.OrderRepository](ret, 0)
}

func NewOrderRepository(t testutils.TestingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
