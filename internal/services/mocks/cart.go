package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type CartService struct {
	mock.Mock
}

func (_m *CartService) GetCart(ctx context.Context, customerID int64) (*models.Cart, error) {
	ret := _m.Called(ctx, customerID)
	return testutils.Ret[*models.Cart](ret, 0), ret.Error(1)
}

func (_m *CartService) AddItem(ctx context.Context, req *models.AddItemRequest) (*models.CartItem, error) {
	ret := _m.Called(ctx, req)
	return testutils.Ret[*models.CartItem](ret, 0), ret.Error(1)
}

func (_m *CartService) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*models.CartItem, error) {
	ret := _m.Called(ctx, itemID, quantity)
	return testutils.Ret[*models.CartItem](ret, 0), ret.Error(1)
}

func (_m *CartService) RemoveItem(ctx context.Context, itemID int64) error {
	ret := _m.Called(ctx, itemID)
	return ret.Error(0)
}

func (_m *CartService) ClearCart(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)
	return ret.Error(0)
}

func NewCartService(t testutils.TestingT) *CartService {
	m := &CartService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
