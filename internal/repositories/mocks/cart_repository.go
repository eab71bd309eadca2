package mocks

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type CartRepository struct {
	mock.Mock
}

func (_m *CartRepository) GetCartItems(ctx context.Context, customerID int64) ([]models.CartItem, error) {
	ret := _m.Called(ctx, customerID)
	return testutils.Ret[[]models.CartItem](ret, 0), ret.Error(1)
}

func (_m *CartRepository) GetItem(ctx context.Context, itemID int64) (*models.CartItem, error) {
	ret := _m.Called(ctx, itemID)
	return testutils.Ret[*models.CartItem](ret, 0), ret.Error(1)
}

func (_m *CartRepository) AddItem(ctx context.Context, customerID int64, productID int64, quantity int) (*models.CartItem, error) {
	ret := _m.Called(ctx, customerID, productID, quantity)
	return testutils.Ret[*models.CartItem](ret, 0), ret.Error(1)
}

func (_m *CartRepository) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*models.CartItem, error) {
	ret := _m.Called(ctx, itemID, quantity)
	return testutils.Ret[*models.CartItem](ret, 0), ret.Error(1)
}

func (_m *CartRepository) RemoveItem(ctx context.Context, itemID int64) error {
	ret := _m.Called(ctx, itemID)
	return ret.Error(0)
}

func (_m *CartRepository) ClearCart(ctx context.Context, customerID int64) (int64, error) {
	ret := _m.Called(ctx, customerID)
	return testutils.Ret[int64](ret, 0), ret.Error(1)
}

func (_m *CartRepository) ListCheckoutItems(ctx context.Context, customerID int64) ([]models.CheckoutLine, error) {
	ret := _m.Called(ctx, customerID)
	return testutils.Ret[[]models.CheckoutLine](ret, 0), ret.Error(1)
}

func (_m *CartRepository) DeleteCheckedOutItems(ctx context.Context, customerID int64, itemIDs []int64) (int64, error) {
	ret := _m.Called(ctx, customerID, itemIDs)
	return testutils.Ret[int64](ret, 0), ret.Error(1)
}

func (_m *CartRepository) WithTx(tx *sql.Tx) repository.CartRepository {
	ret := _m.Called(tx)
	return testutils.Ret[repository.CartRepository](ret, 0)
}

func NewCartRepository(t testutils.TestingT) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
