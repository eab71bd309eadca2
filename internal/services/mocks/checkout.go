package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type CheckoutService struct {
	mock.Mock
}

func (_m *CheckoutService) Checkout(ctx context.Context, customerID int64) (*models.Order, error) {
	ret := _m.Called(ctx, customerID)
	return testutils.Ret[*models.Order](ret, 0), ret.Error(1)
}

func NewCheckoutService(t testutils.TestingT) *CheckoutService {
	m := &CheckoutService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
