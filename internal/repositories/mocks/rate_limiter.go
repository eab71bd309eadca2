package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type RateLimitRepository struct {
	mock.Mock
}

func (_m *RateLimitRepository) CheckCheckoutRateLimit(ctx context.Context, customerID int64) (bool, int, int, error) {
	ret := _m.Called(ctx, customerID)
	return testutils.Ret[bool](ret, 0), testutils.Ret[int](ret, 1), testutils.Ret[int](ret, 2), ret.Error(3)
}

func NewRateLimitRepository(t testutils.TestingT) *RateLimitRepository {
	m := &RateLimitRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
