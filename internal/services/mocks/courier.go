package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type CourierService struct {
	mock.Mock
}

func (_m *CourierService) ListCouriers(ctx context.Context) ([]*models.Courier, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Courier](ret, 0), ret.Error(1)
}

func (_m *CourierService) GetCourier(ctx context.Context, id int64) (*models.Courier, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Courier](ret, 0), ret.Error(1)
}

func (_m *CourierService) CreateCourier(ctx context.Context, req *models.CreateCourierRequest) (*models.Courier, error) {
	ret := _m.Called(ctx, req)
	return testutils.Ret[*models.Courier](ret, 0), ret.Error(1)
}

func (_m *CourierService) UpdateCourier(ctx context.Context, id int64, req *models.UpdateCourierRequest) (*models.Courier, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.Courier](ret, 0), ret.Error(1)
}

func (_m *CourierService) DeleteCourier(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewCourierService(t testutils.TestingT) *CourierService {
	m := &CourierService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
