package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type CourierRepository struct {
	mock.Mock
}

func (_m *CourierRepository) ListCouriers(ctx context.Context) ([]*models.Courier, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Courier](ret, 0), ret.Error(1)
}

func (_m *CourierRepository) GetCourierByID(ctx context.Context, id int64) (*models.Courier, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Courier](ret, 0), ret.Error(1)
}

func (_m *CourierRepository) CreateCourier(ctx context.Context, courier *models.Courier) error {
	ret := _m.Called(ctx, courier)
	return ret.Error(0)
}

func (_m *CourierRepository) UpdateCourier(ctx context.Context, id int64, req *models.UpdateCourierRequest) (*models.Courier, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.Courier](ret, 0), ret.Error(1)
}

func (_m *CourierRepository) DeleteCourier(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewCourierRepository(t testutils.TestingT) *CourierRepository {
	m := &CourierRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
