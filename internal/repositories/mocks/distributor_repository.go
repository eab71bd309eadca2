package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type DistributorRepository struct {
	mock.Mock
}

func (_m *DistributorRepository) ListDistributors(ctx context.Context) ([]*models.Distributor, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Distributor](ret, 0), ret.Error(1)
}

func (_m *DistributorRepository) GetDistributorByID(ctx context.Context, id int64) (*models.Distributor, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Distributor](ret, 0), ret.Error(1)
}

func (_m *DistributorRepository) CreateDistributor(ctx context.Context, distributor *models.Distributor) error {
	ret := _m.Called(ctx, distributor)
	return ret.Error(0)
}

func (_m *DistributorRepository) UpdateDistributor(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Distributor, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.Distributor](ret, 0), ret.Error(1)
}

func (_m *DistributorRepository) DeleteDistributor(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewDistributorRepository(t testutils.TestingT) *DistributorRepository {
	m := &DistributorRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
