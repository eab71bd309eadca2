package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type DistributorService struct {
	mock.Mock
}

func (_m *DistributorService) ListDistributors(ctx context.Context) ([]*models.Distributor, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Distributor](ret, 0), ret.Error(1)
}

func (_m *DistributorService) GetDistributor(ctx context.Context, id int64) (*models.Distributor, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Distributor](ret, 0), ret.Error(1)
}

func (_m *DistributorService) CreateDistributor(ctx context.Context, req *models.CreateContactRequest) (*models.Distributor, error) {
	ret := _m.Called(ctx, req)
	return testutils.Ret[*models.Distributor](ret, 0), ret.Error(1)
}

func (_m *DistributorService) UpdateDistributor(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Distributor, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.Distributor](ret, 0), ret.Error(1)
}

func (_m *DistributorService) DeleteDistributor(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewDistributorService(t testutils.TestingT) *DistributorService {
	m := &DistributorService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
