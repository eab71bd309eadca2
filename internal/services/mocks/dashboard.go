package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type DashboardService struct {
	mock.Mock
}

func (_m *DashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[*models.DashboardStats](ret, 0), ret.Error(1)
}

func NewDashboardService(t testutils.TestingT) *DashboardService {
	m := &DashboardService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
