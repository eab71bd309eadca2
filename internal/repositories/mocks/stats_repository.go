package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type StatsRepository struct {
	mock.Mock
}

func (_m *StatsRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[*models.DashboardStats](ret, 0), ret.Error(1)
}

func NewStatsRepository(t testutils.TestingT) *StatsRepository {
	m := &StatsRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
