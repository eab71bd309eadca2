package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type UserService struct {
	mock.Mock
}

func (_m *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.User](ret, 0), ret.Error(1)
}

func (_m *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.User](ret, 0), ret.Error(1)
}

func (_m *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	ret := _m.Called(ctx, req)
	return testutils.Ret[*models.User](ret, 0), ret.Error(1)
}

func (_m *UserService) UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.User](ret, 0), ret.Error(1)
}

func (_m *UserService) DeleteUser(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewUserService(t testutils.TestingT) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
