package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.User](ret, 0), ret.Error(1)
}

func (_m *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.User](ret, 0), ret.Error(1)
}

func (_m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

func (_m *UserRepository) UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.User](ret, 0), ret.Error(1)
}

func (_m *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewUserRepository(t testutils.TestingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
