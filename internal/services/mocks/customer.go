package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type CustomerService struct {
	mock.Mock
}

func (_m *CustomerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Customer](ret, 0), ret.Error(1)
}

func (_m *CustomerService) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Customer](ret, 0), ret.Error(1)
}

func (_m *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateContactRequest) (*models.Customer, error) {
	ret := _m.Called(ctx, req)
	return testutils.Ret[*models.Customer](ret, 0), ret.Error(1)
}

func (_m *CustomerService) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Customer, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.Customer](ret, 0), ret.Error(1)
}

func (_m *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewCustomerService(t testutils.TestingT) *CustomerService {
	m := &CustomerService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
