package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type CustomerRepository struct {
	mock.Mock
}

func (_m *CustomerRepository) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Customer](ret, 0), ret.Error(1)
}

func (_m *CustomerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Customer](ret, 0), ret.Error(1)
}

func (_m *CustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	ret := _m.Called(ctx, customer)
	return ret.Error(0)
}

func (_m *CustomerRepository) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Customer, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.Customer](ret, 0), ret.Error(1)
}

func (_m *CustomerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewCustomerRepository(t testutils.TestingT) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
