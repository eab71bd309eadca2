// Package mocks holds testify mocks of the service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type ProductService struct {
	mock.Mock
}

func (_m *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, req)
	return testutils.Ret[*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewProductService(t testutils.TestingT) *ProductService {
	m := &ProductService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
