// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductRepository) ListAvailableProducts(ctx context.Context) ([]*models.Product, error) {
	ret := _m.Called(ctx)
	return testutils.Ret[[]*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductRepository) SearchProducts(ctx context.Context, params models.ProductSearchParams) ([]*models.Product, error) {
	ret := _m.Called(ctx, params)
	return testutils.Ret[[]*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductRepository) GetAvailableProductByID(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)
	return testutils.Ret[*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	ret := _m.Called(ctx, product)
	return ret.Error(0)
}

func (_m *ProductRepository) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, id, req)
	return testutils.Ret[*models.Product](ret, 0), ret.Error(1)
}

func (_m *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *ProductRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	ret := _m.Called(ctx, id, quantity)
	return ret.Error(0)
}

func (_m *ProductRepository) WithTx(tx *sql.Tx) repository.ProductRepository {
	ret := _m.Called(tx)
	return testutils.Ret[repository.ProductRepository](ret, 0)
}

func NewProductRepository(t testutils.TestingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
