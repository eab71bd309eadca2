package service_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/repositories/mocks"
	service "github.com/tokoretail/retail-platform/internal/services"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

func setupCartTest(t *testing.T) (service.CartService, *mocks.CartRepository, *mocks.ProductRepository) {
	t.Helper()

	carts := mocks.NewCartRepository(t)
	products := mocks.NewProductRepository(t)

	return service.NewCartService(carts, products), carts, products
}

func TestGetCart(t *testing.T) {
	svc, carts, _ := setupCartTest(t)

	carts.On("GetCartItems", mock.Anything, int64(7)).Return([]models.CartItem{
		{ID: 1, ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(10000)},
		{ID: 2, ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("5000.50")},
	}, nil).Once()

	cart, err := svc.GetCart(t.Context(), 7)

	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.True(t, decimal.RequireFromString("25000.50").Equal(cart.Total), "total was %s", cart.Total)
}

func TestAddItem(t *testing.T) {
	product := &models.Product{ID: 1, Name: "Beras 5kg", StockQuantity: 5, UnitPrice: decimal.NewFromInt(10000)}

	t.Run("Success", func(t *testing.T) {
		svc, carts, products := setupCartTest(t)
		req := &models.AddItemRequest{CustomerID: 7, ProductID: 1, Quantity: 2}

		products.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()
		carts.On("AddItem", mock.Anything, int64(7), int64(1), 2).Return(&models.CartItem{ID: 10, CustomerID: 7, ProductID: 1, Quantity: 2}, nil).Once()

		item, err := svc.AddItem(t.Context(), req)

		require.NoError(t, err)
		assert.Equal(t, "Beras 5kg", item.ProductName)
		assert.True(t, product.UnitPrice.Equal(item.UnitPrice))
	})

	t.Run("Failure - More than in stock", func(t *testing.T) {
		svc, _, products := setupCartTest(t)

		products.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()

		_, err := svc.AddItem(t.Context(), &models.AddItemRequest{CustomerID: 7, ProductID: 1, Quantity: 6})

		appErr := requireAppError(t, err, appErrors.ErrCodeInvalidArgument)
		assert.Contains(t, appErr.Message, "available 5")
	})

	t.Run("Failure - Unknown product", func(t *testing.T) {
		svc, _, products := setupCartTest(t)

		products.On("GetProductByID", mock.Anything, int64(404)).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.AddItem(t.Context(), &models.AddItemRequest{CustomerID: 7, ProductID: 404, Quantity: 1})

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestUpdateCartQuantity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, carts, _ := setupCartTest(t)

		carts.On("GetItem", mock.Anything, int64(10)).Return(&models.CartItem{ID: 10, CustomerID: 7}, nil).Once()
		carts.On("UpdateQuantity", mock.Anything, int64(10), 3).Return(&models.CartItem{ID: 10, CustomerID: 7, Quantity: 3}, nil).Once()

		item, err := svc.UpdateQuantity(testutils.SessionContext(7), 10, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("Failure - Zero quantity", func(t *testing.T) {
		svc, _, _ := setupCartTest(t)

		_, err := svc.UpdateQuantity(t.Context(), 10, 0)

		requireAppError(t, err, appErrors.ErrCodeInvalidArgument)
	})

	t.Run("Failure - Another customer's line", func(t *testing.T) {
		svc, carts, _ := setupCartTest(t)

		carts.On("GetItem", mock.Anything, int64(10)).Return(&models.CartItem{ID: 10, CustomerID: 8}, nil).Once()

		_, err := svc.UpdateQuantity(testutils.SessionContext(7), 10, 3)

		requireAppError(t, err, appErrors.ErrCodeForbidden)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, carts, _ := setupCartTest(t)

		carts.On("GetItem", mock.Anything, int64(10)).Return(&models.CartItem{ID: 10, CustomerID: 7}, nil).Once()
		carts.On("RemoveItem", mock.Anything, int64(10)).Return(nil).Once()

		assert.NoError(t, svc.RemoveItem(t.Context(), 10))
	})

	t.Run("Failure - Missing line", func(t *testing.T) {
		svc, carts, _ := setupCartTest(t)

		carts.On("GetItem", mock.Anything, int64(10)).Return(nil, sql.ErrNoRows).Once()

		requireAppError(t, svc.RemoveItem(t.Context(), 10), appErrors.ErrCodeNotFound)
	})
}

func TestClearCart(t *testing.T) {
	svc, carts, _ := setupCartTest(t)

	carts.On("ClearCart", mock.Anything, int64(7)).Return(int64(0), errors.New("timeout")).Once()

	requireAppError(t, svc.ClearCart(t.Context(), 7), appErrors.ErrCodeDatabaseError)
}
