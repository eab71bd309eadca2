package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tokoretail/retail-platform/internal/api/handlers"
	appErrors "github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/services/mocks"
	"github.com/tokoretail/retail-platform/internal/testutils"
	"github.com/tokoretail/retail-platform/internal/utils/response"
)

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	return &resp
}

func setupStoreTest(t *testing.T) (*handlers.StoreHandler, *mocks.StoreService, *mocks.CheckoutService) {
	t.Helper()

	store := mocks.NewStoreService(t)
	checkout := mocks.NewCheckoutService(t)

	return handlers.NewStoreHandler(store, checkout, validator.New()), store, checkout
}

func TestCheckout(t *testing.T) {
	order := &models.Order{ID: 100, CustomerID: 7, Status: models.OrderStatusPending, TotalAmount: decimal.NewFromInt(25000)}

	t.Run("Success - Customer from body", func(t *testing.T) {
		// Arrange
		h, _, checkout := setupStoreTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodPost, "/api/v1/store/checkout", strings.NewReader(`{"customer_id":7,"note":"antar sore"}`), nil)
		rr := httptest.NewRecorder()

		checkout.On("Checkout", mock.Anything, int64(7)).Return(order, nil).Once()

		// Act
		h.Checkout()(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		resp := decodeResponse(t, rr)
		assert.True(t, resp.Success)
		data := resp.Data.(map[string]any)
		assert.Equal(t, float64(100), data["id"])
		assert.Equal(t, "25000", data["total_amount"])
	})

	t.Run("Success - Customer from session", func(t *testing.T) {
		h, _, checkout := setupStoreTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/store/checkout", strings.NewReader(`{}`), 7, nil)
		rr := httptest.NewRecorder()

		checkout.On("Checkout", mock.Anything, int64(7)).Return(order, nil).Once()

		h.Checkout()(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Body contradicts session", func(t *testing.T) {
		h, _, _ := setupStoreTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/store/checkout", strings.NewReader(`{"customer_id":8}`), 7, nil)
		rr := httptest.NewRecorder()

		h.Checkout()(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Failure - No customer", func(t *testing.T) {
		h, _, _ := setupStoreTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodPost, "/api/v1/store/checkout", strings.NewReader(`{}`), nil)
		rr := httptest.NewRecorder()

		h.Checkout()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Unknown field", func(t *testing.T) {
		h, _, _ := setupStoreTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodPost, "/api/v1/store/checkout", strings.NewReader(`{"customer_id":7,"coupon":"X"}`), nil)
		rr := httptest.NewRecorder()

		h.Checkout()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Insufficient stock", func(t *testing.T) {
		h, _, checkout := setupStoreTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodPost, "/api/v1/store/checkout", strings.NewReader(`{"customer_id":7}`), nil)
		rr := httptest.NewRecorder()

		checkout.On("Checkout", mock.Anything, int64(7)).
			Return(nil, appErrors.InvalidArgumentError("Insufficient stock for Beras (product 1): available 5, requested 10")).Once()

		h.Checkout()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeResponse(t, rr)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeInvalidArgument, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "available 5")
	})

	t.Run("Failure - Rate limited", func(t *testing.T) {
		h, _, checkout := setupStoreTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodPost, "/api/v1/store/checkout", strings.NewReader(`{"customer_id":7}`), nil)
		rr := httptest.NewRecorder()

		checkout.On("Checkout", mock.Anything, int64(7)).
			Return(nil, appErrors.TooManyRequestsError("Too many checkout attempts").WithDetail("Retry after 30 seconds")).Once()

		h.Checkout()(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, []string{"Retry after 30 seconds"}, resp.Error.Details)
	})
}

func TestSearchProducts(t *testing.T) {
	h, store, _ := setupStoreTest(t)
	req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/store/products/search?q=+kopi+&category=Minuman", nil, nil)
	rr := httptest.NewRecorder()

	store.On("SearchProducts", mock.Anything, models.ProductSearchParams{Query: "kopi", Category: "Minuman"}).
		Return([]*models.Product{{ID: 2, Name: "Kopi Bubuk"}}, nil).Once()

	h.SearchProducts()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeResponse(t, rr).Data.(map[string]any)
	assert.Equal(t, float64(1), data["total"])
}

func TestGetAvailableProduct(t *testing.T) {
	t.Run("Failure - Invalid id", func(t *testing.T) {
		h, _, _ := setupStoreTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/store/products/abc", nil, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		h.GetAvailableProduct()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Out of stock", func(t *testing.T) {
		h, store, _ := setupStoreTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/store/products/4", nil, map[string]string{"id": "4"})
		rr := httptest.NewRecorder()

		store.On("GetAvailableProduct", mock.Anything, int64(4)).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		h.GetAvailableProduct()(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListCustomerOrders(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, store, _ := setupStoreTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/store/customers/7/orders", nil, 7, map[string]string{"customerID": "7"})
		rr := httptest.NewRecorder()

		store.On("ListCustomerOrders", mock.Anything, int64(7)).Return([]*models.Order{{ID: 1}, {ID: 2}}, nil).Once()

		h.ListCustomerOrders()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Another customer's orders", func(t *testing.T) {
		h, _, _ := setupStoreTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/store/customers/8/orders", nil, 7, map[string]string{"customerID": "8"})
		rr := httptest.NewRecorder()

		h.ListCustomerOrders()(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, store, _ := setupStoreTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodPatch, "/api/v1/store/orders/100/status", strings.NewReader(`{"status":"shipped"}`), map[string]string{"id": "100"})
		rr := httptest.NewRecorder()

		store.On("UpdateOrderStatus", mock.Anything, int64(100), models.OrderStatusShipped).
			Return(&models.Order{ID: 100, Status: models.OrderStatusShipped}, nil).Once()

		h.UpdateOrderStatus()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Unknown status", func(t *testing.T) {
		h, _, _ := setupStoreTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodPatch, "/api/v1/store/orders/100/status", strings.NewReader(`{"status":"lost"}`), map[string]string{"id": "100"})
		rr := httptest.NewRecorder()

		h.UpdateOrderStatus()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeResponse(t, rr).Error.Code)
	})
}
