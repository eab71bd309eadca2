package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/requestctx"
	service "github.com/tokoretail/retail-platform/internal/services"
	"github.com/tokoretail/retail-platform/internal/utils"
	"github.com/tokoretail/retail-platform/internal/utils/response"
)

// StoreHandler serves the customer-facing storefront.
type StoreHandler struct {
	storeService    service.StoreService
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewStoreHandler(storeService service.StoreService, checkoutService service.CheckoutService, validate *validator.Validate) *StoreHandler {
	return &StoreHandler{storeService: storeService, checkoutService: checkoutService, validator: validate}
}

// ListAvailableProducts godoc
//
//	@Summary	List products that are in stock
//	@Tags		Store
//	@Produce	json
//	@Success	200	{object}	models.ListResponse
//	@Router		/store/products [get]
func (h *StoreHandler) ListAvailableProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.storeService.ListAvailableProducts(r.Context())
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to list available products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: products, Total: len(products)})
	}
}

// GetAvailableProduct godoc
//
//	@Summary	Get an in-stock product
//	@Tags		Store
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	404	{object}	response.ErrorResponse	"Product not found or out of stock"
//	@Router		/store/products/{id} [get]
func (h *StoreHandler) GetAvailableProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		product, err := h.storeService.GetAvailableProduct(r.Context(), id)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to get product", slog.Int64("productID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// SearchProducts godoc
//
//	@Summary	Search in-stock products by name or brand
//	@Tags		Store
//	@Produce	json
//	@Param		q			query		string	false	"Matches name or brand"
//	@Param		category	query		string	false	"Category substring, case-insensitive"
//	@Success	200			{object}	models.ListResponse
//	@Router		/store/products/search [get]
func (h *StoreHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		params := models.ProductSearchParams{
			Query:    strings.TrimSpace(r.URL.Query().Get("q")),
			Category: strings.TrimSpace(r.URL.Query().Get("category")),
		}

		products, err := h.storeService.SearchProducts(r.Context(), params)
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to search products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: products, Total: len(products)})
	}
}

// Checkout godoc
//
//	@Summary		Check out the customer's cart
//	@Description	Creates a pending order from every cart line at current prices, decrements stock and empties the cart, all in one transaction.
//	@Tags			Store
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	true	"Customer to check out"
//	@Success		201			{object}	models.Order
//	@Failure		400			{object}	response.ErrorResponse	"Empty cart or insufficient stock"
//	@Failure		403			{object}	response.ErrorResponse	"Session belongs to another customer"
//	@Failure		429			{object}	response.ErrorResponse	"Too many checkout attempts"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/store/checkout [post]
func (h *StoreHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		customerID, err := resolveCustomer(r, req.CustomerID)
		if err != nil {
			logger.Warn("Rejected checkout customer", slog.Int64("customerID", req.CustomerID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		order, err := h.checkoutService.Checkout(r.Context(), customerID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, order)
	}
}

func (h *StoreHandler) ListCustomerOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		customerID, ok := utils.PathID(w, r, "customerID")
		if !ok {
			return
		}

		if err := requestctx.AuthorizeCustomer(r.Context(), customerID); err != nil {
			response.Error(w, err)
			return
		}

		orders, err := h.storeService.ListCustomerOrders(r.Context(), customerID)
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to list orders", slog.Int64("customerID", customerID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: orders, Total: len(orders)})
	}
}

func (h *StoreHandler) GetOrderDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		order, err := h.storeService.GetOrderDetails(r.Context(), id)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to get order", slog.Int64("orderID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *StoreHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.storeService.UpdateOrderStatus(r.Context(), id, req.Status)
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to update order status", slog.Int64("orderID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}
