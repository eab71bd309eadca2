package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/requestctx"
	service "github.com/tokoretail/retail-platform/internal/services"
	"github.com/tokoretail/retail-platform/internal/utils"
	"github.com/tokoretail/retail-platform/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService, validate *validator.Validate) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validate}
}

// GetCart godoc
//
//	@Summary	Get a customer's cart
//	@Tags		Carts
//	@Produce	json
//	@Param		customerID	path		int	true	"Customer ID"
//	@Success	200			{object}	models.Cart
//	@Failure	403			{object}	response.ErrorResponse	"Session belongs to another customer"
//	@Security	BearerAuth
//	@Router		/carts/{customerID} [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		customerID, ok := h.pathCustomer(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), customerID)
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to get cart", slog.Int64("customerID", customerID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//
//	@Summary		Add a product to the cart
//	@Description	Adding a product already in the cart increases its quantity.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Item to add"
//	@Success		201		{object}	models.CartItem
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or insufficient stock"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/carts/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		customerID, err := resolveCustomer(r, req.CustomerID)
		if err != nil {
			logger.Warn("Rejected cart customer", slog.Int64("customerID", req.CustomerID), slog.Any("error", err))
			response.Error(w, err)
			return
		}
		req.CustomerID = customerID

		item, err := h.cartService.AddItem(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to add item to cart", slog.Int64("customerID", customerID), slog.Int64("productID", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("customerID", customerID), slog.Int64("productID", req.ProductID), slog.Int("quantity", item.Quantity))
		response.Success(w, http.StatusCreated, item)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.cartService.UpdateQuantity(r.Context(), id, req.Quantity)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to update cart item", slog.Int64("itemID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		if err := h.cartService.RemoveItem(r.Context(), id); err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to remove cart item", slog.Int64("itemID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		customerID, ok := h.pathCustomer(w, r)
		if !ok {
			return
		}

		if err := h.cartService.ClearCart(r.Context(), customerID); err != nil {
			requestctx.Logger(r.Context()).Error("Failed to clear cart", slog.Int64("customerID", customerID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *CartHandler) pathCustomer(w http.ResponseWriter, r *http.Request) (int64, bool) {

	id, ok := utils.PathID(w, r, "customerID")
	if !ok {
		return 0, false
	}

	if err := requestctx.AuthorizeCustomer(r.Context(), id); err != nil {
		response.Error(w, err)
		return 0, false
	}

	return id, true
}
