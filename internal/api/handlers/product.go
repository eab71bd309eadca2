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

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validate}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.Int64("productID", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//
//	@Summary	Get a product by ID
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Router		/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to get product", slog.Int64("productID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts godoc
//
//	@Summary	List all products, including out of stock ones
//	@Tags		Products
//	@Produce	json
//	@Success	200	{object}	models.ListResponse
//	@Router		/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.ListProducts(r.Context())
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: products, Total: len(products)})
	}
}

// UpdateProduct godoc
//
//	@Summary		Partially update a product
//	@Description	Only the fields present in the body are changed.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Product ID"
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or no fields"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [patch]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Int64("productID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully", slog.Int64("productID", id))
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary	Delete a product
//	@Tags		Products
//	@Param		id	path	int	true	"Product ID"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Router		/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			requestctx.Logger(r.Context()).Error("Failed to delete product", slog.Int64("productID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
