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

type SaleHandler struct {
	saleService service.SaleService
	validator   *validator.Validate
}

func NewSaleHandler(saleService service.SaleService, validate *validator.Validate) *SaleHandler {
	return &SaleHandler{saleService: saleService, validator: validate}
}

func (h *SaleHandler) ListSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sales, err := h.saleService.ListSales(r.Context())
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to list sales", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: sales, Total: len(sales)})
	}
}

// GetSale returns the sale header together with its line items.
func (h *SaleHandler) GetSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		sale, err := h.saleService.GetSale(r.Context(), id)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to get sale", slog.Int64("saleID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sale)
	}
}

func (h *SaleHandler) CreateSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		var req models.CreateSaleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		sale, err := h.saleService.CreateSale(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create sale", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Sale created successfully", slog.Int64("saleID", sale.ID))
		response.Success(w, http.StatusCreated, sale)
	}
}

func (h *SaleHandler) DeleteSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		if err := h.saleService.DeleteSale(r.Context(), id); err != nil {
			requestctx.Logger(r.Context()).Error("Failed to delete sale", slog.Int64("saleID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *SaleHandler) ListSaleItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		items, err := h.saleService.ListSaleItems(r.Context(), id)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to list sale items", slog.Int64("saleID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: items, Total: len(items)})
	}
}

// CreateSaleItem adds a line to the sale named in the path.
func (h *SaleHandler) CreateSaleItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		var req models.CreateSaleItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}
		req.SaleID = id

		item, err := h.saleService.CreateSaleItem(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create sale item", slog.Int64("saleID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, item)
	}
}
