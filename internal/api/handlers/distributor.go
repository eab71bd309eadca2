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

type DistributorHandler struct {
	distributorService service.DistributorService
	validator          *validator.Validate
}

func NewDistributorHandler(distributorService service.DistributorService, validate *validator.Validate) *DistributorHandler {
	return &DistributorHandler{distributorService: distributorService, validator: validate}
}

func (h *DistributorHandler) ListDistributors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		distributors, err := h.distributorService.ListDistributors(r.Context())
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to list distributors", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: distributors, Total: len(distributors)})
	}
}

func (h *DistributorHandler) GetDistributor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		distributor, err := h.distributorService.GetDistributor(r.Context(), id)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to get distributor", slog.Int64("distributorID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, distributor)
	}
}

func (h *DistributorHandler) CreateDistributor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		var req models.CreateContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		distributor, err := h.distributorService.CreateDistributor(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create distributor", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Distributor created successfully", slog.Int64("distributorID", distributor.ID))
		response.Success(w, http.StatusCreated, distributor)
	}
}

func (h *DistributorHandler) UpdateDistributor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		var req models.UpdateContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		distributor, err := h.distributorService.UpdateDistributor(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update distributor", slog.Int64("distributorID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Distributor updated successfully", slog.Int64("distributorID", id))
		response.Success(w, http.StatusOK, distributor)
	}
}

func (h *DistributorHandler) DeleteDistributor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		if err := h.distributorService.DeleteDistributor(r.Context(), id); err != nil {
			requestctx.Logger(r.Context()).Error("Failed to delete distributor", slog.Int64("distributorID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
