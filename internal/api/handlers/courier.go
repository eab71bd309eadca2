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

type CourierHandler struct {
	courierService service.CourierService
	validator      *validator.Validate
}

func NewCourierHandler(courierService service.CourierService, validate *validator.Validate) *CourierHandler {
	return &CourierHandler{courierService: courierService, validator: validate}
}

func (h *CourierHandler) ListCouriers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		couriers, err := h.courierService.ListCouriers(r.Context())
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to list couriers", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: couriers, Total: len(couriers)})
	}
}

func (h *CourierHandler) GetCourier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		courier, err := h.courierService.GetCourier(r.Context(), id)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to get courier", slog.Int64("courierID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, courier)
	}
}

func (h *CourierHandler) CreateCourier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		var req models.CreateCourierRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		courier, err := h.courierService.CreateCourier(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create courier", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Courier created successfully", slog.Int64("courierID", courier.ID))
		response.Success(w, http.StatusCreated, courier)
	}
}

func (h *CourierHandler) UpdateCourier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		var req models.UpdateCourierRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		courier, err := h.courierService.UpdateCourier(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update courier", slog.Int64("courierID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Courier updated successfully", slog.Int64("courierID", id))
		response.Success(w, http.StatusOK, courier)
	}
}

func (h *CourierHandler) DeleteCourier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		if err := h.courierService.DeleteCourier(r.Context(), id); err != nil {
			requestctx.Logger(r.Context()).Error("Failed to delete courier", slog.Int64("courierID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
