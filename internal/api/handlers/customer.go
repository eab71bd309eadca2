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

type CustomerHandler struct {
	customerService service.CustomerService
	validator       *validator.Validate
}

func NewCustomerHandler(customerService service.CustomerService, validate *validator.Validate) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, validator: validate}
}

func (h *CustomerHandler) ListCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		customers, err := h.customerService.ListCustomers(r.Context())
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to list customers", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: customers, Total: len(customers)})
	}
}

func (h *CustomerHandler) GetCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		customer, err := h.customerService.GetCustomer(r.Context(), id)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to get customer", slog.Int64("customerID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, customer)
	}
}

func (h *CustomerHandler) CreateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		var req models.CreateContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		customer, err := h.customerService.CreateCustomer(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create customer", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Customer created successfully", slog.Int64("customerID", customer.ID))
		response.Success(w, http.StatusCreated, customer)
	}
}

// UpdateCustomer changes only the fields present in the body.
func (h *CustomerHandler) UpdateCustomer() http.HandlerFunc {
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

		customer, err := h.customerService.UpdateCustomer(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update customer", slog.Int64("customerID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Customer updated successfully", slog.Int64("customerID", id))
		response.Success(w, http.StatusOK, customer)
	}
}

func (h *CustomerHandler) DeleteCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		if err := h.customerService.DeleteCustomer(r.Context(), id); err != nil {
			requestctx.Logger(r.Context()).Error("Failed to delete customer", slog.Int64("customerID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
