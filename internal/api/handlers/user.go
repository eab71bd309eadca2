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

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{userService: userService, validator: validate}
}

func (h *UserHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		users, err := h.userService.ListUsers(r.Context())
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to list users", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: users, Total: len(users)})
	}
}

func (h *UserHandler) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		user, err := h.userService.GetUser(r.Context(), id)
		if err != nil {
			requestctx.Logger(r.Context()).Warn("Failed to get user", slog.Int64("userID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

func (h *UserHandler) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		var req models.CreateUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.CreateUser(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create user", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User created successfully", slog.Int64("userID", user.ID))
		response.Success(w, http.StatusCreated, user)
	}
}

// UpdateUser changes only the fields present in the body.
func (h *UserHandler) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		var req models.UpdateUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.UpdateUser(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update user", slog.Int64("userID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User updated successfully", slog.Int64("userID", id))
		response.Success(w, http.StatusOK, user)
	}
}

func (h *UserHandler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := utils.PathID(w, r, "id")
		if !ok {
			return
		}

		if err := h.userService.DeleteUser(r.Context(), id); err != nil {
			requestctx.Logger(r.Context()).Error("Failed to delete user", slog.Int64("userID", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
