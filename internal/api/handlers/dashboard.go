package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tokoretail/retail-platform/internal/requestctx"
	service "github.com/tokoretail/retail-platform/internal/services"
	"github.com/tokoretail/retail-platform/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats godoc
//
//	@Summary	Row counts for the back-office dashboard
//	@Tags		Dashboard
//	@Produce	json
//	@Success	200	{object}	models.DashboardStats
//	@Router		/dashboard/stats [get]
func (h *DashboardHandler) GetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stats, err := h.dashboardService.GetStats(r.Context())
		if err != nil {
			requestctx.Logger(r.Context()).Error("Failed to load dashboard stats", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}
