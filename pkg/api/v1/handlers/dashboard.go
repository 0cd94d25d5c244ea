package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/solobooks/solobooks/internal/api/middleware"
	"github.com/solobooks/solobooks/internal/services"
	"github.com/solobooks/solobooks/internal/types"
)

// DashboardHandler handles HTTP requests for the financial dashboard
type DashboardHandler struct {
	dashboardService *services.Dashboard
}

// NewDashboardHandler creates a new instance of DashboardHandler
func NewDashboardHandler(dashboardService *services.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles computing the revenue and expense summary for the caller
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.dashboardService.Summarize(c.Context(), middleware.OwnerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgDashboardFailed))
	}
	return c.JSON(types.Success(summary))
}
