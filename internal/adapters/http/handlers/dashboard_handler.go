package handlers

import (
	"donfundy/internal/adapters/http/middleware"
	"donfundy/internal/core/services"
	"donfundy/internal/i18n"
	"donfundy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Admin returns the admin dashboard
// @Summary Admin dashboard
// @Description Platform-wide campaign and donation statistics
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /dashboard/admin [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	data, err := h.dashboardService.GetAdminDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, i18n.T(lang, "error.internal"))
	}

	return response.Success(c, i18n.T(lang, "dashboard.loaded"), data)
}
