package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/projectify/backend/internal/dto"
	"github.com/projectify/backend/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Dashboard handles GET /api/analytics/dashboard (admin).
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.analyticsService.Dashboard()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to load dashboard statistics",
		})
	}

	return c.JSON(dto.DashboardResponse{Success: true, Data: stats})
}

// ProjectsByStatus handles GET /api/analytics/projects-by-status (admin).
func (h *AnalyticsHandler) ProjectsByStatus(c *fiber.Ctx) error {
	counts, err := h.analyticsService.ProjectsByStatus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to load project statistics",
		})
	}

	return c.JSON(dto.StatusCountResponse{Success: true, Data: counts})
}

// ApplicationsByStatus handles GET /api/analytics/applications-by-status (admin).
func (h *AnalyticsHandler) ApplicationsByStatus(c *fiber.Ctx) error {
	counts, err := h.analyticsService.ApplicationsByStatus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to load application statistics",
		})
	}

	return c.JSON(dto.StatusCountResponse{Success: true, Data: counts})
}

// RecentActivity handles GET /api/analytics/recent-activity (admin).
func (h *AnalyticsHandler) RecentActivity(c *fiber.Ctx) error {
	activity, err := h.analyticsService.RecentActivity()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to load recent activity",
		})
	}

	return c.JSON(dto.RecentActivityResponse{Success: true, Data: activity})
}
