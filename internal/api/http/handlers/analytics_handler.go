package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trimkart/task-tracker/internal/service"
)

// AnalyticsHandler serves aggregate reports.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analyticsService}
}

// Overview handles GET /analytics/overview.
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.analytics.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(overview)
}
