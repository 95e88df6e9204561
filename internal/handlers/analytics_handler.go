package handlers

import (
	"log"

	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles HTTP requests for platform analytics. All
// analytics routes are admin only.
type AnalyticsHandler struct {
	service *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// RegisterRoutes registers the analytics routes on the admin router.
func (h *AnalyticsHandler) RegisterRoutes(admin fiber.Router) {
	analyticsRoutes := admin.Group("/analytics")
	analyticsRoutes.Get("/platform", h.HandlePlatformAnalytics)
	analyticsRoutes.Get("/detailed", h.HandleDetailedAnalytics)
	analyticsRoutes.Get("/users", h.HandleUserStats)
}

// HandlePlatformAnalytics returns the platform overview counts.
func (h *AnalyticsHandler) HandlePlatformAnalytics(c *fiber.Ctx) error {
	data, err := h.service.PlatformAnalytics()
	if err != nil {
		log.Printf("Error computing platform analytics: %v", err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Analytics retrieved successfully",
		"data":    data,
	})
}

// HandleDetailedAnalytics returns the summary counts, order metrics and
// per-subcategory product breakdown.
func (h *AnalyticsHandler) HandleDetailedAnalytics(c *fiber.Ctx) error {
	data, err := h.service.DetailedAnalytics()
	if err != nil {
		log.Printf("Error computing detailed analytics: %v", err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Detailed analytics retrieved successfully",
		"data":    data,
	})
}

// HandleUserStats returns the user counts and role histogram.
func (h *AnalyticsHandler) HandleUserStats(c *fiber.Ctx) error {
	data, err := h.service.UserStats()
	if err != nil {
		log.Printf("Error computing user statistics: %v", err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "User statistics retrieved successfully",
		"data":    data,
	})
}
