package handlers

import (
	"github.com/Rovan44/shopping-app-44/internal/httpx"
	"github.com/Rovan44/shopping-app-44/internal/service"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	storeDriver      string
}

func NewDashboardHandler(dashboardService *service.DashboardService, storeDriver string) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		storeDriver:      storeDriver,
	}
}

func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetDashboardStats(c.UserContext())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, stats)
}

func (h *DashboardHandler) HealthCheck(c *fiber.Ctx) error {
	return httpx.SuccessResponse(c, "Storefront service is healthy", HealthResponse{
		Service: "storefront-api",
		Status:  "healthy",
		Store:   h.storeDriver,
	})
}
