package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/yeonsoft/crm-api/internal/application/service"
	"github.com/yeonsoft/crm-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles the overview page HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles the dashboard overview cards
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
