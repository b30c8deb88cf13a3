package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeonsoft/crm-api/internal/application/service"
	"github.com/yeonsoft/crm-api/internal/presentation/http/dto/response"
)

// StatsHandler handles the daily stats rollup HTTP requests
type StatsHandler struct {
	statSyncService  *service.StatSyncService
	dashboardService *service.DashboardService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statSyncService *service.StatSyncService, dashboardService *service.DashboardService) *StatsHandler {
	return &StatsHandler{
		statSyncService:  statSyncService,
		dashboardService: dashboardService,
	}
}

// Daily handles listing the recent daily rollup rows
func (h *StatsHandler) Daily(c *gin.Context) {
	stats, err := h.dashboardService.RecentDailyStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily stats retrieved successfully", stats)
}

// Sync handles an on-demand rollup of one calendar day. Without a date
// query param the current day is synced; re-running a day replaces its
// row rather than duplicating it.
func (h *StatsHandler) Sync(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		date = parsed
	}

	stat, err := h.statSyncService.SyncDay(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily stats synced successfully", stat)
}
