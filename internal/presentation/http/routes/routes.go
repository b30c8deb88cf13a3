package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeonsoft/crm-api/internal/config"
	"github.com/yeonsoft/crm-api/internal/presentation/http/handler"
	"github.com/yeonsoft/crm-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer    *handler.CustomerHandler
	Estimate    *handler.EstimateHandler
	Inquiry     *handler.InquiryHandler
	Transaction *handler.TransactionHandler
	Dashboard   *handler.DashboardHandler
	Settings    *handler.SettingsHandler
	Stats       *handler.StatsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Dashboard
		v1.GET("/dashboard", h.Dashboard.GetStats)

		// Settings
		v1.GET("/settings/business", h.Settings.GetProfile)
		v1.PUT("/settings/business", h.Settings.UpdateProfile)

		// Daily stats
		v1.GET("/stats/daily", h.Stats.Daily)
		v1.POST("/stats/sync", h.Stats.Sync)

		registerCustomerRoutes(v1, h)
		registerEstimateRoutes(v1, h)
		registerInquiryRoutes(v1, h)
		registerTransactionRoutes(v1, h)
	}

	return router
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/stats", h.Customer.Stats)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerEstimateRoutes(v1 *gin.RouterGroup, h *Handlers) {
	estimates := v1.Group("/estimates")
	{
		estimates.GET("", h.Estimate.List)
		estimates.POST("", h.Estimate.Create)
		estimates.GET("/stats", h.Estimate.Stats)
		estimates.GET("/export", h.Estimate.Export)
		estimates.GET("/:id", h.Estimate.Get)
		estimates.PUT("/:id", h.Estimate.Update)
		estimates.DELETE("/:id", h.Estimate.Delete)
		estimates.PUT("/:id/status", h.Estimate.UpdateStatus)
		estimates.POST("/:id/send", h.Estimate.Send)
		estimates.GET("/:id/document", h.Estimate.Document)
	}
}

func registerInquiryRoutes(v1 *gin.RouterGroup, h *Handlers) {
	inquiries := v1.Group("/inquiries")
	{
		inquiries.GET("", h.Inquiry.List)
		inquiries.POST("", h.Inquiry.Create)
		inquiries.GET("/stats", h.Inquiry.Stats)
		inquiries.GET("/:id", h.Inquiry.Get)
		inquiries.PUT("/:id/status", h.Inquiry.UpdateStatus)
		inquiries.DELETE("/:id", h.Inquiry.Delete)
	}
}

func registerTransactionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	transactions := v1.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.PUT("/:id/status", h.Transaction.UpdateStatus)
		transactions.DELETE("/:id", h.Transaction.Delete)
	}

	// Sales reporting sits beside the raw transaction list
	v1.GET("/sales/stats", h.Transaction.SalesStats)
}
