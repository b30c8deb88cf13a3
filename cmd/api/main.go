package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yeonsoft/crm-api/internal/application/service"
	"github.com/yeonsoft/crm-api/internal/config"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/infrastructure/database"
	"github.com/yeonsoft/crm-api/internal/infrastructure/repository"
	"github.com/yeonsoft/crm-api/internal/presentation/http/handler"
	"github.com/yeonsoft/crm-api/internal/presentation/http/routes"
	"github.com/yeonsoft/crm-api/pkg/document"
	"github.com/yeonsoft/crm-api/pkg/email"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Configure logging
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed demo data outside production
	if cfg.App.Env != "production" {
		if err := database.SeedDemoData(db); err != nil {
			log.Warn().Err(err).Msg("failed to seed demo data")
		}
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	estimateRepo := repository.NewEstimateRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	dailyStatRepo := repository.NewDailyStatRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize document rendering and delivery
	renderer, err := document.NewHTMLRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse estimate template")
	}
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
	})

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo, entity.BusinessProfile{
		RegistrationNumber: cfg.Business.RegistrationNumber,
		BusinessName:       cfg.Business.Name,
		CEOName:            cfg.Business.CEO,
		Address:            cfg.Business.Address,
		Phone:              cfg.Business.Phone,
		Email:              cfg.Business.Email,
	})
	customerService := service.NewCustomerService(customerRepo)
	estimateService := service.NewEstimateService(estimateRepo, customerRepo, settingsService, renderer, emailService)
	inquiryService := service.NewInquiryService(inquiryRepo, customerRepo)
	transactionService := service.NewTransactionService(transactionRepo, customerRepo)
	dashboardService := service.NewDashboardService(customerRepo, inquiryRepo, estimateRepo, transactionRepo, dailyStatRepo)
	statSyncService := service.NewStatSyncService(customerRepo, inquiryRepo, transactionRepo, dailyStatRepo, service.PseudoTrafficProvider{})

	// Schedule the daily stats rollup
	scheduler, err := statSyncService.StartScheduler(cfg.Sync.CronSpec)
	if err != nil {
		log.Fatal().Err(err).Str("spec", cfg.Sync.CronSpec).Msg("failed to start stat sync scheduler")
	}
	defer scheduler.Stop()

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer:    handler.NewCustomerHandler(customerService),
		Estimate:    handler.NewEstimateHandler(estimateService),
		Inquiry:     handler.NewInquiryHandler(inquiryService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Stats:       handler.NewStatsHandler(statSyncService, dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
