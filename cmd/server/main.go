package main

import (
	"fmt"
	"log"

	"bananadb/internal/ai"
	_ "bananadb/internal/ai/deepseek"
	_ "bananadb/internal/ai/gemini"
	_ "bananadb/internal/ai/openrouter"
	"bananadb/internal/config"
	"bananadb/internal/email/noop"
	"bananadb/internal/email/ses"
	"bananadb/internal/handler"
	"bananadb/internal/port"
	"bananadb/internal/repository/postgres"
	"bananadb/internal/router"
	"bananadb/internal/service"
)

// @title        BananaDB API
// @version      1.0
// @description  Vehicle listing curation backend
// @BasePath     /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	projectRepo := postgres.NewProjectRepo(db)
	listingRepo := postgres.NewListingRepo(db)
	dataSourceRepo := postgres.NewDataSourceRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)

	// Initialize email sender
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	resolver := ai.NewResolver(settingsRepo, &cfg.AI)
	authSvc := service.NewAuthService(userRepo, emailSender, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	projectSvc := service.NewProjectService(projectRepo)
	parseSvc := service.NewParseService(resolver)
	listingSvc := service.NewListingService(listingRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	dataSourceSvc := service.NewDataSourceService(dataSourceRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	listingH := handler.NewListingHandler(listingSvc, parseSvc, projectSvc)
	dataSourceH := handler.NewDataSourceHandler(dataSourceSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, projectH, listingH, dataSourceH, userH, settingsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
