package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bananadb/docs"
	"bananadb/internal/config"
	"bananadb/internal/handler"
	"bananadb/internal/middleware"
	"bananadb/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	projectH *handler.ProjectHandler,
	listingH *handler.ListingHandler,
	dataSourceH *handler.DataSourceHandler,
	userH *handler.UserHandler,
	settingsH *handler.SettingsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Project routes
	projects := protected.Group("/projects")
	projects.POST("", projectH.Create)
	projects.GET("", projectH.List)
	projects.GET("/:id", projectH.GetByID)
	projects.PUT("/:id", projectH.Update)
	projects.DELETE("/:id", middleware.RequireAdmin(), projectH.Delete)

	// Listing routes
	listings := protected.Group("/listings")
	listings.GET("", listingH.List)
	listings.POST("/parse", listingH.Parse)
	listings.POST("/submit", listingH.Submit)
	listings.GET("/export", listingH.Export)
	listings.PUT("/:id", listingH.Update)
	listings.DELETE("/:id", listingH.Delete)

	// Data source reference table (read-only for regular users)
	protected.GET("/datasources", dataSourceH.List)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireAdmin())
	admin.GET("/users", userH.List)
	admin.PUT("/users/:id", userH.Update)
	admin.GET("/settings", settingsH.GetAll)
	admin.PUT("/settings/provider", settingsH.SetActiveProvider)
	admin.PUT("/settings/providers/:provider", settingsH.UpdateProvider)
	admin.GET("/settings/status", settingsH.Status)
	admin.POST("/datasources", dataSourceH.Create)
	admin.DELETE("/datasources/:id", dataSourceH.Delete)

	return r
}
